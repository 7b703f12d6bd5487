// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/sui-rosetta/api/jsonrpc"
	"github.com/optakt/sui-rosetta/api/rosetta"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/configuration"
	"github.com/optakt/sui-rosetta/rosetta/converter"
	"github.com/optakt/sui-rosetta/rosetta/registry"
	"github.com/optakt/sui-rosetta/rosetta/retriever"
	"github.com/optakt/sui-rosetta/rosetta/submitter"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
	"github.com/optakt/sui-rosetta/rosetta/validator"
	"github.com/optakt/sui-rosetta/service/metrics"
	"github.com/optakt/sui-rosetta/service/profiler"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization. Every flag can also be set with
	// a SUI_ROSETTA_ environment variable or in the configuration file.
	pflag.StringP("config", "f", "", "path to optional configuration file")
	pflag.StringP("level", "l", "info", "log output level")
	pflag.Uint16P("port", "p", 8080, "port to host Rosetta API on")
	pflag.StringP("network", "n", sui.Testnet, "Sui network to serve (mainnet, testnet, devnet or localnet)")
	pflag.StringP("rpc", "r", "", "URL of the full node JSON-RPC endpoint (default: public endpoint of the network)")
	pflag.Float64("rpc-rate", 50, "maximum number of requests per second sent to the full node")
	pflag.Int("rpc-burst", 10, "maximum burst of requests sent to the full node")
	pflag.Int("rpc-retries", 3, "number of retries for failed read requests to the full node")
	pflag.Duration("rpc-timeout", 10*time.Second, "timeout for a single request to the full node")
	pflag.Uint64("gas-budget", sui.DefaultGasBudget, "gas budget in MIST reserved for constructed transactions")
	pflag.Uint64("cache-size", 1000, "maximum number of cached currency descriptors")
	pflag.Uint64("balance-lag", retriever.DefaultConfig.BalanceLag, "number of checkpoints a balance request may lag behind the latest checkpoint")
	pflag.String("metrics", "", "address to expose Prometheus metrics on (disabled if empty)")
	pflag.String("profiler", "", "address to expose pprof profiles on (disabled if empty)")
	pflag.Bool("smart-status-codes", false, "enable smart non-500 HTTP status codes for Rosetta API errors")

	pflag.Parse()

	cfg, err := configure(pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		return failure
	}

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(cfg.GetString("level"))
	if err != nil {
		log.Error().Str("level", cfg.GetString("level")).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Check if the configured network is valid.
	network := cfg.GetString("network")
	params, ok := sui.NetworkParams[network]
	if !ok {
		log.Error().Str("network", network).Msg("invalid network for params")
		return failure
	}
	url := cfg.GetString("rpc")
	if url == "" {
		url = params.RPC
	}

	if cfg.GetBool("smart-status-codes") {
		rosetta.EnableSmartCodes()
	}

	// Initialize the ledger client.
	client := jsonrpc.New(log, url,
		jsonrpc.WithTimeout(cfg.GetDuration("rpc-timeout")),
		jsonrpc.WithRetries(cfg.GetInt("rpc-retries")),
		jsonrpc.WithRate(cfg.GetFloat64("rpc-rate"), cfg.GetInt("rpc-burst")),
	)
	defer client.Close()

	// Rosetta API initialization.
	reg, err := registry.New(client, registry.WithCacheSize(cfg.GetUint64("cache-size")))
	if err != nil {
		log.Error().Err(err).Msg("could not initialize currency registry")
		return failure
	}
	config := configuration.New(network)
	check := validator.New(client, reg)
	convert := converter.New(reg)
	retrieve := retriever.New(check, client, convert, retriever.WithBalanceLag(cfg.GetUint64("balance-lag")))
	transact := transactor.New(reg, client, submitter.New(client),
		transactor.WithGasBudget(cfg.GetUint64("gas-budget")),
	)
	validate := rosetta.NewRequestValidator()
	data := rosetta.NewData(config, validate, retrieve)
	construction := rosetta.NewConstruction(config, validate, transact)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	rosetta.Register(server, data, construction)

	var mserver *metrics.Server
	if cfg.GetString("metrics") != "" {
		mserver = metrics.NewServer(log, cfg.GetString("metrics"))
	}
	var pserver *profiler.Server
	if cfg.GetString("profiler") != "" {
		pserver = profiler.NewServer(log, cfg.GetString("profiler"))
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("network", network).Str("rpc", url).Msg("Sui Rosetta Server starting")
		err := server.Start(fmt.Sprint(":", cfg.GetUint("port")))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Sui Rosetta Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Sui Rosetta Server stopped")
	}()
	if mserver != nil {
		go func() {
			err := mserver.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}
	if pserver != nil {
		go func() {
			err := pserver.Start()
			if err != nil {
				log.Warn().Err(err).Msg("profiler failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Sui Rosetta Server stopping")
	case <-done:
		log.Info().Msg("Sui Rosetta Server done")
	case <-failed:
		log.Warn().Msg("Sui Rosetta Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var merr *multierror.Error
	err = server.Shutdown(ctx)
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("could not shut down Rosetta API: %w", err))
	}
	if mserver != nil {
		err = mserver.Stop(ctx)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if pserver != nil {
		err = pserver.Stop(ctx)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	err = merr.ErrorOrNil()
	if err != nil {
		log.Error().Err(err).Msg("could not shut down cleanly")
		return failure
	}

	return success
}

// configure binds the parsed flags to a configuration that also reads
// environment variables and the optional configuration file. The file is read
// before anything else is configured, so it applies to every setting.
func configure(flags *pflag.FlagSet) (*viper.Viper, error) {

	cfg := viper.New()
	cfg.SetEnvPrefix("SUI_ROSETTA")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	err := cfg.BindPFlags(flags)
	if err != nil {
		return nil, fmt.Errorf("could not bind flags: %w", err)
	}

	path := cfg.GetString("config")
	if path == "" {
		return cfg, nil
	}
	cfg.SetConfigFile(path)
	err = cfg.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file (%s): %w", path, err)
	}

	return cfg, nil
}
