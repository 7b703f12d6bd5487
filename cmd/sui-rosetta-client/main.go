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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/optakt/sui-rosetta/models/sui"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	err := newRootCommand().Execute()
	if err != nil {
		return failure
	}
	return success
}

// client holds the configuration and logger shared by all commands.
type client struct {
	cfg *viper.Viper
	log zerolog.Logger
}

func newRootCommand() *cobra.Command {

	c := client{
		cfg: viper.New(),
		log: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:          "sui-rosetta-client",
		Short:        "Query balances and transfer coins through the Sui Rosetta adapter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "f", "", "path to optional configuration file")
	flags.StringP("level", "l", "info", "log output level")
	flags.StringP("network", "n", sui.Testnet, "Sui network to use (mainnet, testnet, devnet or localnet)")
	flags.StringP("rpc", "r", "", "URL of the full node JSON-RPC endpoint (default: public endpoint of the network)")
	flags.Float64("rpc-rate", 20, "maximum number of requests per second sent to the full node")
	flags.Int("rpc-burst", 5, "maximum burst of requests sent to the full node")
	flags.Int("rpc-retries", 3, "number of retries for failed read requests to the full node")
	flags.Duration("rpc-timeout", 10*time.Second, "timeout for a single request to the full node")
	flags.Uint64("cache-size", 100, "maximum number of cached currency descriptors")

	root.AddCommand(
		c.balanceCommand(),
		c.transferCommand(),
		c.resumeCommand(),
		c.statusCommand(),
		c.historyCommand(),
	)

	return root
}

// setup binds the flags of the executed command to the configuration and
// initializes the logger. Every flag can also be set with a SUI_ROSETTA_
// environment variable or in the configuration file.
func (c *client) setup(cmd *cobra.Command) error {

	c.cfg.SetEnvPrefix("SUI_ROSETTA")
	c.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.cfg.AutomaticEnv()
	err := c.cfg.BindPFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("could not bind flags: %w", err)
	}

	if c.cfg.GetString("config") != "" {
		c.cfg.SetConfigFile(c.cfg.GetString("config"))
		err = c.cfg.ReadInConfig()
		if err != nil {
			return fmt.Errorf("could not read configuration file: %w", err)
		}
	}

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(c.cfg.GetString("level"))
	if err != nil {
		return fmt.Errorf("could not parse log level: %w", err)
	}
	c.log = log.Level(level)

	return nil
}
