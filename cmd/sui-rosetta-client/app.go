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

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/sui-rosetta/api/jsonrpc"
	"github.com/optakt/sui-rosetta/codec/zbor"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/converter"
	"github.com/optakt/sui-rosetta/rosetta/orchestrator"
	"github.com/optakt/sui-rosetta/rosetta/poller"
	"github.com/optakt/sui-rosetta/rosetta/registry"
	"github.com/optakt/sui-rosetta/rosetta/signer"
	"github.com/optakt/sui-rosetta/rosetta/submitter"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
	"github.com/optakt/sui-rosetta/service/journal"
	"github.com/optakt/sui-rosetta/service/metrics"
)

// app bundles the components built from the configuration.
type app struct {
	ledger   *jsonrpc.Client
	registry *registry.Registry
	convert  *converter.Converter
}

func (c *client) app() (*app, error) {

	network := c.cfg.GetString("network")
	params, ok := sui.NetworkParams[network]
	if !ok {
		return nil, fmt.Errorf("invalid network (%s)", network)
	}
	url := c.cfg.GetString("rpc")
	if url == "" {
		url = params.RPC
	}

	ledger := jsonrpc.New(c.log, url,
		jsonrpc.WithTimeout(c.cfg.GetDuration("rpc-timeout")),
		jsonrpc.WithRetries(c.cfg.GetInt("rpc-retries")),
		jsonrpc.WithRate(c.cfg.GetFloat64("rpc-rate"), c.cfg.GetInt("rpc-burst")),
	)

	reg, err := registry.New(ledger, registry.WithCacheSize(c.cfg.GetUint64("cache-size")))
	if err != nil {
		_ = ledger.Close()
		return nil, fmt.Errorf("could not initialize currency registry: %w", err)
	}

	a := app{
		ledger:   ledger,
		registry: reg,
		convert:  converter.New(reg),
	}

	return &a, nil
}

func (a *app) Close() error {
	return a.ledger.Close()
}

// openJournal opens the submission journal in the configured directory.
func (c *client) openJournal() (*badger.DB, *journal.Journal, error) {

	db, err := badger.Open(journal.DefaultOptions(c.cfg.GetString("journal")))
	if err != nil {
		return nil, nil, fmt.Errorf("could not open journal: %w", err)
	}
	j := journal.New(db, journal.WithCodec(metrics.NewCodec(zbor.NewCodec())))

	return db, j, nil
}

// orchestrator wires the construction flow around the given keystore and
// journal.
func (c *client) orchestrator(a *app, keys *signer.Keystore, j *journal.Journal) *orchestrator.Orchestrator {

	budget := c.cfg.GetUint64("gas-budget")
	transact := transactor.New(a.registry, a.ledger, submitter.New(a.ledger),
		transactor.WithGasBudget(budget),
	)
	poll := poller.New(c.log, a.ledger,
		poller.WithInterval(c.cfg.GetDuration("poll-interval")),
		poller.WithTimeout(c.cfg.GetDuration("poll-timeout")),
	)

	return orchestrator.New(c.log, transact, keys, poll, a.convert, metrics.NewJournal(j))
}
