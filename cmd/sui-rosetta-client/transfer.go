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
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/orchestrator"
	"github.com/optakt/sui-rosetta/rosetta/signer"
	"github.com/optakt/sui-rosetta/service/metrics"
)

// flowFlags adds the flags of commands that go through the construction flow.
func flowFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("journal", "j", "sui-rosetta-journal", "directory of the submission journal")
	cmd.Flags().Uint64("gas-budget", sui.DefaultGasBudget, "gas budget in MIST reserved for the transaction")
	cmd.Flags().Duration("poll-interval", time.Second, "interval between confirmation checks")
	cmd.Flags().Duration("poll-timeout", time.Minute, "maximum time to wait for confirmation")
	cmd.Flags().String("metrics", "", "address to expose Prometheus metrics on while running (disabled if empty)")
}

func (c *client) transferCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to a recipient and wait for confirmation",
		Args:  cobra.NoArgs,
		RunE:  c.transfer,
	}

	flowFlags(cmd)
	cmd.Flags().String("seed", "", "hex-encoded Ed25519 seed of the sender")
	cmd.Flags().String("to", "", "address of the recipient")
	cmd.Flags().String("amount", "", "amount to transfer in standard units (e.g. 1.5)")
	cmd.Flags().String("currency", sui.NativeCoinType, "coin type to transfer")

	return cmd
}

func (c *client) resumeCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "resume <transaction>",
		Short: "Continue an interrupted transfer from its journal entry",
		Args:  cobra.ExactArgs(1),
		RunE:  c.resume,
	}

	flowFlags(cmd)
	cmd.Flags().String("seed", "", "hex-encoded Ed25519 seed of the sender")

	return cmd
}

func (c *client) transfer(cmd *cobra.Command, _ []string) error {

	key, err := signer.ParseSeed(c.cfg.GetString("seed"))
	if err != nil {
		return fmt.Errorf("could not parse seed: %w", err)
	}
	sender := sui.AddressFromPublicKey(key.Public().(ed25519.PublicKey))
	recipient, err := sui.NormalizeAddress(c.cfg.GetString("to"))
	if err != nil {
		return fmt.Errorf("could not parse recipient: %w", err)
	}
	amount, err := decimal.NewFromString(c.cfg.GetString("amount"))
	if err != nil {
		return fmt.Errorf("could not parse amount: %w", err)
	}

	a, err := c.app()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	currency, err := a.registry.Resolve(ctx, identifier.Currency{CoinType: c.cfg.GetString("currency")})
	if err != nil {
		return fmt.Errorf("could not resolve currency: %w", err)
	}
	atomic := amount.Shift(int32(currency.Decimals))
	if !atomic.IsInteger() || !atomic.IsPositive() {
		return fmt.Errorf("invalid amount for %d decimals (%s)", currency.Decimals, amount)
	}
	value := atomic.BigInt()

	opType := sui.OperationPayCoin
	if sui.IsNative(currency.CoinType) {
		opType = sui.OperationPaySui
	}
	operations := []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      opType,
			AccountID: identifier.Account{Address: sender},
			Amount:    &object.Amount{Value: "-" + value.String(), Currency: currency},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      opType,
			AccountID: identifier.Account{Address: recipient},
			Amount:    &object.Amount{Value: value.String(), Currency: currency},
		},
	}

	db, j, err := c.openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	stop, err := c.serveMetrics()
	if err != nil {
		return err
	}
	defer stop()

	o := c.orchestrator(a, signer.New(key), j)
	result, err := o.Run(ctx, operations)
	if result != nil {
		printResult(cmd.OutOrStdout(), result)
		if o.Verify(result, operations) {
			fmt.Fprintln(cmd.OutOrStdout(), "effects match the declared transfer")
		}
	}
	if err != nil {
		return fmt.Errorf("could not complete transfer: %w", err)
	}

	return nil
}

func (c *client) resume(cmd *cobra.Command, args []string) error {

	var keys *signer.Keystore
	if seed := c.cfg.GetString("seed"); seed != "" {
		key, err := signer.ParseSeed(seed)
		if err != nil {
			return fmt.Errorf("could not parse seed: %w", err)
		}
		keys = signer.New(key)
	} else {
		keys = signer.New()
	}

	a, err := c.app()
	if err != nil {
		return err
	}
	defer a.Close()

	db, j, err := c.openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	stop, err := c.serveMetrics()
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	o := c.orchestrator(a, keys, j)
	result, err := o.Resume(ctx, args[0])
	if result != nil {
		printResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return fmt.Errorf("could not resume transfer: %w", err)
	}

	return nil
}

// serveMetrics starts the metrics server if an address is configured and
// returns the function that stops it.
func (c *client) serveMetrics() (func(), error) {

	address := c.cfg.GetString("metrics")
	if address == "" {
		return func() {}, nil
	}

	err := metrics.RegisterBadgerMetrics()
	if err != nil {
		return nil, err
	}

	server := metrics.NewServer(c.log, address)
	go func() {
		err := server.Start()
		if err != nil {
			c.log.Warn().Err(err).Msg("metrics server failed")
		}
	}()

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := server.Stop(ctx)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn().Err(err).Msg("could not stop metrics server")
		}
	}

	return stop, nil
}

func printResult(out io.Writer, result *orchestrator.Result) {
	fmt.Fprintf(out, "transaction: %s\n", result.TransactionID.Hash)
	fmt.Fprintf(out, "state:       %s\n", result.State)
	if result.Status != "" {
		fmt.Fprintf(out, "status:      %s\n", result.Status)
	}
	for _, op := range result.Operations {
		line := fmt.Sprintf("  #%d %s %s", op.ID.Index, op.Type, op.AccountID.Address)
		if op.Amount != nil {
			line += fmt.Sprintf(" %s %s", op.Amount.Value, op.Amount.Currency.Symbol)
		}
		fmt.Fprintln(out, line)
	}
}
