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

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/retriever"
	"github.com/optakt/sui-rosetta/rosetta/validator"
)

func (c *client) balanceCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balances of an account in standard units",
		Args:  cobra.ExactArgs(1),
		RunE:  c.balance,
	}

	cmd.Flags().StringSlice("currency", []string{sui.NativeCoinType}, "coin types to show the balance for")
	cmd.Flags().String("sub-account", "", "sub-account to show the balance of (Stake, PendingStake or EstimatedReward)")

	return cmd
}

func (c *client) balance(cmd *cobra.Command, args []string) error {

	a, err := c.app()
	if err != nil {
		return err
	}
	defer a.Close()

	check := validator.New(a.ledger, a.registry)
	retrieve := retriever.New(check, a.ledger, a.convert)

	account := identifier.Account{Address: args[0]}
	if sub := c.cfg.GetString("sub-account"); sub != "" {
		account.SubAccount = &identifier.SubAccount{Address: sub}
	}
	coinTypes := c.cfg.GetStringSlice("currency")
	currencies := make([]identifier.Currency, 0, len(coinTypes))
	for _, coinType := range coinTypes {
		currencies = append(currencies, identifier.Currency{CoinType: coinType})
	}

	block, amounts, err := retrieve.Balances(cmd.Context(), identifier.Block{}, account, currencies)
	if err != nil {
		return fmt.Errorf("could not retrieve balances: %w", err)
	}

	out := cmd.OutOrStdout()
	if block.Index != nil {
		fmt.Fprintf(out, "checkpoint %d (%s)\n", *block.Index, block.Hash)
	}
	for _, amount := range amounts {
		value, err := decimal.NewFromString(amount.Value)
		if err != nil {
			return fmt.Errorf("could not parse amount (%s): %w", amount.Value, err)
		}
		symbol := amount.Currency.Symbol
		if symbol == "" {
			symbol = sui.DisplayCoinType(amount.Currency.CoinType)
		}
		fmt.Fprintf(out, "%s %s\n", value.Shift(-int32(amount.Currency.Decimals)).String(), symbol)
	}

	return nil
}
