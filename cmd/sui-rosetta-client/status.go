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
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/signer"
)

func (c *client) statusCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "status <transaction>",
		Short: "Show the state of a transfer, checking the ledger if it is not final",
		Long: `Show the journal state of a transfer. Submitted and timed out transfers
are looked up on the ledger, which resolves an ambiguous submission without
ever submitting the transaction again.`,
		Args: cobra.ExactArgs(1),
		RunE: c.status,
	}

	flowFlags(cmd)

	return cmd
}

func (c *client) historyCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "history <address>",
		Short: "List the journaled transfers of a sender",
		Args:  cobra.ExactArgs(1),
		RunE:  c.history,
	}

	cmd.Flags().StringP("journal", "j", "sui-rosetta-journal", "directory of the submission journal")

	return cmd
}

func (c *client) status(cmd *cobra.Command, args []string) error {

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

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	o := c.orchestrator(a, signer.New(), j)
	result, err := o.Check(ctx, args[0])
	if result != nil {
		printResult(cmd.OutOrStdout(), result)
	}
	if err != nil {
		return fmt.Errorf("could not check transfer: %w", err)
	}

	return nil
}

func (c *client) history(cmd *cobra.Command, args []string) error {

	sender, err := sui.NormalizeAddress(args[0])
	if err != nil {
		return fmt.Errorf("could not parse sender: %w", err)
	}

	db, j, err := c.openJournal()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := j.Entries(sender)
	if err != nil {
		return fmt.Errorf("could not list journal entries: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-10s %s", entry.Updated.Format(time.RFC3339), entry.State, entry.TransactionID)
		if entry.Status != "" {
			line += " " + entry.Status
		}
		if entry.Error != "" {
			line += " (" + entry.Error + ")"
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
