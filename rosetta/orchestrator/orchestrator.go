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

package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-rosetta/models/submission"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/matcher"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Orchestrator runs transfers through the full construction flow, from the
// declared operations to the operations derived from the final execution
// record. Each step is recorded in the journal, and nothing is ever submitted
// twice once it might have reached the ledger.
type Orchestrator struct {
	log      zerolog.Logger
	transact Transactor
	sign     Signer
	poll     Poller
	convert  Converter
	journal  Journal
}

// New creates a new orchestrator.
func New(log zerolog.Logger, transact Transactor, sign Signer, poll Poller, convert Converter, journal Journal) *Orchestrator {

	o := Orchestrator{
		log:      log.With().Str("component", "orchestrator").Logger(),
		transact: transact,
		sign:     sign,
		poll:     poll,
		convert:  convert,
		journal:  journal,
	}

	return &o
}

// Run builds, signs and submits a transaction for the given operations and
// waits for its execution record.
//
// Errors before submission return a nil result; they are safe to correct and
// retry. Once the transaction is signed, the result is always returned along
// with any error, and its state tells whether the transaction was not
// submitted (signed), has an unknown outcome (submitted or timed out) or is
// final (confirmed). A confirmed transaction whose execution failed comes
// with an execution failure error.
func (o *Orchestrator) Run(ctx context.Context, operations []object.Operation) (*Result, error) {

	intent, err := o.transact.DeriveIntent(operations)
	if err != nil {
		return nil, fmt.Errorf("could not derive intent: %w", err)
	}
	metadata, err := o.transact.Metadata(ctx, intent.Sender)
	if err != nil {
		return nil, fmt.Errorf("could not get metadata: %w", err)
	}
	selection, err := o.transact.SelectCoins(ctx, intent, metadata)
	if err != nil {
		return nil, fmt.Errorf("could not select coins: %w", err)
	}
	unsigned, err := o.transact.CompileTransaction(ctx, intent, selection, metadata)
	if err != nil {
		return nil, fmt.Errorf("could not compile transaction: %w", err)
	}
	txID, err := o.transact.TransactionIdentifier(unsigned)
	if err != nil {
		return nil, fmt.Errorf("could not get transaction identifier: %w", err)
	}

	entry := submission.Entry{
		TransactionID: txID.Hash,
		Sender:        intent.Sender,
		State:         submission.StateBuilt,
		Unsigned:      unsigned,
	}
	err = o.journal.Record(entry)
	if err != nil {
		return nil, fmt.Errorf("could not record built transaction: %w", err)
	}

	o.log.Info().
		Str("transaction", txID.Hash).
		Str("sender", intent.Sender).
		Str("coin_type", intent.Currency.CoinType).
		Int("recipients", len(intent.Recipients)).
		Msg("transaction built")

	return o.resume(ctx, entry)
}

// Resume continues the construction flow of a journaled transaction from the
// state it was left in. A transaction that might have reached the ledger is
// only awaited and never submitted again.
func (o *Orchestrator) Resume(ctx context.Context, txID string) (*Result, error) {

	entry, err := o.journal.Entry(txID)
	if err != nil {
		return nil, fmt.Errorf("could not get journal entry: %w", err)
	}

	return o.resume(ctx, *entry)
}

// Check resolves the outcome of a journaled transaction without signing or
// submitting anything. Transactions that were submitted are looked up on the
// ledger until they are final or the wait times out.
func (o *Orchestrator) Check(ctx context.Context, txID string) (*Result, error) {

	entry, err := o.journal.Entry(txID)
	if err != nil {
		return nil, fmt.Errorf("could not get journal entry: %w", err)
	}

	switch entry.State {
	case submission.StateBuilt, submission.StateSigned:
		return result(*entry), nil
	default:
		return o.await(ctx, *entry)
	}
}

// Verify checks that the operations derived from the execution of a
// transaction include the declared ones.
func (o *Orchestrator) Verify(result *Result, declared []object.Operation) bool {
	if result == nil || result.State != submission.StateConfirmed {
		return false
	}
	return matcher.Contains(result.Operations, declared)
}

func (o *Orchestrator) resume(ctx context.Context, entry submission.Entry) (*Result, error) {

	switch entry.State {

	case submission.StateBuilt:
		payload, err := o.transact.SigningPayload(entry.Unsigned)
		if err != nil {
			return nil, fmt.Errorf("could not get signing payload: %w", err)
		}
		signature, err := o.sign.Sign(identifier.Account{Address: entry.Sender}, payload)
		if err != nil {
			return nil, fmt.Errorf("could not sign transaction: %w", err)
		}
		signed, err := o.transact.AttachSignature(entry.Unsigned, signature)
		if err != nil {
			return nil, fmt.Errorf("could not attach signature: %w", err)
		}
		entry.Signed = signed
		err = o.transition(&entry, submission.StateSigned)
		if err != nil {
			return nil, err
		}
		return o.submit(ctx, entry)

	case submission.StateSigned:
		return o.submit(ctx, entry)

	default:
		return o.await(ctx, entry)
	}
}

func (o *Orchestrator) submit(ctx context.Context, entry submission.Entry) (*Result, error) {

	_, err := o.transact.SubmitTransaction(ctx, entry.Signed)
	if err != nil && !outcomeUnknown(err) {
		o.log.Warn().Err(err).Str("transaction", entry.TransactionID).Msg("transaction rejected")
		return result(entry), fmt.Errorf("could not submit transaction: %w", err)
	}

	// Transport failures and ambiguous node responses can happen after the
	// transaction reached the ledger, so it counts as submitted and is only
	// awaited from here on.
	if err != nil {
		o.log.Warn().Err(err).Str("transaction", entry.TransactionID).Msg("transaction submission outcome unknown")
		entry.Error = err.Error()
	}
	err = o.transition(&entry, submission.StateSubmitted)
	if err != nil {
		return result(entry), err
	}

	return o.await(ctx, entry)
}

func (o *Orchestrator) await(ctx context.Context, entry submission.Entry) (*Result, error) {

	record, err := o.poll.Await(ctx, entry.TransactionID)
	var timeout failure.ConfirmationTimeout
	if errors.As(err, &timeout) {
		if timeout.Cancelled {
			return result(entry), err
		}
		entry.Error = err.Error()
		terr := o.transition(&entry, submission.StateTimedOut)
		if terr != nil {
			o.log.Error().Err(terr).Str("transaction", entry.TransactionID).Msg("could not record timeout")
		}
		return result(entry), err
	}
	if err != nil {
		return result(entry), fmt.Errorf("could not await transaction: %w", err)
	}

	operations, err := o.convert.Operations(ctx, record)
	if err != nil {
		return result(entry), fmt.Errorf("could not convert execution record: %w", err)
	}

	entry.Status = record.Effects.Status
	entry.Error = record.Effects.Error
	err = o.transition(&entry, submission.StateConfirmed)
	if err != nil {
		return result(entry), err
	}

	res := result(entry)
	res.Operations = operations

	o.log.Info().
		Str("transaction", entry.TransactionID).
		Str("status", entry.Status).
		Int("operations", len(operations)).
		Msg("transaction confirmed")

	if record.Effects.Status != sui.StatusSuccess {
		return res, failure.ExecutionFailure{
			Digest: entry.TransactionID,
			Description: failure.NewDescription("transaction executed with failure status",
				failure.WithString("status", record.Effects.Status),
				failure.WithString("error", record.Effects.Error),
			),
		}
	}

	return res, nil
}

// transition records the entry in the given state, unless it already is in
// that state.
func (o *Orchestrator) transition(entry *submission.Entry, to submission.State) error {

	if entry.State == to {
		return nil
	}

	from := entry.State
	entry.State = to
	err := o.journal.Record(*entry)
	if err != nil {
		entry.State = from
		return fmt.Errorf("could not record %s transaction: %w", to, err)
	}

	o.log.Debug().
		Str("transaction", entry.TransactionID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("transaction state changed")

	return nil
}

func result(entry submission.Entry) *Result {
	r := Result{
		TransactionID: identifier.Transaction{Hash: entry.TransactionID},
		State:         entry.State,
		Status:        entry.Status,
	}
	return &r
}

func outcomeUnknown(err error) bool {
	var transport failure.RetriableRPC
	var unknown failure.SubmissionUnknown
	return errors.As(err, &transport) || errors.As(err, &unknown)
}
