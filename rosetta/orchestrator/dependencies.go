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

	"github.com/optakt/sui-rosetta/models/submission"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
)

// Transactor builds, signs and submits transactions.
type Transactor interface {
	DeriveIntent(operations []object.Operation) (*transactor.Intent, error)
	Metadata(ctx context.Context, sender string) (*transactor.Metadata, error)
	SelectCoins(ctx context.Context, intent *transactor.Intent, metadata *transactor.Metadata) (*transactor.Selection, error)
	CompileTransaction(ctx context.Context, intent *transactor.Intent, selection *transactor.Selection, metadata *transactor.Metadata) (string, error)
	SigningPayload(unsigned string) (object.SigningPayload, error)
	AttachSignature(unsigned string, signature object.Signature) (string, error)
	TransactionIdentifier(payload string) (identifier.Transaction, error)
	SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error)
}

// Signer signs payloads on behalf of accounts.
type Signer interface {
	Sign(account identifier.Account, payload object.SigningPayload) (object.Signature, error)
}

// Poller waits for transactions to become final.
type Poller interface {
	Await(ctx context.Context, digest string) (*sui.TransactionRecord, error)
}

// Converter translates execution records into operations.
type Converter interface {
	Operations(ctx context.Context, record *sui.TransactionRecord) ([]object.Operation, error)
}

// Journal persists the construction state of transactions.
type Journal interface {
	Record(entry submission.Entry) error
	Entry(txID string) (*submission.Entry, error)
}
