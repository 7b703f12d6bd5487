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

package rosetta

import (
	"context"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
)

// Transactor is used by the Rosetta Construction API to handle transaction related operations.
type Transactor interface {
	DeriveIntent(operations []object.Operation) (*transactor.Intent, error)
	Metadata(ctx context.Context, sender string) (*transactor.Metadata, error)
	SelectCoins(ctx context.Context, intent *transactor.Intent, metadata *transactor.Metadata) (*transactor.Selection, error)
	CompileTransaction(ctx context.Context, intent *transactor.Intent, selection *transactor.Selection, metadata *transactor.Metadata) (string, error)
	SigningPayload(unsigned string) (object.SigningPayload, error)
	AttachSignature(unsigned string, signature object.Signature) (string, error)
	TransactionIdentifier(payload string) (identifier.Transaction, error)
	Parse(ctx context.Context, payload string) ([]object.Operation, []identifier.Account, error)
	SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error)
}
