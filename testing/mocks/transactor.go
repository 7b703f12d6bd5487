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

package mocks

import (
	"context"
	"math/big"
	"testing"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
)

type Transactor struct {
	DeriveIntentFunc          func(operations []object.Operation) (*transactor.Intent, error)
	MetadataFunc              func(ctx context.Context, sender string) (*transactor.Metadata, error)
	SelectCoinsFunc           func(ctx context.Context, intent *transactor.Intent, metadata *transactor.Metadata) (*transactor.Selection, error)
	CompileTransactionFunc    func(ctx context.Context, intent *transactor.Intent, selection *transactor.Selection, metadata *transactor.Metadata) (string, error)
	SigningPayloadFunc        func(unsigned string) (object.SigningPayload, error)
	AttachSignatureFunc       func(unsigned string, signature object.Signature) (string, error)
	TransactionIdentifierFunc func(payload string) (identifier.Transaction, error)
	ParseFunc                 func(ctx context.Context, payload string) ([]object.Operation, []identifier.Account, error)
	SubmitTransactionFunc     func(ctx context.Context, signed string) (identifier.Transaction, error)
}

func BaselineTransactor(t *testing.T) *Transactor {
	t.Helper()

	tr := Transactor{
		DeriveIntentFunc: func([]object.Operation) (*transactor.Intent, error) {
			intent := transactor.Intent{
				Sender:   GenericAddress(0),
				Currency: GenericCustomCurrency,
				Recipients: []sui.Recipient{
					{Address: GenericAddress(1), Amount: big.NewInt(50_000_000)},
				},
			}
			return &intent, nil
		},
		MetadataFunc: func(_ context.Context, sender string) (*transactor.Metadata, error) {
			metadata := transactor.Metadata{
				Sender:    sender,
				GasPrice:  1000,
				GasBudget: sui.DefaultGasBudget,
			}
			return &metadata, nil
		},
		SelectCoinsFunc: func(context.Context, *transactor.Intent, *transactor.Metadata) (*transactor.Selection, error) {
			selection := transactor.Selection{
				Coins: []string{GenericAddress(10)},
				Gas:   GenericAddress(11),
			}
			return &selection, nil
		},
		CompileTransactionFunc: func(context.Context, *transactor.Intent, *transactor.Selection, *transactor.Metadata) (string, error) {
			return "unsigned", nil
		},
		SigningPayloadFunc: func(string) (object.SigningPayload, error) {
			payload := object.SigningPayload{
				AccountID:     GenericAccount(0),
				HexBytes:      "00",
				SignatureType: sui.SignatureTypeEd25519,
			}
			return payload, nil
		},
		AttachSignatureFunc: func(string, object.Signature) (string, error) {
			return "signed", nil
		},
		TransactionIdentifierFunc: func(string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
		ParseFunc: func(context.Context, string) ([]object.Operation, []identifier.Account, error) {
			return GenericOperations(), []identifier.Account{GenericAccount(0)}, nil
		},
		SubmitTransactionFunc: func(context.Context, string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
	}

	return &tr
}

func (t *Transactor) DeriveIntent(operations []object.Operation) (*transactor.Intent, error) {
	return t.DeriveIntentFunc(operations)
}

func (t *Transactor) Metadata(ctx context.Context, sender string) (*transactor.Metadata, error) {
	return t.MetadataFunc(ctx, sender)
}

func (t *Transactor) SelectCoins(ctx context.Context, intent *transactor.Intent, metadata *transactor.Metadata) (*transactor.Selection, error) {
	return t.SelectCoinsFunc(ctx, intent, metadata)
}

func (t *Transactor) CompileTransaction(ctx context.Context, intent *transactor.Intent, selection *transactor.Selection, metadata *transactor.Metadata) (string, error) {
	return t.CompileTransactionFunc(ctx, intent, selection, metadata)
}

func (t *Transactor) SigningPayload(unsigned string) (object.SigningPayload, error) {
	return t.SigningPayloadFunc(unsigned)
}

func (t *Transactor) AttachSignature(unsigned string, signature object.Signature) (string, error) {
	return t.AttachSignatureFunc(unsigned, signature)
}

func (t *Transactor) TransactionIdentifier(payload string) (identifier.Transaction, error) {
	return t.TransactionIdentifierFunc(payload)
}

func (t *Transactor) Parse(ctx context.Context, payload string) ([]object.Operation, []identifier.Account, error) {
	return t.ParseFunc(ctx, payload)
}

func (t *Transactor) SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error) {
	return t.SubmitTransactionFunc(ctx, signed)
}
