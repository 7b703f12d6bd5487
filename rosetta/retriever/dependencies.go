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

package retriever

import (
	"context"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type Validator interface {
	Block(ctx context.Context, block identifier.Block) (identifier.Block, error)
	Account(account identifier.Account) (identifier.Account, error)
	Currency(ctx context.Context, currency identifier.Currency) (identifier.Currency, error)
	Transaction(transaction identifier.Transaction) error
}

type Ledger interface {
	LatestCheckpoint(ctx context.Context) (uint64, error)
	Checkpoint(ctx context.Context, sequence uint64) (*sui.Checkpoint, error)
	Transaction(ctx context.Context, digest string) (*sui.TransactionRecord, error)
	Coins(ctx context.Context, owner string, coinType string) ([]sui.Coin, error)
	Stakes(ctx context.Context, owner string) ([]sui.Stake, error)
}

type Converter interface {
	Transaction(ctx context.Context, record *sui.TransactionRecord) (*object.Transaction, error)
}
