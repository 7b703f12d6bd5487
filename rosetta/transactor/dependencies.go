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

package transactor

import (
	"context"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Registry completes currencies of parsed transactions.
type Registry interface {
	Currency(ctx context.Context, coinType string) (identifier.Currency, error)
}

// Ledger is the subset of the ledger client needed to build transactions.
type Ledger interface {
	Coins(ctx context.Context, owner string, coinType string) ([]sui.Coin, error)
	ReferenceGasPrice(ctx context.Context) (uint64, error)
	PaySui(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, budget uint64) ([]byte, error)
	Pay(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error)
}

// Submitter submits signed transactions for execution.
type Submitter interface {
	Transaction(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error)
}
