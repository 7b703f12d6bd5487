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
	"time"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Retriever is used by the Rosetta Data API to read ledger state.
type Retriever interface {
	Oldest(ctx context.Context) (identifier.Block, time.Time, error)
	Current(ctx context.Context) (identifier.Block, time.Time, error)
	Balances(ctx context.Context, block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error)
	Block(ctx context.Context, id identifier.Block) (*object.Block, []identifier.Transaction, error)
	Transaction(ctx context.Context, block identifier.Block, id identifier.Transaction) (*object.Transaction, error)
}
