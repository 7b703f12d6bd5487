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
	"testing"
	"time"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type Retriever struct {
	OldestFunc      func(ctx context.Context) (identifier.Block, time.Time, error)
	CurrentFunc     func(ctx context.Context) (identifier.Block, time.Time, error)
	BalancesFunc    func(ctx context.Context, block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error)
	BlockFunc       func(ctx context.Context, id identifier.Block) (*object.Block, []identifier.Transaction, error)
	TransactionFunc func(ctx context.Context, block identifier.Block, id identifier.Transaction) (*object.Transaction, error)
}

func BaselineRetriever(t *testing.T) *Retriever {
	t.Helper()

	r := Retriever{
		OldestFunc: func(context.Context) (identifier.Block, time.Time, error) {
			return GenericBlockID, GenericTimestamp, nil
		},
		CurrentFunc: func(context.Context) (identifier.Block, time.Time, error) {
			return GenericBlockID, GenericTimestamp, nil
		},
		BalancesFunc: func(_ context.Context, _ identifier.Block, _ identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {
			amounts := make([]object.Amount, 0, len(currencies))
			for _, currency := range currencies {
				amounts = append(amounts, object.Amount{Value: "100", Currency: currency})
			}
			return GenericBlockID, amounts, nil
		},
		BlockFunc: func(context.Context, identifier.Block) (*object.Block, []identifier.Transaction, error) {
			block := object.Block{
				ID:        GenericBlockID,
				ParentID:  GenericBlockID,
				Timestamp: GenericTimestamp.UnixMilli(),
				Transactions: []*object.Transaction{
					{ID: GenericTransactionID, Operations: GenericOperations()},
				},
			}
			return &block, nil, nil
		},
		TransactionFunc: func(context.Context, identifier.Block, identifier.Transaction) (*object.Transaction, error) {
			return &object.Transaction{ID: GenericTransactionID, Operations: GenericOperations()}, nil
		},
	}

	return &r
}

func (r *Retriever) Oldest(ctx context.Context) (identifier.Block, time.Time, error) {
	return r.OldestFunc(ctx)
}

func (r *Retriever) Current(ctx context.Context) (identifier.Block, time.Time, error) {
	return r.CurrentFunc(ctx)
}

func (r *Retriever) Balances(ctx context.Context, block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {
	return r.BalancesFunc(ctx, block, account, currencies)
}

func (r *Retriever) Block(ctx context.Context, id identifier.Block) (*object.Block, []identifier.Transaction, error) {
	return r.BlockFunc(ctx, id)
}

func (r *Retriever) Transaction(ctx context.Context, block identifier.Block, id identifier.Transaction) (*object.Transaction, error) {
	return r.TransactionFunc(ctx, block, id)
}
