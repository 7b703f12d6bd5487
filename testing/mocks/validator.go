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

	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

type Validator struct {
	BlockFunc       func(ctx context.Context, block identifier.Block) (identifier.Block, error)
	AccountFunc     func(account identifier.Account) (identifier.Account, error)
	CurrencyFunc    func(ctx context.Context, currency identifier.Currency) (identifier.Currency, error)
	TransactionFunc func(transaction identifier.Transaction) error
}

func BaselineValidator(t *testing.T) *Validator {
	t.Helper()

	v := Validator{
		BlockFunc: func(ctx context.Context, block identifier.Block) (identifier.Block, error) {
			return GenericBlockID, nil
		},
		AccountFunc: func(account identifier.Account) (identifier.Account, error) {
			return account, nil
		},
		CurrencyFunc: func(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {
			if currency.CoinType == GenericCoinType {
				return GenericCustomCurrency, nil
			}
			return GenericCurrency, nil
		},
		TransactionFunc: func(transaction identifier.Transaction) error {
			return nil
		},
	}

	return &v
}

func (v *Validator) Block(ctx context.Context, block identifier.Block) (identifier.Block, error) {
	return v.BlockFunc(ctx, block)
}

func (v *Validator) Account(account identifier.Account) (identifier.Account, error) {
	return v.AccountFunc(account)
}

func (v *Validator) Currency(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {
	return v.CurrencyFunc(ctx, currency)
}

func (v *Validator) Transaction(transaction identifier.Transaction) error {
	return v.TransactionFunc(transaction)
}
