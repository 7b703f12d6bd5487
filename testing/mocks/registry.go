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

type Registry struct {
	ResolveFunc  func(ctx context.Context, currency identifier.Currency) (identifier.Currency, error)
	CurrencyFunc func(ctx context.Context, coinType string) (identifier.Currency, error)
}

func BaselineRegistry(t *testing.T) *Registry {
	t.Helper()

	r := Registry{
		ResolveFunc: func(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {
			if currency.CoinType == GenericCoinType {
				return GenericCustomCurrency, nil
			}
			return GenericCurrency, nil
		},
		CurrencyFunc: func(ctx context.Context, coinType string) (identifier.Currency, error) {
			if coinType == GenericCoinType {
				return GenericCustomCurrency, nil
			}
			return GenericCurrency, nil
		},
	}

	return &r
}

func (r *Registry) Resolve(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {
	return r.ResolveFunc(ctx, currency)
}

func (r *Registry) Currency(ctx context.Context, coinType string) (identifier.Currency, error) {
	return r.CurrencyFunc(ctx, coinType)
}
