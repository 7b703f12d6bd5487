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

package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/registry"
	"github.com/optakt/sui-rosetta/testing/mocks"
)

func TestRegistry_Resolve(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinMetadataFunc = func(_ context.Context, coinType string) (*sui.CoinMetadata, error) {
			assert.Equal(t, mocks.GenericCoinType, coinType)
			return mocks.GenericMetadata, nil
		}

		reg, err := registry.New(ledger)
		require.NoError(t, err)

		got, err := reg.Resolve(context.Background(), identifier.Currency{CoinType: "0xc3::coin::COIN"})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCustomCurrency, got)
	})

	t.Run("native coin is resolved locally", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinMetadataFunc = func(context.Context, string) (*sui.CoinMetadata, error) {
			t.Fatal("unexpected ledger call")
			return nil, nil
		}

		reg, err := registry.New(ledger)
		require.NoError(t, err)

		got, err := reg.Resolve(context.Background(), identifier.Currency{CoinType: "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI"})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCurrency, got)
	})

	t.Run("caller metadata is kept", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinMetadataFunc = func(context.Context, string) (*sui.CoinMetadata, error) {
			t.Fatal("unexpected ledger call")
			return nil, nil
		}

		reg, err := registry.New(ledger)
		require.NoError(t, err)

		currency := identifier.Currency{CoinType: mocks.GenericCoinType, Symbol: "MINE", Decimals: 3}
		got, err := reg.Resolve(context.Background(), currency)

		require.NoError(t, err)
		assert.Equal(t, currency, got)
	})

	t.Run("unknown coin type is not an error", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinMetadataFunc = func(context.Context, string) (*sui.CoinMetadata, error) {
			return nil, sui.ErrNotFound
		}

		reg, err := registry.New(ledger)
		require.NoError(t, err)

		got, err := reg.Resolve(context.Background(), identifier.Currency{CoinType: mocks.GenericCoinType, Symbol: "X"})

		require.NoError(t, err)
		assert.Equal(t, identifier.Currency{CoinType: mocks.GenericCoinType, Symbol: "X"}, got)
	})

	t.Run("handles invalid coin type", func(t *testing.T) {
		t.Parallel()

		reg, err := registry.New(mocks.BaselineLedger(t))
		require.NoError(t, err)

		_, err = reg.Resolve(context.Background(), identifier.Currency{CoinType: "SUI"})

		var fail failure.InvalidCurrency
		require.True(t, errors.As(err, &fail))
		assert.Equal(t, "SUI", fail.CoinType)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinMetadataFunc = func(context.Context, string) (*sui.CoinMetadata, error) {
			return nil, mocks.GenericError
		}

		reg, err := registry.New(ledger)
		require.NoError(t, err)

		_, err = reg.Resolve(context.Background(), identifier.Currency{CoinType: mocks.GenericCoinType})

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}
