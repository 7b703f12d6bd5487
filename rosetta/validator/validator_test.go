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

package validator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/validator"
	"github.com/optakt/sui-rosetta/testing/mocks"
)

func TestValidator_Block(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(_ context.Context, sequence uint64) (*sui.Checkpoint, error) {
			assert.Equal(t, mocks.GenericSequence, sequence)
			return mocks.GenericCheckpoint, nil
		}

		v := validator.New(ledger, mocks.BaselineRegistry(t))

		got, err := v.Block(context.Background(), mocks.GenericBlockID)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, got)
	})

	t.Run("empty identifier resolves to latest checkpoint", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		got, err := v.Block(context.Background(), identifier.Block{})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, got)
	})

	t.Run("hash only identifier is completed", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointByDigestFunc = func(_ context.Context, digest string) (*sui.Checkpoint, error) {
			assert.Equal(t, mocks.GenericCheckpointDigest, digest)
			return mocks.GenericCheckpoint, nil
		}

		v := validator.New(ledger, mocks.BaselineRegistry(t))

		got, err := v.Block(context.Background(), identifier.Block{Hash: mocks.GenericCheckpointDigest})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, got)
	})

	t.Run("handles index above latest checkpoint", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		index := mocks.GenericSequence + 1
		_, err := v.Block(context.Background(), identifier.Block{Index: &index})

		assert.ErrorAs(t, err, &failure.UnknownBlock{})
	})

	t.Run("handles malformed hash", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		_, err := v.Block(context.Background(), identifier.Block{Hash: "not-a-digest"})

		assert.ErrorAs(t, err, &failure.InvalidBlock{})
	})

	t.Run("handles unknown hash", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointByDigestFunc = func(context.Context, string) (*sui.Checkpoint, error) {
			return nil, sui.ErrNotFound
		}

		v := validator.New(ledger, mocks.BaselineRegistry(t))

		_, err := v.Block(context.Background(), identifier.Block{Hash: mocks.GenericCheckpointDigest})

		assert.ErrorAs(t, err, &failure.InvalidBlock{})
	})

	t.Run("handles pruned checkpoint", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(context.Context, uint64) (*sui.Checkpoint, error) {
			return nil, sui.ErrNotFound
		}

		v := validator.New(ledger, mocks.BaselineRegistry(t))

		_, err := v.Block(context.Background(), mocks.GenericBlockID)

		assert.ErrorAs(t, err, &failure.InvalidBlock{})
	})

	t.Run("handles mismatching hash", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		index := mocks.GenericSequence
		_, err := v.Block(context.Background(), identifier.Block{Index: &index, Hash: mocks.GenericDigest})

		assert.ErrorAs(t, err, &failure.InvalidBlock{})
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.LatestCheckpointFunc = func(context.Context) (uint64, error) {
			return 0, mocks.GenericError
		}

		v := validator.New(ledger, mocks.BaselineRegistry(t))

		_, err := v.Block(context.Background(), mocks.GenericBlockID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestValidator_Account(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		address := mocks.GenericAddress(10)
		account := identifier.Account{Address: "0x" + strings.ToUpper(address[2:])}

		got, err := v.Account(account)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericAccount(10), got)
	})

	t.Run("staking partition is accepted", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		account := mocks.GenericAccount(0)
		account.SubAccount = &identifier.SubAccount{Address: sui.PartitionPendingStake}

		got, err := v.Account(account)

		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("handles short address", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		_, err := v.Account(identifier.Account{Address: "0x2"})

		assert.ErrorAs(t, err, &failure.InvalidAccount{})
	})

	t.Run("handles unknown partition", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		account := mocks.GenericAccount(0)
		account.SubAccount = &identifier.SubAccount{Address: "Locked"}

		_, err := v.Account(account)

		assert.ErrorAs(t, err, &failure.InvalidAccount{})
	})
}

func TestValidator_Currency(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		got, err := v.Currency(context.Background(), identifier.Currency{CoinType: mocks.GenericCoinType})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCustomCurrency, got)
	})

	t.Run("handles registry failure", func(t *testing.T) {
		t.Parallel()

		registry := mocks.BaselineRegistry(t)
		registry.ResolveFunc = func(context.Context, identifier.Currency) (identifier.Currency, error) {
			return identifier.Currency{}, failure.InvalidCurrency{CoinType: "0x2::"}
		}

		v := validator.New(mocks.BaselineLedger(t), registry)

		_, err := v.Currency(context.Background(), identifier.Currency{CoinType: "0x2::"})

		assert.ErrorAs(t, err, &failure.InvalidCurrency{})
	})
}

func TestValidator_Transaction(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		err := v.Transaction(mocks.GenericTransactionID)

		assert.NoError(t, err)
	})

	t.Run("handles invalid digest", func(t *testing.T) {
		t.Parallel()

		v := validator.New(mocks.BaselineLedger(t), mocks.BaselineRegistry(t))

		err := v.Transaction(identifier.Transaction{Hash: "0OIl"})

		assert.ErrorAs(t, err, &failure.InvalidTransaction{})
	})
}
