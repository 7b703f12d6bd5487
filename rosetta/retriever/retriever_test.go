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

package retriever_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/retriever"
	"github.com/optakt/sui-rosetta/testing/mocks"
)

func TestRetriever_Oldest(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(_ context.Context, sequence uint64) (*sui.Checkpoint, error) {
			assert.Zero(t, sequence)
			return mocks.GenericCheckpoint, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		block, timestamp, err := ret.Oldest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, block)
		assert.Equal(t, mocks.GenericTimestamp, timestamp)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(context.Context, uint64) (*sui.Checkpoint, error) {
			return nil, mocks.GenericError
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, _, err := ret.Oldest(context.Background())

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestRetriever_Current(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(_ context.Context, sequence uint64) (*sui.Checkpoint, error) {
			assert.Equal(t, mocks.GenericSequence, sequence)
			return mocks.GenericCheckpoint, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		block, timestamp, err := ret.Current(context.Background())

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, block)
		assert.Equal(t, mocks.GenericTimestamp, timestamp)
	})

	t.Run("handles latest checkpoint failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.LatestCheckpointFunc = func(context.Context) (uint64, error) {
			return 0, mocks.GenericError
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, _, err := ret.Current(context.Background())

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

// holdings returns a ledger that serves the coins of scenario A: the first
// generic address holds 150,000,000,000,000,000 MIST and 100,000,000 units of
// the custom coin.
func holdings(t *testing.T) *mocks.Ledger {
	t.Helper()

	native, _ := new(big.Int).SetString("150000000000000000", 10)

	ledger := mocks.BaselineLedger(t)
	ledger.CoinsFunc = func(_ context.Context, owner string, coinType string) ([]sui.Coin, error) {
		if owner != mocks.GenericAddress(0) {
			return nil, nil
		}
		switch coinType {
		case sui.NativeCoinType:
			return []sui.Coin{
				{CoinType: sui.NativeCoinType, ObjectID: fmt.Sprintf("0x%064x", 1), Balance: new(big.Int).Sub(native, big.NewInt(1))},
				{CoinType: sui.NativeCoinType, ObjectID: fmt.Sprintf("0x%064x", 2), Balance: big.NewInt(1)},
			}, nil
		case mocks.GenericCoinType:
			return []sui.Coin{
				{CoinType: "0xc3::coin::COIN", ObjectID: fmt.Sprintf("0x%064x", 3), Balance: big.NewInt(100_000_000)},
			}, nil
		}
		return nil, nil
	}

	return ledger
}

func TestRetriever_Balances(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ret := retriever.New(mocks.BaselineValidator(t), holdings(t), mocks.BaselineConverter(t))

		currencies := []identifier.Currency{
			{CoinType: sui.NativeCoinType},
			{CoinType: mocks.GenericCoinType},
		}
		block, amounts, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), currencies)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, block)
		want := []object.Amount{
			{Value: "150000000000000000", Currency: mocks.GenericCurrency},
			{Value: "100000000", Currency: mocks.GenericCustomCurrency},
		}
		assert.Equal(t, want, amounts)
	})

	t.Run("preserves request order", func(t *testing.T) {
		t.Parallel()

		ret := retriever.New(mocks.BaselineValidator(t), holdings(t), mocks.BaselineConverter(t))

		currencies := []identifier.Currency{
			{CoinType: mocks.GenericCoinType},
			{CoinType: sui.NativeCoinType},
			{CoinType: mocks.GenericCoinType},
		}
		_, amounts, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), currencies)

		require.NoError(t, err)
		require.Len(t, amounts, 3)
		assert.Equal(t, "100000000", amounts[0].Value)
		assert.Equal(t, "150000000000000000", amounts[1].Value)
		assert.Equal(t, "100000000", amounts[2].Value)
	})

	t.Run("currency never held is zero", func(t *testing.T) {
		t.Parallel()

		ret := retriever.New(mocks.BaselineValidator(t), holdings(t), mocks.BaselineConverter(t))

		currencies := []identifier.Currency{
			{CoinType: mocks.GenericCoinType},
			{CoinType: sui.NativeCoinType},
		}
		_, amounts, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(1), currencies)

		require.NoError(t, err)
		require.Len(t, amounts, 2)
		assert.Equal(t, "0", amounts[0].Value)
		assert.Equal(t, "0", amounts[1].Value)
	})

	t.Run("ignores coins of other types", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinsFunc = func(context.Context, string, string) ([]sui.Coin, error) {
			return []sui.Coin{
				{CoinType: sui.NativeCoinType, Balance: big.NewInt(5)},
				{CoinType: mocks.GenericCoinType, Balance: big.NewInt(7)},
			}, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, amounts, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCustomCurrency})

		require.NoError(t, err)
		assert.Equal(t, "7", amounts[0].Value)
	})

	t.Run("staking partitions", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.StakesFunc = func(_ context.Context, owner string) ([]sui.Stake, error) {
			assert.Equal(t, mocks.GenericAddress(0), owner)
			return []sui.Stake{
				{Status: sui.StakeActive, Principal: big.NewInt(1_000), EstimatedReward: big.NewInt(10)},
				{Status: sui.StakeActive, Principal: big.NewInt(2_000), EstimatedReward: big.NewInt(20)},
				{Status: sui.StakePending, Principal: big.NewInt(500)},
			}, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		tests := map[string]string{
			sui.PartitionStake:           "3000",
			sui.PartitionPendingStake:    "500",
			sui.PartitionEstimatedReward: "30",
		}
		for partition, want := range tests {
			account := mocks.GenericAccount(0)
			account.SubAccount = &identifier.SubAccount{Address: partition}

			_, amounts, err := ret.Balances(context.Background(), identifier.Block{}, account, []identifier.Currency{mocks.GenericCurrency, mocks.GenericCustomCurrency})

			require.NoError(t, err)
			require.Len(t, amounts, 2)
			assert.Equal(t, want, amounts[0].Value, partition)
			assert.Equal(t, "0", amounts[1].Value, partition)
		}
	})

	t.Run("explicit latest block is accepted", func(t *testing.T) {
		t.Parallel()

		ret := retriever.New(mocks.BaselineValidator(t), holdings(t), mocks.BaselineConverter(t))

		block, _, err := ret.Balances(context.Background(), mocks.GenericBlockID, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCurrency})

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericBlockID, block)
	})

	t.Run("serves pinned block lagging behind latest", func(t *testing.T) {
		t.Parallel()

		latest := mocks.GenericSequence + 2
		current := identifier.Block{Index: &latest, Hash: mocks.GenericDigest}
		validate := mocks.BaselineValidator(t)
		validate.BlockFunc = func(_ context.Context, block identifier.Block) (identifier.Block, error) {
			if block.IsEmpty() {
				return current, nil
			}
			return mocks.GenericBlockID, nil
		}

		ret := retriever.New(validate, holdings(t), mocks.BaselineConverter(t))

		block, amounts, err := ret.Balances(context.Background(), mocks.GenericBlockID, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCustomCurrency})

		require.NoError(t, err)
		assert.Equal(t, current, block)
		require.Len(t, amounts, 1)
		assert.Equal(t, "100000000", amounts[0].Value)
	})

	t.Run("handles historical block", func(t *testing.T) {
		t.Parallel()

		latest := mocks.GenericSequence + 100
		validate := mocks.BaselineValidator(t)
		validate.BlockFunc = func(_ context.Context, block identifier.Block) (identifier.Block, error) {
			if block.IsEmpty() {
				return identifier.Block{Index: &latest, Hash: mocks.GenericDigest}, nil
			}
			return mocks.GenericBlockID, nil
		}

		ret := retriever.New(validate, holdings(t), mocks.BaselineConverter(t), retriever.WithBalanceLag(10))

		_, _, err := ret.Balances(context.Background(), mocks.GenericBlockID, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCurrency})

		var historical failure.HistoricalBalance
		require.ErrorAs(t, err, &historical)
		assert.Equal(t, mocks.GenericSequence, historical.Index)
		assert.Equal(t, latest, historical.Latest)
	})

	t.Run("handles invalid block", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.BlockFunc = func(context.Context, identifier.Block) (identifier.Block, error) {
			return identifier.Block{}, failure.UnknownBlock{}
		}

		ret := retriever.New(validate, holdings(t), mocks.BaselineConverter(t))

		_, _, err := ret.Balances(context.Background(), mocks.GenericBlockID, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCurrency})

		assert.ErrorAs(t, err, &failure.UnknownBlock{})
	})

	t.Run("handles invalid account", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.AccountFunc = func(identifier.Account) (identifier.Account, error) {
			return identifier.Account{}, failure.InvalidAccount{}
		}

		ret := retriever.New(validate, holdings(t), mocks.BaselineConverter(t))

		_, _, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCurrency})

		assert.ErrorAs(t, err, &failure.InvalidAccount{})
	})

	t.Run("reports first failing currency in request order", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.CurrencyFunc = func(_ context.Context, currency identifier.Currency) (identifier.Currency, error) {
			return identifier.Currency{}, failure.InvalidCurrency{CoinType: currency.CoinType}
		}

		ret := retriever.New(validate, holdings(t), mocks.BaselineConverter(t))

		currencies := []identifier.Currency{{CoinType: "first"}, {CoinType: "second"}, {CoinType: "third"}}
		_, _, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), currencies)

		var fail failure.InvalidCurrency
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, "first", fail.CoinType)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinsFunc = func(context.Context, string, string) ([]sui.Coin, error) {
			return nil, failure.RetriableRPC{Method: "suix_getCoins"}
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, _, err := ret.Balances(context.Background(), identifier.Block{}, mocks.GenericAccount(0), []identifier.Currency{mocks.GenericCurrency})

		assert.ErrorAs(t, err, &failure.RetriableRPC{})
	})
}

func TestRetriever_Block(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.TransactionFunc = func(_ context.Context, digest string) (*sui.TransactionRecord, error) {
			assert.Equal(t, mocks.GenericDigest, digest)
			return mocks.GenericRecord(), nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		block, other, err := ret.Block(context.Background(), mocks.GenericBlockID)

		require.NoError(t, err)
		assert.Empty(t, other)
		assert.Equal(t, mocks.GenericBlockID, block.ID)
		require.NotNil(t, block.ParentID.Index)
		assert.Equal(t, mocks.GenericSequence-1, *block.ParentID.Index)
		assert.Equal(t, mocks.GenericCheckpoint.PreviousDigest, block.ParentID.Hash)
		assert.Equal(t, mocks.GenericTimestamp.UnixNano()/1_000_000, block.Timestamp)
		require.Len(t, block.Transactions, 1)
		assert.Equal(t, mocks.GenericTransactionID, block.Transactions[0].ID)
	})

	t.Run("keeps checkpoint order and applies limit", func(t *testing.T) {
		t.Parallel()

		digests := []string{"a", "b", "c", "d", "e"}
		checkpoint := *mocks.GenericCheckpoint
		checkpoint.Transactions = digests

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(context.Context, uint64) (*sui.Checkpoint, error) {
			return &checkpoint, nil
		}
		var mu sync.Mutex
		var requested []string
		ledger.TransactionFunc = func(_ context.Context, digest string) (*sui.TransactionRecord, error) {
			mu.Lock()
			requested = append(requested, digest)
			mu.Unlock()
			record := mocks.GenericRecord()
			record.Digest = digest
			return record, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t), retriever.WithTransactionLimit(3))

		block, other, err := ret.Block(context.Background(), mocks.GenericBlockID)

		require.NoError(t, err)
		require.Len(t, block.Transactions, 3)
		for i, transaction := range block.Transactions {
			assert.Equal(t, digests[i], transaction.ID.Hash)
		}
		assert.Equal(t, []identifier.Transaction{{Hash: "d"}, {Hash: "e"}}, other)
		assert.ElementsMatch(t, digests[:3], requested)
	})

	t.Run("genesis is its own parent", func(t *testing.T) {
		t.Parallel()

		genesis := *mocks.GenericCheckpoint
		genesis.SequenceNumber = 0

		ledger := mocks.BaselineLedger(t)
		ledger.CheckpointFunc = func(context.Context, uint64) (*sui.Checkpoint, error) {
			return &genesis, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		block, _, err := ret.Block(context.Background(), mocks.GenericBlockID)

		require.NoError(t, err)
		assert.Equal(t, block.ID, block.ParentID)
	})

	t.Run("handles transaction failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return nil, mocks.GenericError
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, _, err := ret.Block(context.Background(), mocks.GenericBlockID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles converter failure", func(t *testing.T) {
		t.Parallel()

		convert := mocks.BaselineConverter(t)
		convert.TransactionFunc = func(context.Context, *sui.TransactionRecord) (*object.Transaction, error) {
			return nil, mocks.GenericError
		}

		ret := retriever.New(mocks.BaselineValidator(t), mocks.BaselineLedger(t), convert)

		_, _, err := ret.Block(context.Background(), mocks.GenericBlockID)

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestRetriever_Transaction(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ret := retriever.New(mocks.BaselineValidator(t), mocks.BaselineLedger(t), mocks.BaselineConverter(t))

		got, err := ret.Transaction(context.Background(), mocks.GenericBlockID, mocks.GenericTransactionID)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericTransactionID, got.ID)
		assert.Equal(t, mocks.GenericOperations(), got.Operations)
	})

	t.Run("handles unknown transaction", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return nil, sui.ErrNotFound
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, err := ret.Transaction(context.Background(), mocks.GenericBlockID, mocks.GenericTransactionID)

		assert.ErrorAs(t, err, &failure.UnknownTransaction{})
	})

	t.Run("handles transaction of another block", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			record := mocks.GenericRecord()
			other := mocks.GenericSequence - 1
			record.Checkpoint = &other
			return record, nil
		}

		ret := retriever.New(mocks.BaselineValidator(t), ledger, mocks.BaselineConverter(t))

		_, err := ret.Transaction(context.Background(), mocks.GenericBlockID, mocks.GenericTransactionID)

		assert.ErrorAs(t, err, &failure.UnknownTransaction{})
	})

	t.Run("handles invalid transaction identifier", func(t *testing.T) {
		t.Parallel()

		validate := mocks.BaselineValidator(t)
		validate.TransactionFunc = func(identifier.Transaction) error {
			return failure.InvalidTransaction{}
		}

		ret := retriever.New(validate, mocks.BaselineLedger(t), mocks.BaselineConverter(t))

		_, err := ret.Transaction(context.Background(), mocks.GenericBlockID, mocks.GenericTransactionID)

		assert.ErrorAs(t, err, &failure.InvalidTransaction{})
	})
}
