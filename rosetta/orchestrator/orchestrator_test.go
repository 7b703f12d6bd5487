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

package orchestrator_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/submission"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/converter"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/orchestrator"
	"github.com/optakt/sui-rosetta/rosetta/poller"
	"github.com/optakt/sui-rosetta/rosetta/signer"
	"github.com/optakt/sui-rosetta/rosetta/submitter"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
	"github.com/optakt/sui-rosetta/service/journal"
	"github.com/optakt/sui-rosetta/testing/helpers"
	"github.com/optakt/sui-rosetta/testing/mocks"
)

var transferBytes = []byte("custom coin transfer")

// declared returns the operations of a transfer of 50,000,000 units of the
// custom coin from the generic key's address to the second generic address.
func declared() []object.Operation {
	return []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      sui.OperationPayCoin,
			AccountID: identifier.Account{Address: mocks.GenericKeyAddress()},
			Amount:    &object.Amount{Value: "-50000000", Currency: mocks.GenericCustomCurrency},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      sui.OperationPayCoin,
			AccountID: mocks.GenericAccount(1),
			Amount:    &object.Amount{Value: "50000000", Currency: mocks.GenericCustomCurrency},
		},
	}
}

// executed returns the execution record of the declared transfer.
func executed(status string) *sui.TransactionRecord {
	sequence := mocks.GenericSequence
	sender := mocks.GenericKeyAddress()
	record := sui.TransactionRecord{
		Digest:   sui.TransactionDigest(transferBytes),
		Kind:     sui.KindProgrammable,
		Sender:   sender,
		GasOwner: sender,
		Effects: &sui.Effects{
			Status: status,
			Gas: sui.GasCost{
				Computation:   big.NewInt(1_000_000),
				Storage:       big.NewInt(2_000_000),
				Rebate:        big.NewInt(978_120),
				NonRefundable: big.NewInt(9_880),
			},
		},
		BalanceChanges: []sui.BalanceChange{
			{Owner: sender, CoinType: sui.NativeCoinType, Amount: big.NewInt(-2_021_880)},
		},
		Checkpoint: &sequence,
		Timestamp:  mocks.GenericTimestamp,
	}
	if status == sui.StatusSuccess {
		record.BalanceChanges = append(record.BalanceChanges,
			sui.BalanceChange{Owner: sender, CoinType: mocks.GenericCoinType, Amount: big.NewInt(-50_000_000)},
			sui.BalanceChange{Owner: mocks.GenericAddress(1), CoinType: mocks.GenericCoinType, Amount: big.NewInt(50_000_000)},
		)
	} else {
		record.Effects.Error = "InsufficientCoinBalance"
	}
	return &record
}

// transferLedger returns a ledger holding custom and native coins for the
// generic key's address, on which the declared transfer succeeds.
func transferLedger(t *testing.T) *mocks.Ledger {
	t.Helper()

	ledger := mocks.BaselineLedger(t)
	ledger.CoinsFunc = func(_ context.Context, owner string, coinType string) ([]sui.Coin, error) {
		assert.Equal(t, mocks.GenericKeyAddress(), owner)
		if coinType != mocks.GenericCoinType {
			return mocks.GenericCoins(4), nil
		}
		coin := sui.Coin{
			CoinType: mocks.GenericCoinType,
			ObjectID: "0x00000000000000000000000000000000000000000000000000000000000000c4",
			Version:  7,
			Digest:   mocks.GenericDigest,
			Balance:  big.NewInt(80_000_000),
		}
		return []sui.Coin{coin}, nil
	}
	ledger.PayFunc = func(_ context.Context, sender string, coins []string, recipients []sui.Recipient, _ string, _ uint64) ([]byte, error) {
		assert.Equal(t, mocks.GenericKeyAddress(), sender)
		assert.Len(t, coins, 1)
		require.Len(t, recipients, 1)
		assert.Equal(t, mocks.GenericAddress(1), recipients[0].Address)
		return transferBytes, nil
	}
	ledger.PaySuiFunc = func(context.Context, string, []string, []sui.Recipient, uint64) ([]byte, error) {
		t.Fatal("unexpected native transfer")
		return nil, nil
	}
	ledger.TransactionFunc = func(_ context.Context, digest string) (*sui.TransactionRecord, error) {
		assert.Equal(t, sui.TransactionDigest(transferBytes), digest)
		return executed(sui.StatusSuccess), nil
	}

	return ledger
}

func build(t *testing.T, ledger *mocks.Ledger, options ...func(*poller.Config)) (*orchestrator.Orchestrator, *journal.Journal) {
	t.Helper()

	j := helpers.InMemoryJournal(t)

	registry := mocks.BaselineRegistry(t)
	options = append([]func(*poller.Config){
		poller.WithInterval(time.Millisecond),
		poller.WithTimeout(50 * time.Millisecond),
	}, options...)

	o := orchestrator.New(
		zerolog.Nop(),
		transactor.New(registry, ledger, submitter.New(ledger)),
		signer.New(mocks.GenericKey),
		poller.New(zerolog.Nop(), ledger, options...),
		converter.New(registry),
		j,
	)

	return o, j
}

func TestOrchestrator_Run(t *testing.T) {

	digest := sui.TransactionDigest(transferBytes)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		o, j := build(t, transferLedger(t))

		result, err := o.Run(context.Background(), declared())

		require.NoError(t, err)
		assert.Equal(t, digest, result.TransactionID.Hash)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.Equal(t, sui.StatusSuccess, result.Status)
		assert.True(t, o.Verify(result, declared()))

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, entry.State)
		assert.Equal(t, mocks.GenericKeyAddress(), entry.Sender)
		assert.NotEmpty(t, entry.Unsigned)
		assert.NotEmpty(t, entry.Signed)
	})

	t.Run("custom coin transfer declared as pay sui", func(t *testing.T) {
		t.Parallel()

		o, _ := build(t, transferLedger(t))

		ops := declared()
		for i := range ops {
			ops[i].Type = sui.OperationPaySui
		}
		result, err := o.Run(context.Background(), ops)

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.True(t, o.Verify(result, ops))
	})

	t.Run("handles invalid operations before ledger contact", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.CoinsFunc = func(context.Context, string, string) ([]sui.Coin, error) {
			t.Fatal("unexpected ledger call")
			return nil, nil
		}
		o, _ := build(t, ledger)

		ops := declared()
		ops[1].Amount.Value = "40000000"
		result, err := o.Run(context.Background(), ops)

		var unbalanced failure.UnbalancedOperations
		assert.True(t, errors.As(err, &unbalanced))
		assert.Nil(t, result)
	})

	t.Run("handles insufficient balance", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.PayFunc = func(context.Context, string, []string, []sui.Recipient, string, uint64) ([]byte, error) {
			t.Fatal("unexpected transaction build")
			return nil, nil
		}
		o, _ := build(t, ledger)

		ops := declared()
		ops[0].Amount.Value = "-90000000"
		ops[1].Amount.Value = "90000000"
		result, err := o.Run(context.Background(), ops)

		var insufficient failure.InsufficientBalance
		assert.True(t, errors.As(err, &insufficient))
		assert.Nil(t, result)
	})

	t.Run("handles node rejection", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			return "", mocks.GenericError
		}
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			t.Fatal("unexpected confirmation wait")
			return nil, nil
		}
		o, j := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		assert.ErrorIs(t, err, mocks.GenericError)
		require.NotNil(t, result)
		assert.Equal(t, submission.StateSigned, result.State)

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateSigned, entry.State)
	})

	t.Run("handles transport failure on submission", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			return "", failure.RetriableRPC{Method: "sui_executeTransactionBlock"}
		}
		o, _ := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.True(t, o.Verify(result, declared()))
	})

	t.Run("handles confirmation timeout", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return nil, sui.ErrNotFound
		}
		o, j := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		var timeout failure.ConfirmationTimeout
		require.True(t, errors.As(err, &timeout))
		assert.Equal(t, digest, timeout.Digest)
		assert.Equal(t, submission.StateTimedOut, result.State)
		assert.False(t, o.Verify(result, declared()))

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateTimedOut, entry.State)
	})

	t.Run("handles cancellation while waiting", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ledger := transferLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			cancel()
			return nil, sui.ErrNotFound
		}
		o, j := build(t, ledger, poller.WithTimeout(time.Hour))

		result, err := o.Run(ctx, declared())

		var timeout failure.ConfirmationTimeout
		require.True(t, errors.As(err, &timeout))
		assert.True(t, timeout.Cancelled)
		assert.Equal(t, submission.StateSubmitted, result.State)

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateSubmitted, entry.State)
	})

	t.Run("handles execution failure", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return executed(sui.StatusFailure), nil
		}
		o, j := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		var execution failure.ExecutionFailure
		require.True(t, errors.As(err, &execution))
		assert.Equal(t, digest, execution.Digest)
		require.NotNil(t, result)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.Equal(t, sui.StatusFailure, result.Status)
		assert.False(t, o.Verify(result, declared()))

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, entry.State)
		assert.Equal(t, "InsufficientCoinBalance", entry.Error)
	})
}

func TestOrchestrator_Check(t *testing.T) {

	digest := sui.TransactionDigest(transferBytes)

	t.Run("resolves timed out transaction without resubmission", func(t *testing.T) {
		t.Parallel()

		final := false
		submissions := 0
		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(_ context.Context, txBytes []byte, _ [][]byte) (string, error) {
			submissions++
			return sui.TransactionDigest(txBytes), nil
		}
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			if !final {
				return nil, sui.ErrNotFound
			}
			return executed(sui.StatusSuccess), nil
		}
		o, j := build(t, ledger)

		_, err := o.Run(context.Background(), declared())
		require.Error(t, err)

		final = true
		result, err := o.Check(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.True(t, o.Verify(result, declared()))
		assert.Equal(t, 1, submissions)

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, entry.State)
	})

	t.Run("does not submit signed transaction", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			return "", mocks.GenericError
		}
		o, _ := build(t, ledger)

		_, err := o.Run(context.Background(), declared())
		require.Error(t, err)

		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			t.Fatal("unexpected submission")
			return "", nil
		}
		result, err := o.Check(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, submission.StateSigned, result.State)
	})

	t.Run("handles unknown transaction", func(t *testing.T) {
		t.Parallel()

		o, _ := build(t, transferLedger(t))

		_, err := o.Check(context.Background(), digest)

		assert.ErrorIs(t, err, journal.ErrNotFound)
	})
}

func TestOrchestrator_Resume(t *testing.T) {

	digest := sui.TransactionDigest(transferBytes)

	t.Run("submits rejected transaction again", func(t *testing.T) {
		t.Parallel()

		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			return "", mocks.GenericError
		}
		o, _ := build(t, ledger)

		_, err := o.Run(context.Background(), declared())
		require.Error(t, err)

		ledger.ExecuteFunc = func(_ context.Context, txBytes []byte, _ [][]byte) (string, error) {
			return sui.TransactionDigest(txBytes), nil
		}
		result, err := o.Resume(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
	})

	t.Run("never submits twice", func(t *testing.T) {
		t.Parallel()

		submissions := 0
		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(_ context.Context, txBytes []byte, _ [][]byte) (string, error) {
			submissions++
			return sui.TransactionDigest(txBytes), nil
		}
		o, _ := build(t, ledger)

		_, err := o.Run(context.Background(), declared())
		require.NoError(t, err)

		result, err := o.Resume(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.Equal(t, 1, submissions)
	})
	t.Run("never submits again after unexpected digest", func(t *testing.T) {
		t.Parallel()

		submissions := 0
		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(context.Context, []byte, [][]byte) (string, error) {
			submissions++
			return mocks.GenericCheckpointDigest, nil
		}
		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return nil, sui.ErrNotFound
		}
		o, j := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		var timeout failure.ConfirmationTimeout
		require.True(t, errors.As(err, &timeout))
		assert.Equal(t, submission.StateTimedOut, result.State)

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Contains(t, entry.Error, "confirmation timed out")

		ledger.TransactionFunc = func(context.Context, string) (*sui.TransactionRecord, error) {
			return executed(sui.StatusSuccess), nil
		}
		result, err = o.Resume(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)
		assert.Equal(t, 1, submissions)
	})

	t.Run("never submits again after unknown execution outcome", func(t *testing.T) {
		t.Parallel()

		submissions := 0
		ledger := transferLedger(t)
		ledger.ExecuteFunc = func(_ context.Context, txBytes []byte, _ [][]byte) (string, error) {
			submissions++
			return "", failure.SubmissionUnknown{
				Digest:      sui.TransactionDigest(txBytes),
				Description: failure.NewDescription("transaction timed out before reaching finality"),
			}
		}
		o, j := build(t, ledger)

		result, err := o.Run(context.Background(), declared())

		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, result.State)

		entry, err := j.Entry(digest)
		require.NoError(t, err)
		assert.Equal(t, submission.StateConfirmed, entry.State)

		_, err = o.Resume(context.Background(), digest)

		require.NoError(t, err)
		assert.Equal(t, 1, submissions)
	})
}
