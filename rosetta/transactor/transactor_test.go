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

package transactor_test

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
	"github.com/optakt/sui-rosetta/testing/mocks"
)

func baselineTransactor(t *testing.T) *transactor.Transactor {
	t.Helper()
	return transactor.New(mocks.BaselineRegistry(t), mocks.BaselineLedger(t), mocks.BaselineSubmitter(t))
}

// offlineLedger fails the test on any ledger call.
func offlineLedger(t *testing.T) *mocks.Ledger {
	t.Helper()

	ledger := mocks.BaselineLedger(t)
	ledger.CoinsFunc = func(context.Context, string, string) ([]sui.Coin, error) {
		t.Fatal("unexpected ledger call")
		return nil, nil
	}
	ledger.ReferenceGasPriceFunc = func(context.Context) (uint64, error) {
		t.Fatal("unexpected ledger call")
		return 0, nil
	}
	ledger.CoinMetadataFunc = func(context.Context, string) (*sui.CoinMetadata, error) {
		t.Fatal("unexpected ledger call")
		return nil, nil
	}

	return ledger
}

func transfer(coinType string, opType string, amounts ...string) []object.Operation {
	currency := identifier.Currency{CoinType: coinType}
	operations := make([]object.Operation, 0, len(amounts))
	for i, amount := range amounts {
		operations = append(operations, object.Operation{
			ID:        identifier.Operation{Index: uint(i)},
			Type:      opType,
			AccountID: mocks.GenericAccount(i),
			Amount:    &object.Amount{Value: amount, Currency: currency},
		})
	}
	return operations
}

func TestTransactor_DeriveIntent(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := transactor.New(mocks.BaselineRegistry(t), offlineLedger(t), mocks.BaselineSubmitter(t))

		intent, err := tr.DeriveIntent(mocks.GenericOperations())

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericAddress(0), intent.Sender)
		assert.Equal(t, mocks.GenericCustomCurrency, intent.Currency)
		require.Len(t, intent.Recipients, 1)
		assert.Equal(t, mocks.GenericAddress(1), intent.Recipients[0].Address)
		assert.Equal(t, big.NewInt(50_000_000), intent.Recipients[0].Amount)
		assert.False(t, intent.Native())
		assert.Equal(t, big.NewInt(50_000_000), intent.Total())
	})

	t.Run("merges recipients in declared order", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer(sui.NativeCoinType, sui.OperationPaySui, "-600", "100", "200")
		extra := operations[1]
		extra.ID.Index = 3
		extra.Amount = &object.Amount{Value: "300", Currency: extra.Amount.Currency}
		operations = append(operations, extra)

		intent, err := tr.DeriveIntent(operations)

		require.NoError(t, err)
		assert.True(t, intent.Native())
		want := []sui.Recipient{
			{Address: mocks.GenericAddress(1), Amount: big.NewInt(400)},
			{Address: mocks.GenericAddress(2), Amount: big.NewInt(200)},
		}
		assert.Equal(t, want, intent.Recipients)
	})

	t.Run("canonicalizes coin type", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer("0xc3::coin::COIN", sui.OperationPayCoin, "-5", "5")

		intent, err := tr.DeriveIntent(operations)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericCoinType, intent.Currency.CoinType)
	})

	t.Run("handles unsupported operation type", func(t *testing.T) {
		t.Parallel()

		tr := transactor.New(mocks.BaselineRegistry(t), offlineLedger(t), mocks.BaselineSubmitter(t))

		// Also unbalanced, but the type is checked first.
		operations := transfer(sui.NativeCoinType, sui.OperationStake, "-5", "6")

		_, err := tr.DeriveIntent(operations)

		var fail failure.UnsupportedOperationType
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, sui.OperationStake, fail.Type)
	})

	t.Run("handles unbalanced operations without ledger call", func(t *testing.T) {
		t.Parallel()

		tr := transactor.New(mocks.BaselineRegistry(t), offlineLedger(t), mocks.BaselineSubmitter(t))

		operations := transfer(mocks.GenericCoinType, sui.OperationPayCoin, "-50000000", "49999999")

		_, err := tr.DeriveIntent(operations)

		var fail failure.UnbalancedOperations
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, "-1", fail.Sum)
		assert.Equal(t, mocks.GenericCoinType, fail.CoinType)
	})

	t.Run("handles multiple senders", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer(sui.NativeCoinType, sui.OperationPaySui, "-5", "-5", "10")

		_, err := tr.DeriveIntent(operations)

		var fail failure.MultiSenderUnsupported
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, []string{mocks.GenericAddress(0), mocks.GenericAddress(1)}, fail.Senders)
	})

	t.Run("handles multiple currencies", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := append(
			transfer(sui.NativeCoinType, sui.OperationPaySui, "-5", "5"),
			transfer(mocks.GenericCoinType, sui.OperationPayCoin, "-7", "7")...,
		)

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles empty operations", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		_, err := tr.DeriveIntent(nil)

		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles missing amount", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := mocks.GenericOperations()
		operations[0].Amount = nil

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles unparseable amount", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer(sui.NativeCoinType, sui.OperationPaySui, "-5.5", "5.5")

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("accepts pay sui for custom coin", func(t *testing.T) {
		t.Parallel()

		tr := transactor.New(mocks.BaselineRegistry(t), offlineLedger(t), mocks.BaselineSubmitter(t))

		operations := transfer(mocks.GenericCoinType, sui.OperationPaySui, "-50000000", "50000000")

		intent, err := tr.DeriveIntent(operations)

		require.NoError(t, err)
		assert.False(t, intent.Native())
		assert.Equal(t, mocks.GenericCoinType, intent.Currency.CoinType)
		require.Len(t, intent.Recipients, 1)
		assert.Equal(t, big.NewInt(50_000_000), intent.Recipients[0].Amount)
	})

	t.Run("accepts pay coin for native coin", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer(sui.NativeCoinType, sui.OperationPayCoin, "-5", "5")

		intent, err := tr.DeriveIntent(operations)

		require.NoError(t, err)
		assert.True(t, intent.Native())
	})

	t.Run("handles invalid account", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := mocks.GenericOperations()
		operations[1].AccountID.Address = "0x2"

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidAccount{})
	})

	t.Run("handles sub-account", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := mocks.GenericOperations()
		operations[0].AccountID.SubAccount = &identifier.SubAccount{Address: sui.PartitionStake}

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles invalid coin type", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		operations := transfer("coin", sui.OperationPayCoin, "-5", "5")

		_, err := tr.DeriveIntent(operations)

		assert.ErrorAs(t, err, &failure.InvalidCurrency{})
	})
}

func TestTransactor_Metadata(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.ReferenceGasPriceFunc = func(context.Context) (uint64, error) {
			return 750, nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t), transactor.WithGasBudget(10_000_000))

		metadata, err := tr.Metadata(context.Background(), mocks.GenericAddress(0))

		require.NoError(t, err)
		want := transactor.Metadata{
			Sender:    mocks.GenericAddress(0),
			GasPrice:  750,
			GasBudget: 10_000_000,
		}
		assert.Equal(t, want, *metadata)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.ReferenceGasPriceFunc = func(context.Context) (uint64, error) {
			return 0, mocks.GenericError
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		_, err := tr.Metadata(context.Background(), mocks.GenericAddress(0))

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func nativeIntent(amount int64) *transactor.Intent {
	return &transactor.Intent{
		Sender:     mocks.GenericAddress(0),
		Currency:   mocks.GenericCurrency,
		Recipients: []sui.Recipient{{Address: mocks.GenericAddress(1), Amount: big.NewInt(amount)}},
	}
}

func customIntent(amount int64) *transactor.Intent {
	return &transactor.Intent{
		Sender:     mocks.GenericAddress(0),
		Currency:   mocks.GenericCustomCurrency,
		Recipients: []sui.Recipient{{Address: mocks.GenericAddress(1), Amount: big.NewInt(amount)}},
	}
}

func coinID(i int) string {
	return fmt.Sprintf("0x%064x", 0x1000+i)
}

func TestTransactor_SelectCoins(t *testing.T) {

	// The baseline ledger holds four native coins worth 1, 2, 3 and 4 SUI.

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		selection, err := tr.SelectCoins(context.Background(), nativeIntent(500_000_000), &transactor.Metadata{GasBudget: 50_000_000})

		require.NoError(t, err)
		assert.Equal(t, []string{coinID(3), coinID(2)}, selection.Coins)
		assert.Empty(t, selection.Gas)
	})

	t.Run("prefers exact match", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		selection, err := tr.SelectCoins(context.Background(), nativeIntent(100_000_000), &transactor.Metadata{GasBudget: 200_000_000})

		require.NoError(t, err)
		assert.Equal(t, []string{coinID(2)}, selection.Coins)
	})

	t.Run("custom coin with separate gas coin", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinsFunc = func(_ context.Context, owner string, coinType string) ([]sui.Coin, error) {
			assert.Equal(t, mocks.GenericAddress(0), owner)
			if coinType == sui.NativeCoinType {
				return mocks.GenericCoins(4), nil
			}
			return []sui.Coin{
				{CoinType: mocks.GenericCoinType, ObjectID: "0xa", Balance: big.NewInt(30_000_000)},
				{CoinType: mocks.GenericCoinType, ObjectID: "0xb", Balance: big.NewInt(40_000_000)},
			}, nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		selection, err := tr.SelectCoins(context.Background(), customIntent(50_000_000), &transactor.Metadata{GasBudget: 50_000_000})

		require.NoError(t, err)
		assert.Equal(t, []string{"0xb", "0xa"}, selection.Coins)
		assert.Equal(t, coinID(3), selection.Gas)
	})

	t.Run("handles insufficient balance", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		_, err := tr.SelectCoins(context.Background(), nativeIntent(1_000_000_000), &transactor.Metadata{GasBudget: 50_000_000})

		var fail failure.InsufficientBalance
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, "1000000000", fail.Have)
		assert.Equal(t, "1050000000", fail.Want)
	})

	t.Run("handles insufficient gas", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinsFunc = func(_ context.Context, _ string, coinType string) ([]sui.Coin, error) {
			if coinType == sui.NativeCoinType {
				return mocks.GenericCoins(4), nil
			}
			return []sui.Coin{{CoinType: mocks.GenericCoinType, ObjectID: "0xa", Balance: big.NewInt(50_000_000)}}, nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		// The native coins add up to 10 SUI, but no single one covers 5 SUI.
		_, err := tr.SelectCoins(context.Background(), customIntent(50_000_000), &transactor.Metadata{GasBudget: 500_000_000})

		var fail failure.InsufficientBalance
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, sui.NativeCoinType, fail.CoinType)
		assert.Equal(t, "400000000", fail.Have)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.CoinsFunc = func(context.Context, string, string) ([]sui.Coin, error) {
			return nil, mocks.GenericError
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		_, err := tr.SelectCoins(context.Background(), customIntent(50_000_000), &transactor.Metadata{GasBudget: 50_000_000})

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

// unsignedPayload compiles a transfer of the custom coin from the address
// controlled by the generic key.
func unsignedPayload(t *testing.T, tr *transactor.Transactor) string {
	t.Helper()

	intent := customIntent(50_000_000)
	intent.Sender = mocks.GenericKeyAddress()

	selection := transactor.Selection{Coins: []string{"0xa"}, Gas: coinID(3)}
	metadata := transactor.Metadata{Sender: intent.Sender, GasPrice: 1000, GasBudget: 50_000_000}

	unsigned, err := tr.CompileTransaction(context.Background(), intent, &selection, &metadata)
	require.NoError(t, err)

	return unsigned
}

func sign(t *testing.T, tr *transactor.Transactor, unsigned string, key ed25519.PrivateKey) object.Signature {
	t.Helper()

	payload, err := tr.SigningPayload(unsigned)
	require.NoError(t, err)

	message, err := hex.DecodeString(payload.HexBytes)
	require.NoError(t, err)

	signature := object.Signature{
		SigningPayload: payload,
		SignatureType:  sui.SignatureTypeEd25519,
		HexBytes:       hex.EncodeToString(ed25519.Sign(key, message)),
		PublicKey: object.PublicKey{
			HexBytes:  hex.EncodeToString(key.Public().(ed25519.PublicKey)),
			CurveType: sui.CurveTypeEdwards25519,
		},
	}

	return signature
}

func TestTransactor_CompileTransaction(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.PayFunc = func(_ context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error) {
			assert.Equal(t, mocks.GenericKeyAddress(), sender)
			assert.Equal(t, []string{"0xa"}, coins)
			assert.Equal(t, []sui.Recipient{{Address: mocks.GenericAddress(1), Amount: big.NewInt(50_000_000)}}, recipients)
			assert.Equal(t, coinID(3), gas)
			assert.Equal(t, uint64(50_000_000), budget)
			return []byte("test transaction"), nil
		}
		ledger.PaySuiFunc = func(context.Context, string, []string, []sui.Recipient, uint64) ([]byte, error) {
			t.Fatal("unexpected native transfer")
			return nil, nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		unsigned := unsignedPayload(t, tr)

		id, err := tr.TransactionIdentifier(unsigned)
		require.NoError(t, err)
		assert.Equal(t, mocks.GenericDigest, id.Hash)

		payload, err := tr.SigningPayload(unsigned)
		require.NoError(t, err)
		assert.Equal(t, "a4b1d84b7282502194ea3530684730b43951655a519efadeaf75bb372e8737ba", payload.HexBytes)
		assert.Equal(t, mocks.GenericKeyAddress(), payload.AccountID.Address)
	})

	t.Run("native transfer uses pay sui", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.PaySuiFunc = func(_ context.Context, _ string, coins []string, _ []sui.Recipient, budget uint64) ([]byte, error) {
			assert.Equal(t, []string{coinID(1)}, coins)
			assert.Equal(t, uint64(50_000_000), budget)
			return []byte("test transaction"), nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		_, err := tr.CompileTransaction(context.Background(), nativeIntent(1), &transactor.Selection{Coins: []string{coinID(1)}}, &transactor.Metadata{GasBudget: 50_000_000})

		assert.NoError(t, err)
	})

	t.Run("handles ledger failure", func(t *testing.T) {
		t.Parallel()

		ledger := mocks.BaselineLedger(t)
		ledger.PayFunc = func(context.Context, string, []string, []sui.Recipient, string, uint64) ([]byte, error) {
			return nil, mocks.GenericError
		}

		tr := transactor.New(mocks.BaselineRegistry(t), ledger, mocks.BaselineSubmitter(t))

		_, err := tr.CompileTransaction(context.Background(), customIntent(1), &transactor.Selection{Coins: []string{"0xa"}, Gas: coinID(3)}, &transactor.Metadata{GasBudget: 50_000_000})

		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func TestTransactor_AttachSignature(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)

		signed, err := tr.AttachSignature(unsigned, sign(t, tr, unsigned, mocks.GenericKey))

		require.NoError(t, err)
		assert.NotEqual(t, unsigned, signed)

		// Signing does not change the transaction identifier.
		before, err := tr.TransactionIdentifier(unsigned)
		require.NoError(t, err)
		after, err := tr.TransactionIdentifier(signed)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		_, signers, err := tr.Parse(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, []identifier.Account{{Address: mocks.GenericKeyAddress()}}, signers)
	})

	t.Run("handles already signed transaction", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)
		signature := sign(t, tr, unsigned, mocks.GenericKey)

		signed, err := tr.AttachSignature(unsigned, signature)
		require.NoError(t, err)

		_, err = tr.AttachSignature(signed, signature)

		assert.ErrorAs(t, err, &failure.InvalidSignature{})
	})

	t.Run("handles key of other account", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)

		other := ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize))
		signature := sign(t, tr, unsigned, other)

		_, err := tr.AttachSignature(unsigned, signature)

		assert.ErrorAs(t, err, &failure.InvalidSignature{})
	})

	t.Run("handles invalid signature", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)

		signature := sign(t, tr, unsigned, mocks.GenericKey)
		signature.HexBytes = hex.EncodeToString(ed25519.Sign(mocks.GenericKey, []byte("something else")))

		_, err := tr.AttachSignature(unsigned, signature)

		assert.ErrorAs(t, err, &failure.InvalidSignature{})
	})

	t.Run("handles wrong signature type", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)

		signature := sign(t, tr, unsigned, mocks.GenericKey)
		signature.SignatureType = "ecdsa"

		_, err := tr.AttachSignature(unsigned, signature)

		assert.ErrorAs(t, err, &failure.InvalidSignature{})
	})

	t.Run("handles invalid payload", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		_, err := tr.AttachSignature("not base64!", object.Signature{})

		assert.ErrorAs(t, err, &failure.InvalidPayload{})
	})
}

func TestTransactor_Parse(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)
		unsigned := unsignedPayload(t, tr)

		operations, signers, err := tr.Parse(context.Background(), unsigned)

		require.NoError(t, err)
		assert.Empty(t, signers)
		require.Len(t, operations, 2)

		assert.Equal(t, sui.OperationPayCoin, operations[0].Type)
		assert.Equal(t, mocks.GenericKeyAddress(), operations[0].AccountID.Address)
		assert.Equal(t, "-50000000", operations[0].Amount.Value)
		assert.Equal(t, mocks.GenericCustomCurrency, operations[0].Amount.Currency)
		assert.Nil(t, operations[0].Status)

		assert.Equal(t, uint(1), operations[1].ID.Index)
		assert.Equal(t, mocks.GenericAddress(1), operations[1].AccountID.Address)
		assert.Equal(t, "50000000", operations[1].Amount.Value)
	})

	t.Run("handles invalid payload", func(t *testing.T) {
		t.Parallel()

		tr := baselineTransactor(t)

		_, _, err := tr.Parse(context.Background(), "AAAA")

		assert.ErrorAs(t, err, &failure.InvalidPayload{})
	})
}

func TestTransactor_SubmitTransaction(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(_ context.Context, txBytes []byte, signatures [][]byte) (string, error) {
			assert.Equal(t, []byte("pay transaction"), txBytes)
			require.Len(t, signatures, 1)
			assert.Len(t, signatures[0], 1+ed25519.SignatureSize+ed25519.PublicKeySize)
			assert.Equal(t, byte(sui.FlagEd25519), signatures[0][0])
			return sui.TransactionDigest(txBytes), nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), mocks.BaselineLedger(t), submit)
		unsigned := unsignedPayload(t, tr)
		signed, err := tr.AttachSignature(unsigned, sign(t, tr, unsigned, mocks.GenericKey))
		require.NoError(t, err)

		id, err := tr.SubmitTransaction(context.Background(), signed)

		require.NoError(t, err)
		assert.Equal(t, sui.TransactionDigest([]byte("pay transaction")), id.Hash)
	})

	t.Run("handles unsigned transaction", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(context.Context, []byte, [][]byte) (string, error) {
			t.Fatal("unexpected submission")
			return "", nil
		}

		tr := transactor.New(mocks.BaselineRegistry(t), mocks.BaselineLedger(t), submit)

		_, err := tr.SubmitTransaction(context.Background(), unsignedPayload(t, tr))

		assert.ErrorAs(t, err, &failure.InvalidPayload{})
	})

	t.Run("handles submission failure", func(t *testing.T) {
		t.Parallel()

		submit := mocks.BaselineSubmitter(t)
		submit.TransactionFunc = func(context.Context, []byte, [][]byte) (string, error) {
			return "", failure.RetriableRPC{Method: "sui_executeTransactionBlock"}
		}

		tr := transactor.New(mocks.BaselineRegistry(t), mocks.BaselineLedger(t), submit)
		unsigned := unsignedPayload(t, tr)
		signed, err := tr.AttachSignature(unsigned, sign(t, tr, unsigned, mocks.GenericKey))
		require.NoError(t, err)

		_, err = tr.SubmitTransaction(context.Background(), signed)

		assert.ErrorAs(t, err, &failure.RetriableRPC{})
	})
}
