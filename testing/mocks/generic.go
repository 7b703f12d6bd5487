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
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test adapter components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericSequence = uint64(42)

	GenericDigest = "3Rdn8k2T3pnWqp9oz53Dz7QDk99KPUBMqojowzgoBT1t"

	GenericCheckpointDigest = "3dmNJiHzfM75gYgtnvCsPRo3Y8V8gTbA4P5AGDah2VVx"

	GenericTimestamp = time.Date(1972, 11, 12, 13, 14, 15, 0, time.UTC)

	GenericCoinType = "0x00000000000000000000000000000000000000000000000000000000000000c3::coin::COIN"

	GenericNetwork = identifier.Network{
		Blockchain: sui.Blockchain,
		Network:    sui.Testnet,
	}

	GenericCurrency = identifier.Currency{
		CoinType: sui.NativeCoinType,
		Symbol:   sui.NativeSymbol,
		Decimals: sui.NativeDecimals,
	}

	GenericCustomCurrency = identifier.Currency{
		CoinType: GenericCoinType,
		Symbol:   "COIN",
		Decimals: 6,
	}

	GenericBlockID = identifier.Block{
		Index: &GenericSequence,
		Hash:  GenericCheckpointDigest,
	}

	GenericTransactionID = identifier.Transaction{
		Hash: GenericDigest,
	}

	GenericCheckpoint = &sui.Checkpoint{
		SequenceNumber: GenericSequence,
		Digest:         GenericCheckpointDigest,
		PreviousDigest: "ESfKFTqyfCpkBdyjxtCtN8B3HE8H7kFNtmnUPKgC1w4B",
		Timestamp:      GenericTimestamp,
		Transactions:   []string{GenericDigest},
	}

	GenericKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x2a}, ed25519.SeedSize))

	GenericMetadata = &sui.CoinMetadata{
		Symbol:   "COIN",
		Decimals: 6,
		Name:     "Coin",
	}
)

// GenericAddress returns a valid full-length account address that is unique
// for the given index.
func GenericAddress(index int) string {
	return fmt.Sprintf("0x%064x", index+1)
}

// GenericKeyAddress returns the address controlled by GenericKey.
func GenericKeyAddress() string {
	return sui.AddressFromPublicKey(GenericKey.Public().(ed25519.PublicKey))
}

// GenericAccount returns the account identifier for GenericAddress.
func GenericAccount(index int) identifier.Account {
	return identifier.Account{Address: GenericAddress(index)}
}

// GenericCoins returns a number of native coins owned by a sender, with
// balances in ascending order.
func GenericCoins(number int) []sui.Coin {
	coins := make([]sui.Coin, 0, number)
	for i := 0; i < number; i++ {
		coin := sui.Coin{
			CoinType: sui.NativeCoinType,
			ObjectID: fmt.Sprintf("0x%064x", 0x1000+i),
			Version:  uint64(i + 1),
			Digest:   GenericDigest,
			Balance:  big.NewInt(int64(i+1) * 100_000_000),
		}
		coins = append(coins, coin)
	}
	return coins
}

// GenericRecord returns the execution record of a successful transfer of
// 50,000,000 units of the custom coin from the first to the second generic
// address, with the gas paid by the sender.
func GenericRecord() *sui.TransactionRecord {
	sequence := GenericSequence
	record := sui.TransactionRecord{
		Digest:   GenericDigest,
		Kind:     sui.KindProgrammable,
		Sender:   GenericAddress(0),
		GasOwner: GenericAddress(0),
		Effects: &sui.Effects{
			Status: sui.StatusSuccess,
			Gas: sui.GasCost{
				Computation:   big.NewInt(1_000_000),
				Storage:       big.NewInt(2_000_000),
				Rebate:        big.NewInt(978_120),
				NonRefundable: big.NewInt(9_880),
			},
		},
		BalanceChanges: []sui.BalanceChange{
			{Owner: GenericAddress(0), CoinType: sui.NativeCoinType, Amount: big.NewInt(-2_021_880)},
			{Owner: GenericAddress(0), CoinType: GenericCoinType, Amount: big.NewInt(-50_000_000)},
			{Owner: GenericAddress(1), CoinType: GenericCoinType, Amount: big.NewInt(50_000_000)},
		},
		Checkpoint: &sequence,
		Timestamp:  GenericTimestamp,
	}
	return &record
}

// GenericOperations returns the operations a client declares for the transfer
// in GenericRecord.
func GenericOperations() []object.Operation {
	return []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      sui.OperationPayCoin,
			AccountID: GenericAccount(0),
			Amount:    &object.Amount{Value: "-50000000", Currency: GenericCustomCurrency},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      sui.OperationPayCoin,
			AccountID: GenericAccount(1),
			Amount:    &object.Amount{Value: "50000000", Currency: GenericCustomCurrency},
		},
	}
}
