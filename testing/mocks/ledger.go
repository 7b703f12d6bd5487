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

	"github.com/optakt/sui-rosetta/models/sui"
)

type Ledger struct {
	LatestCheckpointFunc   func(ctx context.Context) (uint64, error)
	CheckpointFunc         func(ctx context.Context, sequence uint64) (*sui.Checkpoint, error)
	CheckpointByDigestFunc func(ctx context.Context, digest string) (*sui.Checkpoint, error)
	TransactionFunc        func(ctx context.Context, digest string) (*sui.TransactionRecord, error)
	CoinsFunc              func(ctx context.Context, owner string, coinType string) ([]sui.Coin, error)
	StakesFunc             func(ctx context.Context, owner string) ([]sui.Stake, error)
	CoinMetadataFunc       func(ctx context.Context, coinType string) (*sui.CoinMetadata, error)
	ReferenceGasPriceFunc  func(ctx context.Context) (uint64, error)
	PaySuiFunc             func(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, budget uint64) ([]byte, error)
	PayFunc                func(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error)
	ExecuteFunc            func(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error)
}

func BaselineLedger(t *testing.T) *Ledger {
	t.Helper()

	l := Ledger{
		LatestCheckpointFunc: func(ctx context.Context) (uint64, error) {
			return GenericSequence, nil
		},
		CheckpointFunc: func(ctx context.Context, sequence uint64) (*sui.Checkpoint, error) {
			return GenericCheckpoint, nil
		},
		CheckpointByDigestFunc: func(ctx context.Context, digest string) (*sui.Checkpoint, error) {
			return GenericCheckpoint, nil
		},
		TransactionFunc: func(ctx context.Context, digest string) (*sui.TransactionRecord, error) {
			return GenericRecord(), nil
		},
		CoinsFunc: func(ctx context.Context, owner string, coinType string) ([]sui.Coin, error) {
			return GenericCoins(4), nil
		},
		StakesFunc: func(ctx context.Context, owner string) ([]sui.Stake, error) {
			return nil, nil
		},
		CoinMetadataFunc: func(ctx context.Context, coinType string) (*sui.CoinMetadata, error) {
			return GenericMetadata, nil
		},
		ReferenceGasPriceFunc: func(ctx context.Context) (uint64, error) {
			return 1000, nil
		},
		PaySuiFunc: func(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, budget uint64) ([]byte, error) {
			return []byte("pay sui transaction"), nil
		},
		PayFunc: func(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error) {
			return []byte("pay transaction"), nil
		},
		ExecuteFunc: func(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error) {
			return sui.TransactionDigest(txBytes), nil
		},
	}

	return &l
}

func (l *Ledger) LatestCheckpoint(ctx context.Context) (uint64, error) {
	return l.LatestCheckpointFunc(ctx)
}

func (l *Ledger) Checkpoint(ctx context.Context, sequence uint64) (*sui.Checkpoint, error) {
	return l.CheckpointFunc(ctx, sequence)
}

func (l *Ledger) CheckpointByDigest(ctx context.Context, digest string) (*sui.Checkpoint, error) {
	return l.CheckpointByDigestFunc(ctx, digest)
}

func (l *Ledger) Transaction(ctx context.Context, digest string) (*sui.TransactionRecord, error) {
	return l.TransactionFunc(ctx, digest)
}

func (l *Ledger) Coins(ctx context.Context, owner string, coinType string) ([]sui.Coin, error) {
	return l.CoinsFunc(ctx, owner, coinType)
}

func (l *Ledger) Stakes(ctx context.Context, owner string) ([]sui.Stake, error) {
	return l.StakesFunc(ctx, owner)
}

func (l *Ledger) CoinMetadata(ctx context.Context, coinType string) (*sui.CoinMetadata, error) {
	return l.CoinMetadataFunc(ctx, coinType)
}

func (l *Ledger) ReferenceGasPrice(ctx context.Context) (uint64, error) {
	return l.ReferenceGasPriceFunc(ctx)
}

func (l *Ledger) PaySui(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, budget uint64) ([]byte, error) {
	return l.PaySuiFunc(ctx, sender, coins, recipients, budget)
}

func (l *Ledger) Pay(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error) {
	return l.PayFunc(ctx, sender, coins, recipients, gas, budget)
}

func (l *Ledger) Execute(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error) {
	return l.ExecuteFunc(ctx, txBytes, signatures)
}
