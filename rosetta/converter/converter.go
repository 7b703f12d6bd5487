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

package converter

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Converter translates execution records of the ledger into Rosetta
// operations.
type Converter struct {
	registry Registry
	native   string
	stake    string
	unstake  string
}

// New creates a new converter, which uses the given registry to complete the
// currencies of the operations it derives.
func New(registry Registry) *Converter {

	c := Converter{
		registry: registry,
		native:   canonical(sui.NativeCoinType),
		stake:    canonical(sui.EventRequestAddStake),
		unstake:  canonical(sui.EventRequestWithdrawStake),
	}

	return &c
}

// delta is the net change of an owner's balance in one coin type.
type delta struct {
	owner    string
	coinType string
	gas      bool
	amount   *big.Int
}

// Transaction converts an execution record into a Rosetta transaction.
func (c *Converter) Transaction(ctx context.Context, record *sui.TransactionRecord) (*object.Transaction, error) {

	operations, err := c.Operations(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("could not convert operations: %w", err)
	}

	transaction := object.Transaction{
		ID:         identifier.Transaction{Hash: record.Digest},
		Operations: operations,
	}

	return &transaction, nil
}

// Operations derives the canonical operation list of an execution record.
// There is one operation for every owner and coin type with a non-zero net
// balance change, plus a separate gas operation for the fee paid by the gas
// owner. Operations are sorted by address and coin type, with gas last, so
// that converting the same record always gives the same result.
func (c *Converter) Operations(ctx context.Context, record *sui.TransactionRecord) ([]object.Operation, error) {

	if record.Effects == nil {
		return nil, fmt.Errorf("missing effects for transaction %s: %w", record.Digest, ErrIncomplete)
	}

	status := sui.OperationStatusSuccess
	if record.Effects.Status != sui.StatusSuccess {
		status = sui.OperationStatusFailure
	}

	// Merge all balance changes per owner and coin type.
	lookup := make(map[[2]string]*delta)
	var deltas []*delta
	add := func(owner string, coinType string, amount *big.Int) error {
		address, err := sui.NormalizeAddress(owner)
		if err != nil {
			return fmt.Errorf("could not normalize owner (%s): %w", owner, err)
		}
		coinType, err = sui.CanonicalCoinType(coinType)
		if err != nil {
			return fmt.Errorf("could not canonicalize coin type: %w", err)
		}
		key := [2]string{address, coinType}
		d, ok := lookup[key]
		if !ok {
			d = &delta{owner: address, coinType: coinType, amount: new(big.Int)}
			lookup[key] = d
			deltas = append(deltas, d)
		}
		d.amount.Add(d.amount, amount)
		return nil
	}
	for _, change := range record.BalanceChanges {
		if change.Amount == nil {
			continue
		}
		err := add(change.Owner, change.CoinType, change.Amount)
		if err != nil {
			return nil, err
		}
	}

	// The fee is included in the native balance change of the gas owner. We
	// add it back there and report it as its own operation instead.
	fee := record.Effects.Gas.Fee()
	var gas *delta
	if record.GasOwner != "" && fee.Sign() != 0 {
		err := add(record.GasOwner, c.native, fee)
		if err != nil {
			return nil, err
		}
		address, _ := sui.NormalizeAddress(record.GasOwner)
		gas = &delta{
			owner:    address,
			coinType: c.native,
			gas:      true,
			amount:   new(big.Int).Neg(fee),
		}
	}

	relevant := make([]*delta, 0, len(deltas)+1)
	for _, d := range deltas {
		if d.amount.Sign() == 0 {
			continue
		}
		relevant = append(relevant, d)
	}
	if gas != nil {
		relevant = append(relevant, gas)
	}

	sort.SliceStable(relevant, func(i int, j int) bool {
		if relevant[i].owner != relevant[j].owner {
			return relevant[i].owner < relevant[j].owner
		}
		if relevant[i].coinType != relevant[j].coinType {
			return relevant[i].coinType < relevant[j].coinType
		}
		return !relevant[i].gas && relevant[j].gas
	})

	currencies := make(map[string]identifier.Currency)
	operations := make([]object.Operation, 0, len(relevant))
	for index, d := range relevant {

		currency, ok := currencies[d.coinType]
		if !ok {
			var err error
			currency, err = c.registry.Currency(ctx, d.coinType)
			if err != nil {
				return nil, fmt.Errorf("could not get currency (%s): %w", d.coinType, err)
			}
			currencies[d.coinType] = currency
		}

		opStatus := status
		op := object.Operation{
			ID:        identifier.Operation{Index: uint(index)},
			Type:      c.operationType(record, d),
			Status:    &opStatus,
			AccountID: identifier.Account{Address: d.owner},
			Amount: &object.Amount{
				Value:    d.amount.String(),
				Currency: currency,
			},
		}
		operations = append(operations, op)
	}

	return operations, nil
}

func (c *Converter) operationType(record *sui.TransactionRecord, d *delta) string {

	if d.gas {
		return sui.OperationGas
	}

	native := d.coinType == c.native

	switch record.Kind {

	case sui.KindGenesis:
		return sui.OperationGenesis

	case sui.KindProgrammable:
		if native {
			for _, event := range record.Events {
				eventType, err := sui.CanonicalCoinType(event.Type)
				if err != nil {
					continue
				}
				switch eventType {
				case c.stake:
					return sui.OperationStake
				case c.unstake:
					return sui.OperationWithdrawStake
				}
			}
			return sui.OperationPaySui
		}
		return sui.OperationPayCoin

	default:
		if native {
			return sui.OperationSuiBalanceChange
		}
		return sui.OperationCoinBalanceChange
	}
}

func canonical(tag string) string {
	canonical, err := sui.CanonicalCoinType(tag)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in type tag (%s): %s", tag, err))
	}
	return canonical
}
