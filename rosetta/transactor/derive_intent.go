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

package transactor

import (
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type entry struct {
	address  string
	coinType string
	amount   *big.Int
}

// DeriveIntent derives a transfer intent from the declared operations. It
// works on the operations alone and never contacts the ledger, so invalid
// operation lists are rejected before anything is built. PaySui and PayCoin
// are accepted for any currency; the coin type alone decides how the
// transfer is compiled.
func (t *Transactor) DeriveIntent(operations []object.Operation) (*Intent, error) {

	if len(operations) == 0 {
		return nil, failure.InvalidOperations{
			Description: failure.NewDescription(opsNoSender),
		}
	}

	// First, every single operation has to be a well-formed transfer.
	entries := make([]entry, 0, len(operations))
	for _, op := range operations {
		e, err := parseOperation(op)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	// Second, the amounts have to balance out for every currency.
	var coinTypes []string
	sums := make(map[string]*big.Int)
	for _, e := range entries {
		sum, ok := sums[e.coinType]
		if !ok {
			sum = new(big.Int)
			sums[e.coinType] = sum
			coinTypes = append(coinTypes, e.coinType)
		}
		sum.Add(sum, e.amount)
	}
	for _, coinType := range coinTypes {
		sum := sums[coinType]
		if sum.Sign() != 0 {
			return nil, failure.UnbalancedOperations{
				CoinType:    sui.DisplayCoinType(coinType),
				Sum:         sum.String(),
				Description: failure.NewDescription(opsUnbalanced),
			}
		}
	}

	// Third, there has to be exactly one sender.
	senders := mapset.NewThreadUnsafeSet[string]()
	var ordered []string
	for _, e := range entries {
		if e.amount.Sign() >= 0 {
			continue
		}
		if senders.Add(e.address) {
			ordered = append(ordered, e.address)
		}
	}
	if senders.Cardinality() > 1 {
		return nil, failure.MultiSenderUnsupported{
			Senders:     ordered,
			Description: failure.NewDescription(opsMultiSender),
		}
	}
	if senders.Cardinality() == 0 {
		return nil, failure.InvalidOperations{
			Description: failure.NewDescription(opsNoSender),
		}
	}

	if len(coinTypes) > 1 {
		return nil, failure.InvalidOperations{
			Description: failure.NewDescription(opsMultiCurrency,
				failure.WithStrings("coin_types", coinTypes...),
			),
		}
	}

	// Recipients are merged per address, in the order they were declared.
	var recipients []sui.Recipient
	positions := make(map[string]int)
	for _, e := range entries {
		if e.amount.Sign() <= 0 {
			continue
		}
		position, ok := positions[e.address]
		if ok {
			recipients[position].Amount.Add(recipients[position].Amount, e.amount)
			continue
		}
		positions[e.address] = len(recipients)
		recipients = append(recipients, sui.Recipient{
			Address: e.address,
			Amount:  new(big.Int).Set(e.amount),
		})
	}

	// The currency keeps the display metadata the client declared, under its
	// canonical coin type.
	currency := operations[0].Amount.Currency
	currency.CoinType = sui.DisplayCoinType(coinTypes[0])

	intent := Intent{
		Sender:     ordered[0],
		Currency:   currency,
		Recipients: recipients,
	}

	return &intent, nil
}

func parseOperation(op object.Operation) (entry, error) {

	if op.Type != sui.OperationPaySui && op.Type != sui.OperationPayCoin {
		return entry{}, failure.UnsupportedOperationType{
			Type:        op.Type,
			Description: failure.NewDescription(opTypeInvalid),
		}
	}

	if op.Amount == nil {
		return entry{}, failure.InvalidOperations{
			Description: failure.NewDescription(opAmountMissing,
				failure.WithInt("index", int(op.ID.Index)),
			),
		}
	}

	amount, ok := new(big.Int).SetString(op.Amount.Value, 10)
	if !ok {
		return entry{}, failure.InvalidOperations{
			Description: failure.NewDescription(opAmountUnparseable,
				failure.WithInt("index", int(op.ID.Index)),
				failure.WithString("amount", op.Amount.Value),
			),
		}
	}
	if amount.Sign() == 0 {
		return entry{}, failure.InvalidOperations{
			Description: failure.NewDescription(opAmountZero,
				failure.WithInt("index", int(op.ID.Index)),
			),
		}
	}

	address, err := sui.NormalizeAddress(op.AccountID.Address)
	if err != nil {
		return entry{}, failure.InvalidAccount{
			Address:     op.AccountID.Address,
			Description: failure.NewDescription(opAddressInvalid, failure.WithErr(err)),
		}
	}
	if op.AccountID.SubAccount != nil {
		return entry{}, failure.InvalidOperations{
			Description: failure.NewDescription(opSubAccount,
				failure.WithInt("index", int(op.ID.Index)),
				failure.WithString("sub_account", op.AccountID.Partition()),
			),
		}
	}

	coinType, err := sui.CanonicalCoinType(op.Amount.Currency.CoinType)
	if err != nil {
		return entry{}, failure.InvalidCurrency{
			CoinType:    op.Amount.Currency.CoinType,
			Description: failure.NewDescription(opCoinTypeInvalid, failure.WithErr(err)),
		}
	}

	e := entry{
		address:  address,
		coinType: coinType,
		amount:   amount,
	}

	return e, nil
}
