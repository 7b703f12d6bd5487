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

package matcher

import (
	"math/big"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type key struct {
	address   string
	partition string
	coinType  string
	amount    string
}

// Contains returns whether every declared operation has a counterpart among
// the derived operations. Operations are compared on their account, currency
// and signed amount only, so index, type and status do not matter. Derived
// operations without a declared counterpart, such as the gas fee, are
// allowed.
func Contains(derived []object.Operation, declared []object.Operation) bool {

	available := make(map[key]uint, len(derived))
	for _, op := range derived {
		k, ok := keyOf(op)
		if !ok {
			continue
		}
		available[k]++
	}

	for _, op := range declared {
		k, ok := keyOf(op)
		if !ok {
			return false
		}
		if available[k] == 0 {
			return false
		}
		available[k]--
	}

	return true
}

func keyOf(op object.Operation) (key, bool) {

	address, err := sui.NormalizeAddress(op.AccountID.Address)
	if err != nil {
		return key{}, false
	}

	k := key{
		address:   address,
		partition: op.AccountID.Partition(),
	}
	if op.Amount == nil {
		return k, true
	}

	coinType, err := sui.CanonicalCoinType(op.Amount.Currency.CoinType)
	if err != nil {
		return key{}, false
	}
	amount, ok := new(big.Int).SetString(op.Amount.Value, 10)
	if !ok {
		return key{}, false
	}

	k.coinType = coinType
	k.amount = amount.String()

	return k, true
}
