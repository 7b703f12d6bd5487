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

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Intent describes a transfer from a single sender to one or more recipients
// in a single currency.
type Intent struct {
	Sender     string
	Currency   identifier.Currency
	Recipients []sui.Recipient
}

// Native returns whether the intent transfers the native coin.
func (i Intent) Native() bool {
	return sui.IsNative(i.Currency.CoinType)
}

// Total returns the total amount sent to all recipients.
func (i Intent) Total() *big.Int {
	total := new(big.Int)
	for _, recipient := range i.Recipients {
		total.Add(total, recipient.Amount)
	}
	return total
}

// Metadata holds the gas parameters of a transaction under construction.
type Metadata struct {
	Sender    string `json:"sender"`
	GasPrice  uint64 `json:"gas_price"`
	GasBudget uint64 `json:"gas_budget"`
}

// Selection holds the coins chosen to fund a transaction. For transfers of
// the native coin, gas is paid from the transfer coins and no separate gas
// coin is selected.
type Selection struct {
	Coins []string `json:"coins"`
	Gas   string   `json:"gas,omitempty"`
}
