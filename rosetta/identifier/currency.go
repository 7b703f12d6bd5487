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

package identifier

// Currency is composed of a coin type, a symbol and decimals. Only the coin
// type determines identity; two currencies with the same coin type and
// different display metadata are the same currency. The decimals value is used
// to convert an amount from atomic units (such as MIST) to standard units
// (such as SUI).
type Currency struct {
	CoinType string `json:"coin_type"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals uint   `json:"decimals"`
}
