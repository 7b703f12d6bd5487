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

// Account uniquely identifies an account within a network. The optional
// sub-account selects a partition of the account balance; on Sui those are the
// staking partitions of the native coin.
type Account struct {
	Address    string      `json:"address"`
	SubAccount *SubAccount `json:"sub_account,omitempty"`
}

// SubAccount identifies a balance partition of an account.
type SubAccount struct {
	Address string `json:"address"`
}

// Partition returns the name of the selected balance partition, or an empty
// string for the default partition.
func (a Account) Partition() string {
	if a.SubAccount == nil {
		return ""
	}
	return a.SubAccount.Address
}
