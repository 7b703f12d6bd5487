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

package validator

import (
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Account validates the account address and sub-account, and returns the
// account with its address normalized.
func (v *Validator) Account(account identifier.Account) (identifier.Account, error) {

	address, err := sui.NormalizeAddress(account.Address)
	if err != nil {
		return identifier.Account{}, failure.InvalidAccount{
			Address:     account.Address,
			Description: failure.NewDescription(addressInvalid, failure.WithErr(err)),
		}
	}

	switch account.Partition() {
	case "", sui.PartitionStake, sui.PartitionPendingStake, sui.PartitionEstimatedReward:
	default:
		return identifier.Account{}, failure.InvalidAccount{
			Address: account.Address,
			Description: failure.NewDescription(partitionUnknown,
				failure.WithString("sub_account", account.Partition()),
			),
		}
	}

	account.Address = address
	return account, nil
}
