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

package configuration

import (
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/meta"
)

// Configuration is the static description of the adapter that is served by
// the network endpoints.
type Configuration struct {
	network    identifier.Network
	version    meta.Version
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New returns the configuration for the given Sui network.
func New(network string) *Configuration {

	id := identifier.Network{
		Blockchain: sui.Blockchain,
		Network:    network,
	}

	version := meta.Version{
		RosettaVersion:    RosettaVersion,
		NodeVersion:       NodeVersion,
		MiddlewareVersion: MiddlewareVersion,
	}

	statuses := []meta.StatusDefinition{
		{Status: sui.OperationStatusSuccess, Successful: true},
		{Status: sui.OperationStatusFailure, Successful: false},
	}

	operations := []string{
		sui.OperationGas,
		sui.OperationPaySui,
		sui.OperationPayCoin,
		sui.OperationStake,
		sui.OperationWithdrawStake,
		sui.OperationGenesis,
		sui.OperationSuiBalanceChange,
		sui.OperationCoinBalanceChange,
	}

	errors := []meta.ErrorDefinition{
		ErrorInternal,
		ErrorInvalidEncoding,
		ErrorInvalidFormat,
		ErrorInvalidNetwork,
		ErrorInvalidAccount,
		ErrorInvalidCurrency,
		ErrorInvalidBlock,
		ErrorUnknownBlock,
		ErrorInvalidTransaction,
		ErrorUnknownTransaction,
		ErrorInvalidOperations,
		ErrorUnsupportedOperationType,
		ErrorUnbalancedOperations,
		ErrorMultiSenderUnsupported,
		ErrorInsufficientBalance,
		ErrorInvalidPayload,
		ErrorInvalidSignature,
		ErrorRetriableRPC,
		ErrorExecutionFailure,
		ErrorConfirmationTimeout,
		ErrorSubmissionUnknown,
		ErrorHistoricalBalance,
	}

	c := Configuration{
		network:    id,
		version:    version,
		statuses:   statuses,
		operations: operations,
		errors:     errors,
	}

	return &c
}

func (c *Configuration) Network() identifier.Network {
	return c.network
}

func (c *Configuration) Version() meta.Version {
	return c.version
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

func (c *Configuration) Operations() []string {
	return c.operations
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// HistoricalBalanceLookup reports whether balances can be requested at any
// block other than the latest one. The ledger's owned-object index only
// serves live state, so they cannot.
func (c *Configuration) HistoricalBalanceLookup() bool {
	return false
}

// Check verifies that the given network identifier matches the configured one.
func (c *Configuration) Check(network identifier.Network) error {
	if network.Blockchain != c.network.Blockchain {
		desc := failure.NewDescription("invalid network identifier blockchain",
			failure.WithString("want_blockchain", c.network.Blockchain),
		)
		return failure.InvalidNetwork{
			Description: desc,
			Blockchain:  network.Blockchain,
			Network:     network.Network,
		}
	}

	if network.Network != c.network.Network {
		desc := failure.NewDescription("invalid network identifier network",
			failure.WithString("want_network", c.network.Network),
		)
		return failure.InvalidNetwork{
			Description: desc,
			Blockchain:  network.Blockchain,
			Network:     network.Network,
		}
	}

	return nil
}
