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

package sui

const (
	Blockchain = "sui"

	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Devnet   = "devnet"
	Localnet = "localnet"

	NativeCoinType = "0x2::sui::SUI"
	NativeSymbol   = "SUI"
	NativeDecimals = 9

	OperationStatusSuccess = "SUCCESS"
	OperationStatusFailure = "FAILURE"

	OperationGas               = "Gas"
	OperationPaySui            = "PaySui"
	OperationPayCoin           = "PayCoin"
	OperationStake             = "Stake"
	OperationWithdrawStake     = "WithdrawStake"
	OperationGenesis           = "Genesis"
	OperationSuiBalanceChange  = "SuiBalanceChange"
	OperationCoinBalanceChange = "CoinBalanceChange"

	PartitionStake           = "Stake"
	PartitionPendingStake    = "PendingStake"
	PartitionEstimatedReward = "EstimatedReward"
)

// Params holds the per-network parameters of the adapter.
type Params struct {
	Network   string
	ChainID   string
	RPC       string
	GasBudget uint64
}

var NetworkParams = make(map[string]Params)

func init() {

	// Public full node endpoints from:
	// https://docs.sui.io/references/sui-api
	mainnet := Params{
		Network:   Mainnet,
		ChainID:   "35834a8a",
		RPC:       "https://fullnode.mainnet.sui.io:443",
		GasBudget: DefaultGasBudget,
	}
	NetworkParams[mainnet.Network] = mainnet

	testnet := Params{
		Network:   Testnet,
		ChainID:   "4c78adac",
		RPC:       "https://fullnode.testnet.sui.io:443",
		GasBudget: DefaultGasBudget,
	}
	NetworkParams[testnet.Network] = testnet

	devnet := Params{
		Network:   Devnet,
		RPC:       "https://fullnode.devnet.sui.io:443",
		GasBudget: DefaultGasBudget,
	}
	NetworkParams[devnet.Network] = devnet

	localnet := Params{
		Network:   Localnet,
		RPC:       "http://127.0.0.1:9000",
		GasBudget: DefaultGasBudget,
	}
	NetworkParams[localnet.Network] = localnet
}

// DefaultGasBudget is the gas budget, in MIST, reserved for a transfer when
// no budget is configured.
const DefaultGasBudget = 50_000_000
