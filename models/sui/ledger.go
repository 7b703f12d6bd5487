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

import (
	"errors"
	"math/big"
	"time"
)

// ErrNotFound is returned by ledger lookups for objects that do not exist
// (yet).
var ErrNotFound = errors.New("not found")

// Transaction kinds as reported by the ledger for the transaction input.
const (
	KindProgrammable            = "ProgrammableTransaction"
	KindGenesis                 = "Genesis"
	KindConsensusCommitPrologue = "ConsensusCommitPrologue"
	KindChangeEpoch             = "ChangeEpoch"
	KindAuthenticatorState      = "AuthenticatorStateUpdate"
	KindEndOfEpoch              = "EndOfEpochTransaction"
)

// Execution statuses of transaction effects.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Event types emitted by the system staking module.
const (
	EventRequestAddStake      = "0x3::validator::StakingRequestEvent"
	EventRequestWithdrawStake = "0x3::validator::UnstakingRequestEvent"
)

// Coin is a single owned coin object.
type Coin struct {
	CoinType string
	ObjectID string
	Version  uint64
	Digest   string
	Balance  *big.Int
}

// ObjectRef references a specific version of an object.
type ObjectRef struct {
	ObjectID string
	Version  uint64
	Digest   string
}

// Ref returns the object reference of the coin.
func (c Coin) Ref() ObjectRef {
	return ObjectRef{ObjectID: c.ObjectID, Version: c.Version, Digest: c.Digest}
}

// Checkpoint is a finalized point in ledger history.
type Checkpoint struct {
	SequenceNumber uint64
	Digest         string
	PreviousDigest string
	Timestamp      time.Time
	Transactions   []string
}

// GasCost is the gas cost summary of executed transaction effects.
type GasCost struct {
	Computation   *big.Int
	Storage       *big.Int
	Rebate        *big.Int
	NonRefundable *big.Int
}

// Fee returns the net fee paid by the gas owner.
func (g GasCost) Fee() *big.Int {
	fee := new(big.Int)
	if g.Computation != nil {
		fee.Add(fee, g.Computation)
	}
	if g.Storage != nil {
		fee.Add(fee, g.Storage)
	}
	if g.Rebate != nil {
		fee.Sub(fee, g.Rebate)
	}
	return fee
}

// BalanceChange is the signed net change of one owner's balance of one coin
// type caused by a transaction.
type BalanceChange struct {
	Owner    string
	CoinType string
	Amount   *big.Int
}

// Event is an event emitted during execution.
type Event struct {
	Type   string
	Sender string
}

// Effects are the execution results of a transaction.
type Effects struct {
	Status string
	Error  string
	Gas    GasCost
}

// TransactionRecord is the full execution record of a transaction, as far as
// balance accounting is concerned.
type TransactionRecord struct {
	Digest         string
	Kind           string
	Sender         string
	GasOwner       string
	Effects        *Effects
	BalanceChanges []BalanceChange
	Events         []Event
	Checkpoint     *uint64
	Timestamp      time.Time
}

// Stake is a staked SUI object of a delegator.
type Stake struct {
	StakedSuiID     string
	Status          string
	Principal       *big.Int
	EstimatedReward *big.Int
}

// Stake statuses.
const (
	StakeActive   = "Active"
	StakePending  = "Pending"
	StakeUnstaked = "Unstaked"
)

// CoinMetadata is the display metadata registered for a coin type.
type CoinMetadata struct {
	Symbol   string
	Decimals uint
	Name     string
}

// Recipient receives a given amount in a pay transaction.
type Recipient struct {
	Address string
	Amount  *big.Int
}
