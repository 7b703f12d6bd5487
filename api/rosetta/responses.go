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

package rosetta

import (
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/meta"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// NetworksResponse implements the response schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response
type NetworksResponse struct {
	NetworkIDs []identifier.Network `json:"network_identifiers"`
}

// OptionsResponse implements the response schema for /network/options.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-1
type OptionsResponse struct {
	Version meta.Version `json:"version"`
	Allow   Allow        `json:"allow"`
}

// Allow specifies which operation statuses, operation types and errors the
// API can return.
type Allow struct {
	OperationStatuses       []meta.StatusDefinition `json:"operation_statuses"`
	OperationTypes          []string                `json:"operation_types"`
	Errors                  []meta.ErrorDefinition  `json:"errors"`
	HistoricalBalanceLookup bool                    `json:"historical_balance_lookup"`
}

// StatusResponse implements the response schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-2
type StatusResponse struct {
	CurrentBlockID        identifier.Block `json:"current_block_identifier"`
	CurrentBlockTimestamp int64            `json:"current_block_timestamp"`
	OldestBlockID         identifier.Block `json:"oldest_block_identifier"`
	GenesisBlockID        identifier.Block `json:"genesis_block_identifier"`
	Peers                 []Peer           `json:"peers"`
}

// Peer is a peer of the node serving the API. The adapter talks to a single
// full node and reports no peers.
type Peer struct {
	PeerID string `json:"peer_id"`
}

// BalanceResponse implements the response schema for /account/balance. The
// balances are in the same order as the requested currencies.
// See https://www.rosetta-api.org/docs/AccountApi.html#response
type BalanceResponse struct {
	BlockID  identifier.Block `json:"block_identifier"`
	Balances []object.Amount  `json:"balances"`
}

// BlockResponse implements the response schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#response
type BlockResponse struct {
	Block             *object.Block            `json:"block"`
	OtherTransactions []identifier.Transaction `json:"other_transactions,omitempty"`
}

// TransactionResponse implements the response schema for /block/transaction.
// See https://www.rosetta-api.org/docs/BlockApi.html#response-1
type TransactionResponse struct {
	Transaction *object.Transaction `json:"transaction"`
}

// DeriveResponse implements the response schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-3
type DeriveResponse struct {
	AccountID identifier.Account `json:"account_identifier"`
}

// PreprocessResponse implements the response schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type PreprocessResponse struct {
	Options            Options              `json:"options"`
	RequiredPublicKeys []identifier.Account `json:"required_public_keys"`
}

// MetadataResponse implements the response schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-4
type MetadataResponse struct {
	Metadata     TransactionMetadata `json:"metadata"`
	SuggestedFee []object.Amount     `json:"suggested_fee"`
}

// PayloadsResponse implements the response schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-6
type PayloadsResponse struct {
	Transaction string                  `json:"unsigned_transaction"`
	Payloads    []object.SigningPayload `json:"payloads"`
}

// ParseResponse implements the response schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type ParseResponse struct {
	Operations []object.Operation   `json:"operations"`
	SignerIDs  []identifier.Account `json:"account_identifier_signers,omitempty"`
}

// CombineResponse implements the response schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response
type CombineResponse struct {
	SignedTransaction string `json:"signed_transaction"`
}

// HashResponse implements the response schema for /construction/hash.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-2
type HashResponse struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// SubmitResponse implements the response schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-7
type SubmitResponse struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}
