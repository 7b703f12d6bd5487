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
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// NetworksRequest implements the request schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request
type NetworksRequest struct {
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// OptionsRequest implements the request schema for /network/options.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-1
type OptionsRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// StatusRequest implements the request schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-2
type StatusRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// BalanceRequest implements the request schema for /account/balance. The
// block identifier is optional and defaults to the latest checkpoint.
// See https://www.rosetta-api.org/docs/AccountApi.html#request
type BalanceRequest struct {
	NetworkID  identifier.Network    `json:"network_identifier"`
	BlockID    identifier.Block      `json:"block_identifier"`
	AccountID  identifier.Account    `json:"account_identifier"`
	Currencies []identifier.Currency `json:"currencies" validate:"required,min=1,dive"`
}

// BlockRequest implements the request schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#request
type BlockRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	BlockID   identifier.Block   `json:"block_identifier"`
}

// TransactionRequest implements the request schema for /block/transaction.
// See https://www.rosetta-api.org/docs/BlockApi.html#request-1
type TransactionRequest struct {
	NetworkID     identifier.Network     `json:"network_identifier"`
	BlockID       identifier.Block       `json:"block_identifier"`
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// DeriveRequest implements the request schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-3
type DeriveRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	PublicKey object.PublicKey   `json:"public_key"`
}

// PreprocessRequest implements the request schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type PreprocessRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations" validate:"required,min=1,dive"`
}

// MetadataRequest implements the request schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-4
type MetadataRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	Options   Options            `json:"options"`
}

// PayloadsRequest implements the request schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-6
type PayloadsRequest struct {
	NetworkID  identifier.Network  `json:"network_identifier"`
	Operations []object.Operation  `json:"operations" validate:"required,min=1,dive"`
	Metadata   TransactionMetadata `json:"metadata"`
}

// ParseRequest implements the request schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type ParseRequest struct {
	NetworkID   identifier.Network `json:"network_identifier"`
	Signed      bool               `json:"signed"`
	Transaction string             `json:"transaction" validate:"required"`
}

// CombineRequest implements the request schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request
type CombineRequest struct {
	NetworkID           identifier.Network `json:"network_identifier"`
	UnsignedTransaction string             `json:"unsigned_transaction" validate:"required"`
	Signatures          []object.Signature `json:"signatures" validate:"required,len=1"`
}

// HashRequest implements the request schema for /construction/hash.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-2
type HashRequest struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction" validate:"required"`
}

// SubmitRequest implements the request schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-7
type SubmitRequest struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction" validate:"required"`
}
