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
	"github.com/optakt/sui-rosetta/rosetta/transactor"
)

// Construction implements the Rosetta Construction API specification. It
// never holds keys: signatures are produced by the client between the
// payloads and combine steps.
// See https://www.rosetta-api.org/docs/construction_api_introduction.html
type Construction struct {
	config   Configuration
	validate *RequestValidator
	transact Transactor
}

// NewConstruction creates a new instance of the Construction API using the given configuration
// to handle transaction construction requests.
func NewConstruction(config Configuration, validate *RequestValidator, transact Transactor) *Construction {

	c := Construction{
		config:   config,
		validate: validate,
		transact: transact,
	}

	return &c
}

// Options are the options returned by preprocess and passed on to metadata.
// They carry the transfer intent needed to select coins.
type Options struct {
	Sender     string              `json:"sender" validate:"required"`
	Currency   identifier.Currency `json:"currency"`
	Recipients []Recipient         `json:"recipients" validate:"required,min=1,dive"`
}

// Recipient is a single recipient of a transfer.
type Recipient struct {
	Address string `json:"address" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
}

// TransactionMetadata is the metadata returned by the metadata endpoint and
// needed to build a transaction in the payloads endpoint. It holds the gas
// parameters and the selected coins.
type TransactionMetadata struct {
	transactor.Metadata
	transactor.Selection
}
