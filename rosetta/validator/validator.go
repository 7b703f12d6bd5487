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
	"context"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Ledger is the subset of the ledger client needed to resolve block
// identifiers.
type Ledger interface {
	LatestCheckpoint(ctx context.Context) (uint64, error)
	Checkpoint(ctx context.Context, sequence uint64) (*sui.Checkpoint, error)
	CheckpointByDigest(ctx context.Context, digest string) (*sui.Checkpoint, error)
}

// Registry resolves currency identifiers.
type Registry interface {
	Resolve(ctx context.Context, currency identifier.Currency) (identifier.Currency, error)
}

// Validator validates identifiers of API requests and completes them where
// they are partial.
type Validator struct {
	ledger   Ledger
	registry Registry
}

// New creates a new validator on top of the given ledger and registry.
func New(ledger Ledger, registry Registry) *Validator {

	v := Validator{
		ledger:   ledger,
		registry: registry,
	}

	return &v
}
