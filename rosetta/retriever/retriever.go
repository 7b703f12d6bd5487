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

package retriever

import (
	"context"
	"fmt"
	"time"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Retriever serves the Rosetta Data API reads from the ledger node.
type Retriever struct {
	cfg      Config
	validate Validator
	ledger   Ledger
	convert  Converter
}

// New creates a new retriever.
func New(validate Validator, ledger Ledger, convert Converter, options ...func(*Config)) *Retriever {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	r := Retriever{
		cfg:      cfg,
		validate: validate,
		ledger:   ledger,
		convert:  convert,
	}

	return &r
}

// Oldest returns the identifier and timestamp of the genesis checkpoint.
func (r *Retriever) Oldest(ctx context.Context) (identifier.Block, time.Time, error) {

	checkpoint, err := r.ledger.Checkpoint(ctx, 0)
	if err != nil {
		return identifier.Block{}, time.Time{}, fmt.Errorf("could not get genesis checkpoint: %w", err)
	}

	return blockID(checkpoint), checkpoint.Timestamp, nil
}

// Current returns the identifier and timestamp of the latest checkpoint.
func (r *Retriever) Current(ctx context.Context) (identifier.Block, time.Time, error) {

	latest, err := r.ledger.LatestCheckpoint(ctx)
	if err != nil {
		return identifier.Block{}, time.Time{}, fmt.Errorf("could not get latest checkpoint sequence: %w", err)
	}

	checkpoint, err := r.ledger.Checkpoint(ctx, latest)
	if err != nil {
		return identifier.Block{}, time.Time{}, fmt.Errorf("could not get latest checkpoint: %w", err)
	}

	return blockID(checkpoint), checkpoint.Timestamp, nil
}

func blockID(checkpoint *sui.Checkpoint) identifier.Block {
	sequence := checkpoint.SequenceNumber
	return identifier.Block{
		Index: &sequence,
		Hash:  checkpoint.Digest,
	}
}
