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
	"errors"
	"fmt"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Block resolves a block identifier to a fully populated one. An empty
// identifier resolves to the latest checkpoint. An index above the latest
// checkpoint is unknown (it may exist later), while a malformed or mismatching
// hash, or an index the node no longer serves, is invalid.
func (v *Validator) Block(ctx context.Context, block identifier.Block) (identifier.Block, error) {

	if block.Hash != "" {
		err := sui.ValidateDigest(block.Hash)
		if err != nil {
			return identifier.Block{}, failure.InvalidBlock{
				Description: failure.NewDescription(blockInvalid,
					failure.WithString("hash", block.Hash),
					failure.WithErr(err),
				),
			}
		}
	}

	// Without index, we either look up the checkpoint by its digest or, if
	// there is no digest either, use the latest checkpoint.
	if block.Index == nil && block.Hash != "" {
		checkpoint, err := v.ledger.CheckpointByDigest(ctx, block.Hash)
		if errors.Is(err, sui.ErrNotFound) {
			return identifier.Block{}, failure.InvalidBlock{
				Description: failure.NewDescription(blockUnknownHash,
					failure.WithString("hash", block.Hash),
				),
			}
		}
		if err != nil {
			return identifier.Block{}, fmt.Errorf("could not get checkpoint by digest: %w", err)
		}
		return blockID(checkpoint), nil
	}

	latest, err := v.ledger.LatestCheckpoint(ctx)
	if err != nil {
		return identifier.Block{}, fmt.Errorf("could not get latest checkpoint: %w", err)
	}

	index := latest
	if block.Index != nil {
		index = *block.Index
	}
	if index > latest {
		return identifier.Block{}, failure.UnknownBlock{
			Index: index,
			Hash:  block.Hash,
			Description: failure.NewDescription(blockTooHigh,
				failure.WithUint64("latest", latest),
			),
		}
	}

	checkpoint, err := v.ledger.Checkpoint(ctx, index)
	if errors.Is(err, sui.ErrNotFound) {
		return identifier.Block{}, failure.InvalidBlock{
			Description: failure.NewDescription(blockUnavailable,
				failure.WithUint64("index", index),
			),
		}
	}
	if err != nil {
		return identifier.Block{}, fmt.Errorf("could not get checkpoint: %w", err)
	}

	if block.Hash != "" && block.Hash != checkpoint.Digest {
		return identifier.Block{}, failure.InvalidBlock{
			Description: failure.NewDescription(blockMismatch,
				failure.WithUint64("index", index),
				failure.WithString("hash", block.Hash),
				failure.WithString("known_hash", checkpoint.Digest),
			),
		}
	}

	return blockID(checkpoint), nil
}

func blockID(checkpoint *sui.Checkpoint) identifier.Block {
	sequence := checkpoint.SequenceNumber
	return identifier.Block{
		Index: &sequence,
		Hash:  checkpoint.Digest,
	}
}
