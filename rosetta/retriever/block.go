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

	"golang.org/x/sync/errgroup"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Block returns the given checkpoint with all of its transactions converted
// to operations. When a checkpoint holds more transactions than the
// configured limit, the remaining ones are returned as identifiers.
func (r *Retriever) Block(ctx context.Context, id identifier.Block) (*object.Block, []identifier.Transaction, error) {

	completed, err := r.validate.Block(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not validate block: %w", err)
	}

	checkpoint, err := r.ledger.Checkpoint(ctx, *completed.Index)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get checkpoint: %w", err)
	}

	digests := checkpoint.Transactions
	var other []identifier.Transaction
	if uint(len(digests)) > r.cfg.TransactionLimit {
		for _, digest := range digests[r.cfg.TransactionLimit:] {
			other = append(other, identifier.Transaction{Hash: digest})
		}
		digests = digests[:r.cfg.TransactionLimit]
	}

	transactions := make([]*object.Transaction, len(digests))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.cfg.Concurrency)
	for i, digest := range digests {
		i, digest := i, digest
		group.Go(func() error {
			record, err := r.ledger.Transaction(gctx, digest)
			if err != nil {
				return fmt.Errorf("could not get transaction (%s): %w", digest, err)
			}
			transaction, err := r.convert.Transaction(gctx, record)
			if err != nil {
				return fmt.Errorf("could not convert transaction (%s): %w", digest, err)
			}
			transactions[i] = transaction
			return nil
		})
	}
	err = group.Wait()
	if err != nil {
		return nil, nil, err
	}

	// The genesis checkpoint is its own parent.
	parent := blockID(checkpoint)
	if checkpoint.SequenceNumber > 0 {
		index := checkpoint.SequenceNumber - 1
		parent = identifier.Block{
			Index: &index,
			Hash:  checkpoint.PreviousDigest,
		}
	}

	block := object.Block{
		ID:           blockID(checkpoint),
		ParentID:     parent,
		Timestamp:    checkpoint.Timestamp.UnixNano() / 1_000_000,
		Transactions: transactions,
	}

	return &block, other, nil
}
