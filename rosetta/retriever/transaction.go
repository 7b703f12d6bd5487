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
	"errors"
	"fmt"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Transaction returns a single transaction of the given block, converted to
// operations.
func (r *Retriever) Transaction(ctx context.Context, block identifier.Block, id identifier.Transaction) (*object.Transaction, error) {

	completed, err := r.validate.Block(ctx, block)
	if err != nil {
		return nil, fmt.Errorf("could not validate block: %w", err)
	}

	err = r.validate.Transaction(id)
	if err != nil {
		return nil, fmt.Errorf("could not validate transaction: %w", err)
	}

	record, err := r.ledger.Transaction(ctx, id.Hash)
	if errors.Is(err, sui.ErrNotFound) {
		return nil, failure.UnknownTransaction{
			Hash:        id.Hash,
			Description: failure.NewDescription(txNotFound),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get transaction: %w", err)
	}

	if record.Checkpoint == nil || *record.Checkpoint != *completed.Index {
		return nil, failure.UnknownTransaction{
			Hash: id.Hash,
			Description: failure.NewDescription(txNotInBlock,
				failure.WithUint64("index", *completed.Index),
				failure.WithString("hash", completed.Hash),
			),
		}
	}

	transaction, err := r.convert.Transaction(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("could not convert transaction: %w", err)
	}

	return transaction, nil
}
