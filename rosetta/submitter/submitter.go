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

package submitter

import (
	"context"
	"fmt"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

// API is the part of the ledger client used to execute transactions.
type API interface {
	Execute(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error)
}

// Submitter uses the ledger node's JSON-RPC API to submit signed transactions
// for execution.
type Submitter struct {
	api API
}

// New creates a new Submitter that uses the specified API.
func New(api API) *Submitter {
	s := &Submitter{
		api: api,
	}
	return s
}

// Transaction submits the specified transaction to the ledger node and returns
// its digest. Failures after which the transaction may still execute are
// returned as a submission with an unknown outcome. The digest reported by the node has to match the one computed
// locally from the transaction bytes.
func (s *Submitter) Transaction(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error) {

	want := sui.TransactionDigest(txBytes)

	digest, err := s.api.Execute(ctx, txBytes, signatures)
	if err != nil {
		return "", fmt.Errorf("could not execute transaction: %w", err)
	}

	// The node accepted the request, so a mismatch does not mean the
	// transaction was rejected.
	if digest != want {
		return "", failure.SubmissionUnknown{
			Digest: want,
			Description: failure.NewDescription("unexpected transaction digest",
				failure.WithString("have", digest),
			),
		}
	}

	return digest, nil
}
