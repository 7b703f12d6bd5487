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

package mocks

import (
	"context"
	"testing"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type Converter struct {
	OperationsFunc  func(ctx context.Context, record *sui.TransactionRecord) ([]object.Operation, error)
	TransactionFunc func(ctx context.Context, record *sui.TransactionRecord) (*object.Transaction, error)
}

func BaselineConverter(t *testing.T) *Converter {
	t.Helper()

	c := Converter{
		OperationsFunc: func(ctx context.Context, record *sui.TransactionRecord) ([]object.Operation, error) {
			return GenericOperations(), nil
		},
		TransactionFunc: func(ctx context.Context, record *sui.TransactionRecord) (*object.Transaction, error) {
			transaction := object.Transaction{
				ID:         identifier.Transaction{Hash: record.Digest},
				Operations: GenericOperations(),
			}
			return &transaction, nil
		},
	}

	return &c
}

func (c *Converter) Operations(ctx context.Context, record *sui.TransactionRecord) ([]object.Operation, error) {
	return c.OperationsFunc(ctx, record)
}

func (c *Converter) Transaction(ctx context.Context, record *sui.TransactionRecord) (*object.Transaction, error) {
	return c.TransactionFunc(ctx, record)
}
