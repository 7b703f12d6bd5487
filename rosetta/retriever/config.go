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

// DefaultConfig is the default configuration for the Retriever.
var DefaultConfig = Config{
	TransactionLimit: 200,
	Concurrency:      16,
	BalanceLag:       40,
}

// Config is the configuration for the Retriever.
type Config struct {
	// TransactionLimit is the maximum number of transactions returned in full
	// for a block. Transactions beyond the limit are returned as identifiers
	// only.
	TransactionLimit uint
	// Concurrency is the maximum number of concurrent ledger lookups for a
	// single request.
	Concurrency int
	// BalanceLag is the number of checkpoints a balance request may lag
	// behind the latest checkpoint.
	BalanceLag uint64
}

func WithTransactionLimit(limit uint) func(*Config) {
	return func(cfg *Config) {
		cfg.TransactionLimit = limit
	}
}

func WithConcurrency(concurrency int) func(*Config) {
	return func(cfg *Config) {
		cfg.Concurrency = concurrency
	}
}

func WithBalanceLag(lag uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.BalanceLag = lag
	}
}
