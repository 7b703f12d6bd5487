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

package jsonrpc

import (
	"time"
)

// DefaultConfig is the default configuration for the ledger client.
var DefaultConfig = Config{
	Timeout:  10 * time.Second,
	Retries:  3,
	Rate:     50,
	Burst:    10,
	PageSize: 50,
}

// Config contains the configuration options for the ledger client.
type Config struct {
	Timeout  time.Duration
	Retries  int
	Rate     float64
	Burst    int
	PageSize uint
}

// WithTimeout sets the timeout of a single request to the ledger node.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithRetries sets how often read requests are retried on transient failures.
// Transaction execution is never retried.
func WithRetries(retries int) func(*Config) {
	return func(cfg *Config) {
		cfg.Retries = retries
	}
}

// WithRate limits the number of requests per second sent to the ledger node.
func WithRate(rate float64, burst int) func(*Config) {
	return func(cfg *Config) {
		cfg.Rate = rate
		cfg.Burst = burst
	}
}

// WithPageSize sets the page size used for paginated coin queries.
func WithPageSize(size uint) func(*Config) {
	return func(cfg *Config) {
		cfg.PageSize = size
	}
}
