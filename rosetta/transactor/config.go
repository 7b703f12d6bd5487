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

package transactor

import (
	"github.com/optakt/sui-rosetta/models/sui"
)

// DefaultConfig is the default configuration for the Transactor.
var DefaultConfig = Config{
	GasBudget: sui.DefaultGasBudget,
}

// Config is the configuration for the Transactor.
type Config struct {
	GasBudget uint64
}

// WithGasBudget sets the gas budget, in MIST, reserved for every
// constructed transaction.
func WithGasBudget(budget uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.GasBudget = budget
	}
}
