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
	"fmt"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Currency checks the coin type of the currency and completes its display
// metadata.
func (v *Validator) Currency(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {
	resolved, err := v.registry.Resolve(ctx, currency)
	if err != nil {
		return identifier.Currency{}, fmt.Errorf("could not resolve currency: %w", err)
	}
	return resolved, nil
}
