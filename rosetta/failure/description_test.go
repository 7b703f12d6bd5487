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

package failure_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	dummy := errors.New("dummy error")
	sequence := uint64(42)
	index := 84
	network := sui.Testnet
	coinTypes := []string{sui.NativeCoinType, "0x2::coin::COIN"}
	waited := 3 * time.Second

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(dummy),
			failure.WithUint64("checkpoint", sequence),
			failure.WithInt("index", index),
			failure.WithString("network", network),
			failure.WithStrings("types", coinTypes...),
			failure.WithDuration("waited", waited),
			failure.WithBool("cancelled", true),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), dummy.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("checkpoint: %v", sequence))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("network: %v", network))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("types: %v", coinTypes))
		assert.Contains(t, desc.Fields.String(), "waited: 3s")
		assert.Contains(t, desc.Fields.String(), "cancelled: true")
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})
}
