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

package sui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/sui-rosetta/models/sui"
)

func TestCanonicalCoinType(t *testing.T) {

	t.Run("nominal case with short address", func(t *testing.T) {
		t.Parallel()

		got, err := sui.CanonicalCoinType("0x2::sui::SUI")

		require.NoError(t, err)
		assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI", got)
	})

	t.Run("spellings of the same type are equal", func(t *testing.T) {
		t.Parallel()

		short, err := sui.CanonicalCoinType("0xABC::my_coin::MY_COIN")
		require.NoError(t, err)
		long, err := sui.CanonicalCoinType("0x0000000000000000000000000000000000000000000000000000000000000abc::my_coin::MY_COIN")
		require.NoError(t, err)

		assert.Equal(t, short, long)
	})

	t.Run("generic parameters are canonicalized", func(t *testing.T) {
		t.Parallel()

		got, err := sui.CanonicalCoinType("0x2::coin::Coin<0x2::sui::SUI,vector<u8>>")

		require.NoError(t, err)
		assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI, vector<u8>>", got)
	})

	t.Run("handles missing module", func(t *testing.T) {
		t.Parallel()

		_, err := sui.CanonicalCoinType("0x2::SUI")

		assert.Error(t, err)
	})

	t.Run("handles missing address", func(t *testing.T) {
		t.Parallel()

		_, err := sui.CanonicalCoinType("sui::SUI")

		assert.Error(t, err)
	})

	t.Run("handles trailing characters", func(t *testing.T) {
		t.Parallel()

		_, err := sui.CanonicalCoinType("0x2::sui::SUI>")

		assert.Error(t, err)
	})

	t.Run("handles unknown primitive", func(t *testing.T) {
		t.Parallel()

		_, err := sui.CanonicalCoinType("0x2::coin::Coin<float>")

		assert.Error(t, err)
	})

	t.Run("handles oversized address", func(t *testing.T) {
		t.Parallel()

		_, err := sui.CanonicalCoinType("0x10000000000000000000000000000000000000000000000000000000000000002::sui::SUI")

		assert.Error(t, err)
	})
}

func TestIsNative(t *testing.T) {
	assert.True(t, sui.IsNative("0x2::sui::SUI"))
	assert.True(t, sui.IsNative("0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI"))
	assert.False(t, sui.IsNative("0x3::sui::SUI"))
	assert.False(t, sui.IsNative("invalid"))
}

func TestDisplayCoinType(t *testing.T) {
	assert.Equal(t, sui.NativeCoinType, sui.DisplayCoinType("0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI"))
	assert.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000000ab::coin::COIN", sui.DisplayCoinType("0xab::coin::COIN"))
	assert.Equal(t, "garbage", sui.DisplayCoinType("garbage"))
}
