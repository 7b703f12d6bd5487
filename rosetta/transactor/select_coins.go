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
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/gammazero/deque"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

// SelectCoins chooses the coins of the sender that fund the intent. A single
// coin matching the required amount exactly is preferred; otherwise coins
// are taken largest first until the amount is covered. Native transfers also
// need to cover the gas budget from the same coins, while other transfers
// need a separate native coin covering the gas budget on its own.
func (t *Transactor) SelectCoins(ctx context.Context, intent *Intent, metadata *Metadata) (*Selection, error) {

	budget := new(big.Int).SetUint64(metadata.GasBudget)
	want := intent.Total()

	if intent.Native() {
		want.Add(want, budget)
		coins, err := t.ledger.Coins(ctx, intent.Sender, sui.NativeCoinType)
		if err != nil {
			return nil, fmt.Errorf("could not get native coins: %w", err)
		}
		selected, err := selectCoins(intent.Sender, sui.NativeCoinType, coins, want)
		if err != nil {
			return nil, err
		}
		return &Selection{Coins: selected}, nil
	}

	var transfer, gas []sui.Coin
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		transfer, err = t.ledger.Coins(gctx, intent.Sender, intent.Currency.CoinType)
		if err != nil {
			return fmt.Errorf("could not get transfer coins: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		gas, err = t.ledger.Coins(gctx, intent.Sender, sui.NativeCoinType)
		if err != nil {
			return fmt.Errorf("could not get gas coins: %w", err)
		}
		return nil
	})
	err := group.Wait()
	if err != nil {
		return nil, err
	}

	selected, err := selectCoins(intent.Sender, intent.Currency.CoinType, transfer, want)
	if err != nil {
		return nil, err
	}

	gasCoin, have := largestCoin(gas)
	if have.Cmp(budget) < 0 {
		return nil, failure.InsufficientBalance{
			Address:     intent.Sender,
			CoinType:    sui.NativeCoinType,
			Have:        have.String(),
			Want:        budget.String(),
			Description: failure.NewDescription(gasInsufficient),
		}
	}

	selection := Selection{
		Coins: selected,
		Gas:   gasCoin,
	}

	return &selection, nil
}

func selectCoins(owner string, coinType string, coins []sui.Coin, want *big.Int) ([]string, error) {

	canonical, err := sui.CanonicalCoinType(coinType)
	if err != nil {
		return nil, fmt.Errorf("could not canonicalize coin type: %w", err)
	}

	candidates := make([]sui.Coin, 0, len(coins))
	for _, coin := range coins {
		if coin.Balance == nil || coin.Balance.Sign() <= 0 {
			continue
		}
		coinType, err := sui.CanonicalCoinType(coin.CoinType)
		if err != nil || coinType != canonical {
			continue
		}
		if coin.Balance.Cmp(want) == 0 {
			return []string{coin.ObjectID}, nil
		}
		candidates = append(candidates, coin)
	}

	sort.Slice(candidates, func(i int, j int) bool {
		cmp := candidates[i].Balance.Cmp(candidates[j].Balance)
		if cmp != 0 {
			return cmp > 0
		}
		return candidates[i].ObjectID < candidates[j].ObjectID
	})

	queue := deque.New()
	for _, coin := range candidates {
		queue.PushBack(coin)
	}

	var selected []string
	have := new(big.Int)
	for queue.Len() > 0 && have.Cmp(want) < 0 {
		coin := queue.PopFront().(sui.Coin)
		selected = append(selected, coin.ObjectID)
		have.Add(have, coin.Balance)
	}

	if have.Cmp(want) < 0 {
		return nil, failure.InsufficientBalance{
			Address:     owner,
			CoinType:    sui.DisplayCoinType(coinType),
			Have:        have.String(),
			Want:        want.String(),
			Description: failure.NewDescription(balanceInsufficient),
		}
	}

	return selected, nil
}

func largestCoin(coins []sui.Coin) (string, *big.Int) {
	id := ""
	largest := new(big.Int)
	for _, coin := range coins {
		if coin.Balance == nil || !sui.IsNative(coin.CoinType) {
			continue
		}
		if coin.Balance.Cmp(largest) > 0 {
			id = coin.ObjectID
			largest = coin.Balance
		}
	}
	return id, largest
}
