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
	"fmt"
	"math/big"

	"github.com/sourcegraph/conc/iter"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

type balance struct {
	amount object.Amount
	err    error
}

// Balances returns the balances of an account for the given currencies. The
// returned amounts are in the same order as the requested currencies, and a
// currency the account never held has a zero balance. Only the balances at
// the latest checkpoint can be looked up.
func (r *Retriever) Balances(ctx context.Context, block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {

	completed, err := r.validate.Block(ctx, block)
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not validate block: %w", err)
	}

	// Balances are only served from live state. A pinned checkpoint that lags
	// behind the latest one by a few checkpoints is accepted, and the response
	// carries the checkpoint the balances were actually read at.
	if !block.IsEmpty() {
		current, err := r.validate.Block(ctx, identifier.Block{})
		if err != nil {
			return identifier.Block{}, nil, fmt.Errorf("could not resolve latest checkpoint: %w", err)
		}
		if *completed.Index+r.cfg.BalanceLag < *current.Index {
			return identifier.Block{}, nil, failure.HistoricalBalance{
				Index:  *completed.Index,
				Latest: *current.Index,
				Description: failure.NewDescription(historicalUnsupported,
					failure.WithUint64("lag", r.cfg.BalanceLag),
				),
			}
		}
		completed = current
	}

	account, err = r.validate.Account(account)
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not validate account: %w", err)
	}

	mapper := iter.Mapper[identifier.Currency, balance]{
		MaxGoroutines: r.cfg.Concurrency,
	}
	results := mapper.Map(currencies, func(currency *identifier.Currency) balance {
		amount, err := r.balance(ctx, account, *currency)
		return balance{amount: amount, err: err}
	})

	// Errors are reported for the first failing currency in request order,
	// regardless of which lookup finished first.
	amounts := make([]object.Amount, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			return identifier.Block{}, nil, result.err
		}
		amounts = append(amounts, result.amount)
	}

	return completed, amounts, nil
}

func (r *Retriever) balance(ctx context.Context, account identifier.Account, currency identifier.Currency) (object.Amount, error) {

	currency, err := r.validate.Currency(ctx, currency)
	if err != nil {
		return object.Amount{}, fmt.Errorf("could not validate currency: %w", err)
	}

	canonical, err := sui.CanonicalCoinType(currency.CoinType)
	if err != nil {
		return object.Amount{}, fmt.Errorf("could not canonicalize coin type: %w", err)
	}

	total := new(big.Int)
	switch {

	case account.Partition() == "":
		coins, err := r.ledger.Coins(ctx, account.Address, currency.CoinType)
		if err != nil {
			return object.Amount{}, fmt.Errorf("could not get coins (%s): %w", currency.CoinType, err)
		}
		for _, coin := range coins {
			coinType, err := sui.CanonicalCoinType(coin.CoinType)
			if err != nil || coinType != canonical || coin.Balance == nil {
				continue
			}
			total.Add(total, coin.Balance)
		}

	// Staking partitions only exist for the native coin.
	case sui.IsNative(canonical):
		stakes, err := r.ledger.Stakes(ctx, account.Address)
		if err != nil {
			return object.Amount{}, fmt.Errorf("could not get stakes: %w", err)
		}
		for _, stake := range stakes {
			value := stakeValue(account.Partition(), stake)
			if value != nil {
				total.Add(total, value)
			}
		}
	}

	amount := object.Amount{
		Value:    total.String(),
		Currency: currency,
	}

	return amount, nil
}

func stakeValue(partition string, stake sui.Stake) *big.Int {
	switch partition {
	case sui.PartitionStake:
		if stake.Status == sui.StakeActive {
			return stake.Principal
		}
	case sui.PartitionPendingStake:
		if stake.Status == sui.StakePending {
			return stake.Principal
		}
	case sui.PartitionEstimatedReward:
		return stake.EstimatedReward
	}
	return nil
}
