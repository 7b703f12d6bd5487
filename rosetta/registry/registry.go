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

package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Registry resolves currency identifiers. Coin types are open-ended on Sui, so
// the registry never rejects a well-formed coin type because it does not know
// it; it only fills in display metadata where it can.
type Registry struct {
	ledger Ledger
	cache  *ristretto.Cache
}

// New creates a new currency registry on top of the given ledger.
func New(ledger Ledger, options ...func(*Config)) (*Registry, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Ristretto recommends keeping ten times as many counters as items in the
	// cache when full. Coin metadata entries are tiny, so we assume an
	// average item size of 100 bytes.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(cfg.CacheSize) / 100 * 10,
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	r := Registry{
		ledger: ledger,
		cache:  cache,
	}

	return &r, nil
}

// Resolve canonicalizes the coin type of the given currency and completes its
// display metadata. Symbol and decimals given by the caller are kept as is.
func (r *Registry) Resolve(ctx context.Context, currency identifier.Currency) (identifier.Currency, error) {

	canonical, err := sui.CanonicalCoinType(currency.CoinType)
	if err != nil {
		return identifier.Currency{}, failure.InvalidCurrency{
			CoinType:    currency.CoinType,
			Description: failure.NewDescription("coin type is not a valid type tag", failure.WithErr(err)),
		}
	}

	resolved := identifier.Currency{
		CoinType: sui.DisplayCoinType(canonical),
		Symbol:   currency.Symbol,
		Decimals: currency.Decimals,
	}
	if resolved.Symbol != "" && resolved.Decimals != 0 {
		return resolved, nil
	}

	metadata, err := r.Lookup(ctx, canonical)
	if errors.Is(err, sui.ErrNotFound) {
		return resolved, nil
	}
	if err != nil {
		return identifier.Currency{}, fmt.Errorf("could not look up coin metadata: %w", err)
	}

	if resolved.Symbol == "" {
		resolved.Symbol = metadata.Symbol
	}
	if resolved.Decimals == 0 {
		resolved.Decimals = metadata.Decimals
	}

	return resolved, nil
}

// Currency returns the full currency identifier for a coin type seen on the
// ledger. Coin types without registered metadata come back without symbol
// and with zero decimals.
func (r *Registry) Currency(ctx context.Context, coinType string) (identifier.Currency, error) {
	return r.Resolve(ctx, identifier.Currency{CoinType: coinType})
}

// Lookup returns the display metadata of a coin type. The native coin is
// answered locally; all other metadata is read from the ledger once and then
// served from the cache.
func (r *Registry) Lookup(ctx context.Context, coinType string) (*sui.CoinMetadata, error) {

	canonical, err := sui.CanonicalCoinType(coinType)
	if err != nil {
		return nil, fmt.Errorf("could not canonicalize coin type: %w", err)
	}

	if sui.IsNative(canonical) {
		metadata := sui.CoinMetadata{
			Symbol:   sui.NativeSymbol,
			Decimals: sui.NativeDecimals,
			Name:     "Sui",
		}
		return &metadata, nil
	}

	cached, ok := r.cache.Get(canonical)
	if ok {
		return cached.(*sui.CoinMetadata), nil
	}

	metadata, err := r.ledger.CoinMetadata(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("could not get coin metadata: %w", err)
	}

	cost := int64(len(canonical) + len(metadata.Symbol) + len(metadata.Name) + 8)
	_ = r.cache.Set(canonical, metadata, cost)

	return metadata, nil
}
