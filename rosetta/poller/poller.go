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

package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

// Ledger looks up executed transactions.
type Ledger interface {
	Transaction(ctx context.Context, digest string) (*sui.TransactionRecord, error)
}

// Poller waits for submitted transactions to become final. It never submits
// anything itself.
type Poller struct {
	log    zerolog.Logger
	cfg    Config
	ledger Ledger
}

// New creates a new confirmation poller on top of the given ledger.
func New(log zerolog.Logger, ledger Ledger, options ...func(*Config)) *Poller {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Poller{
		log:    log.With().Str("component", "confirmation_poller").Logger(),
		cfg:    cfg,
		ledger: ledger,
	}

	return &p
}

// Await looks up the transaction with the given digest until it is included
// in a checkpoint and returns its record. Lookups that fail because the
// transaction is not yet known or because the node is temporarily unavailable
// are repeated. If the timeout elapses or the context is cancelled first, a
// confirmation timeout is returned, as the outcome of the transaction is then
// unknown.
func (p *Poller) Await(ctx context.Context, digest string) (*sui.TransactionRecord, error) {

	start := time.Now()
	deadline := time.NewTimer(p.cfg.Timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	attempts := 0
	for {
		attempts++
		record, err := p.ledger.Transaction(ctx, digest)
		var retriable failure.RetriableRPC
		switch {

		case err == nil && record.Checkpoint != nil && record.Effects != nil:
			waited := time.Since(start)
			awaitDuration.Observe(waited.Seconds())
			awaitOutcomes.WithLabelValues(outcomeFinal).Inc()
			p.log.Debug().
				Str("digest", digest).
				Uint64("checkpoint", *record.Checkpoint).
				Int("attempts", attempts).
				Dur("waited", waited).
				Msg("transaction final")
			return record, nil

		case err == nil:
			p.log.Trace().Str("digest", digest).Msg("transaction not yet checkpointed")

		case errors.Is(err, sui.ErrNotFound):
			p.log.Trace().Str("digest", digest).Msg("transaction not yet known")

		case errors.As(err, &retriable):
			p.log.Debug().Err(err).Str("digest", digest).Msg("transient lookup failure")

		case ctx.Err() != nil:
			return nil, p.timeout(digest, start, true)

		default:
			awaitOutcomes.WithLabelValues(outcomeError).Inc()
			return nil, fmt.Errorf("could not look up transaction (digest: %s): %w", digest, err)
		}

		select {
		case <-ctx.Done():
			return nil, p.timeout(digest, start, true)
		case <-deadline.C:
			return nil, p.timeout(digest, start, false)
		case <-ticker.C:
		}
	}
}

func (p *Poller) timeout(digest string, start time.Time, cancelled bool) error {

	waited := time.Since(start)
	awaitDuration.Observe(waited.Seconds())
	outcome := outcomeTimeout
	text := "finality not observed before timeout"
	if cancelled {
		outcome = outcomeCancelled
		text = "wait for finality cancelled"
	}
	awaitOutcomes.WithLabelValues(outcome).Inc()

	p.log.Warn().Str("digest", digest).Dur("waited", waited).Bool("cancelled", cancelled).Msg("transaction outcome unknown")

	return failure.ConfirmationTimeout{
		Digest:    digest,
		Waited:    waited,
		Cancelled: cancelled,
		Description: failure.NewDescription(text,
			failure.WithDuration("timeout", p.cfg.Timeout),
		),
	}
}
