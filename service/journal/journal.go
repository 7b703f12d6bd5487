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

package journal

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/sui-rosetta/models/submission"
)

// Journal persists the state of transactions going through the construction
// flow, so that a transaction can be resumed or checked after a restart.
type Journal struct {
	db  *badger.DB
	lib *Library
	now func() time.Time
}

// New creates a journal on top of the given Badger database.
func New(db *badger.DB, options ...func(*Config)) *Journal {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	j := Journal{
		db:  db,
		lib: NewLibrary(cfg.Codec),
		now: time.Now,
	}

	return &j
}

// Record writes the given entry. A new entry has to be in the built state,
// while an existing entry can only move forward in the construction flow.
func (j *Journal) Record(entry submission.Entry) error {

	if entry.TransactionID == "" {
		return fmt.Errorf("missing transaction identifier")
	}
	entry.Updated = j.now().UTC()

	err := j.db.Update(Combine(
		Fallback(
			Combine(j.lib.RequireAbsent(entry.TransactionID), requireInitial(entry.State)),
			j.lib.RequireTransition(entry.TransactionID, entry.State),
		),
		j.lib.SaveEntry(entry),
		j.lib.IndexEntryForSender(entry.Sender, entry.TransactionID),
	))
	if err != nil {
		return fmt.Errorf("could not record entry (transaction: %s, state: %s): %w", entry.TransactionID, entry.State, err)
	}

	return nil
}

// Entry returns the entry of the given transaction.
func (j *Journal) Entry(txID string) (*submission.Entry, error) {

	var entry submission.Entry
	err := j.db.View(j.lib.RetrieveEntry(txID, &entry))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w (transaction: %s)", ErrNotFound, txID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not retrieve entry (transaction: %s): %w", txID, err)
	}

	return &entry, nil
}

// Entries returns the entries of all transactions sent by the given address,
// ordered from the least to the most recently updated.
func (j *Journal) Entries(sender string) ([]submission.Entry, error) {

	var entries []submission.Entry
	err := j.db.View(func(tx *badger.Txn) error {
		var txIDs []string
		err := j.lib.LookupEntriesForSender(sender, &txIDs)(tx)
		if err != nil {
			return fmt.Errorf("could not look up transactions: %w", err)
		}

		for _, txID := range txIDs {
			var entry submission.Entry
			err = j.lib.RetrieveEntry(txID, &entry)(tx)
			if err != nil {
				return fmt.Errorf("could not retrieve entry (transaction: %s): %w", txID, err)
			}
			if entry.Sender != sender {
				continue
			}
			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not retrieve entries (sender: %s): %w", sender, err)
	}

	sort.SliceStable(entries, func(i, k int) bool {
		return entries[i].Updated.Before(entries[k].Updated)
	})

	return entries, nil
}

func requireInitial(state submission.State) func(*badger.Txn) error {
	return func(*badger.Txn) error {
		if state != submission.StateBuilt {
			return fmt.Errorf("%w (new entry in state %s)", ErrInvalidTransition, state)
		}
		return nil
	}
}
