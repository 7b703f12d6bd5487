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
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/sui-rosetta/models/submission"
)

// SaveEntry is an operation that writes the given journal entry.
func (l *Library) SaveEntry(entry submission.Entry) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixEntry, entry.TransactionID), entry)
}

// RetrieveEntry is an operation that reads the journal entry of a transaction.
func (l *Library) RetrieveEntry(txID string, entry *submission.Entry) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixEntry, txID), entry)
}

// IndexEntryForSender is an operation that indexes a transaction identifier
// under the hash of its sender.
func (l *Library) IndexEntryForSender(sender string, txID string) func(*badger.Txn) error {
	hash := xxhash.ChecksumString64(sender)
	return l.save(EncodeKey(PrefixEntriesBySender, hash, txID), txID)
}

// LookupEntriesForSender is an operation that reads the transaction
// identifiers indexed for a sender. Hash collisions between senders are
// possible, so callers have to check the sender of each retrieved entry.
func (l *Library) LookupEntriesForSender(sender string, txIDs *[]string) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		hash := xxhash.ChecksumString64(sender)
		prefix := EncodeKey(PrefixEntriesBySender, hash)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var txID string
			err := it.Item().Value(func(val []byte) error {
				return l.codec.Unmarshal(val, &txID)
			})
			if err != nil {
				return fmt.Errorf("could not decode transaction identifier (key: %x): %w", it.Item().Key(), err)
			}
			*txIDs = append(*txIDs, txID)
		}

		return nil
	}
}

// RequireAbsent is an operation that fails if an entry exists for the given
// transaction identifier.
func (l *Library) RequireAbsent(txID string) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		_, err := tx.Get(EncodeKey(PrefixEntry, txID))
		if err == nil {
			return fmt.Errorf("%w (entry exists for transaction %s)", ErrInvalidTransition, txID)
		}
		if err != badger.ErrKeyNotFound {
			return fmt.Errorf("could not check entry (transaction: %s): %w", txID, err)
		}
		return nil
	}
}

// RequireTransition is an operation that fails unless an entry exists for the
// given transaction identifier and its state can move to the given one.
func (l *Library) RequireTransition(txID string, to submission.State) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var previous submission.Entry
		err := l.RetrieveEntry(txID, &previous)(tx)
		if err != nil {
			return err
		}
		if !previous.State.CanTransition(to) {
			return fmt.Errorf("%w (transaction: %s, from: %s, to: %s)", ErrInvalidTransition, txID, previous.State, to)
		}
		return nil
	}
}
