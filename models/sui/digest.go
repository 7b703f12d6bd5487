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

package sui

import (
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const DigestLength = 32

// IntentPrefix is prepended to transaction data before signing: transaction
// data scope, version zero, application id zero.
var IntentPrefix = []byte{0, 0, 0}

const transactionDataSalt = "TransactionData::"

// TransactionDigest computes the base58 digest identifying the transaction
// with the given BCS-encoded transaction data.
func TransactionDigest(txBytes []byte) string {
	data := make([]byte, 0, len(transactionDataSalt)+len(txBytes))
	data = append(data, transactionDataSalt...)
	data = append(data, txBytes...)
	hash := blake2b.Sum256(data)
	return base58.Encode(hash[:])
}

// SigningMessage returns the message a signer has to sign for the given
// transaction data.
func SigningMessage(txBytes []byte) []byte {
	data := make([]byte, 0, len(IntentPrefix)+len(txBytes))
	data = append(data, IntentPrefix...)
	data = append(data, txBytes...)
	hash := blake2b.Sum256(data)
	return hash[:]
}

// ValidateDigest checks that the given string is a base58-encoded digest.
func ValidateDigest(digest string) error {
	data, err := base58.Decode(digest)
	if err != nil {
		return fmt.Errorf("invalid digest encoding: %w", err)
	}
	if len(data) != DigestLength {
		return fmt.Errorf("invalid digest length (have: %d, want: %d)", len(data), DigestLength)
	}
	return nil
}
