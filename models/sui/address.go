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
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	AddressLength = 32

	// FlagEd25519 is the signature scheme flag prefixed to Ed25519 public keys
	// and serialized signatures.
	FlagEd25519 = 0x00

	SignatureTypeEd25519  = "ed25519"
	CurveTypeEdwards25519 = "edwards25519"
)

// NormalizeAddress validates a hexadecimal account address and returns it in
// its full lowercase form. Addresses must be given with the `0x` prefix and
// exactly 32 bytes, the same way the ledger renders them.
func NormalizeAddress(address string) (string, error) {
	if !strings.HasPrefix(address, "0x") {
		return "", fmt.Errorf("missing 0x prefix")
	}
	digits := address[2:]
	if len(digits) != AddressLength*2 {
		return "", fmt.Errorf("invalid address length (have: %d, want: %d)", len(digits), AddressLength*2)
	}
	_, err := hex.DecodeString(digits)
	if err != nil {
		return "", fmt.Errorf("invalid address encoding: %w", err)
	}
	return "0x" + strings.ToLower(digits), nil
}

// AddressFromPublicKey derives the account address controlled by an Ed25519
// public key.
func AddressFromPublicKey(key ed25519.PublicKey) string {
	data := make([]byte, 0, 1+len(key))
	data = append(data, FlagEd25519)
	data = append(data, key...)
	hash := blake2b.Sum256(data)
	return "0x" + hex.EncodeToString(hash[:])
}

// SerializeSignature builds the serialized signature the ledger expects for
// an Ed25519 signer.
func SerializeSignature(signature []byte, key ed25519.PublicKey) []byte {
	data := make([]byte, 0, 1+len(signature)+len(key))
	data = append(data, FlagEd25519)
	data = append(data, signature...)
	data = append(data, key...)
	return data
}
