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

package signer

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Keystore is an in-memory signer holding Ed25519 keys indexed by the Sui
// address they control.
type Keystore struct {
	keys map[string]ed25519.PrivateKey
}

// New creates a keystore holding the given keys.
func New(keys ...ed25519.PrivateKey) *Keystore {

	k := Keystore{
		keys: make(map[string]ed25519.PrivateKey, len(keys)),
	}
	for _, key := range keys {
		k.keys[sui.AddressFromPublicKey(key.Public().(ed25519.PublicKey))] = key
	}

	return &k
}

// ParseSeed decodes a hex-encoded Ed25519 seed into a private key.
func ParseSeed(seed string) (ed25519.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(seed, "0x"))
	if err != nil {
		return nil, fmt.Errorf("could not decode seed: %w", err)
	}
	if len(raw) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length (have: %d, want: %d)", len(raw), ed25519.SeedSize)
	}
	return ed25519.NewKeyFromSeed(raw), nil
}

// Addresses returns the addresses the keystore can sign for.
func (k *Keystore) Addresses() []string {
	addresses := make([]string, 0, len(k.keys))
	for address := range k.keys {
		addresses = append(addresses, address)
	}
	return addresses
}

// Sign signs the given payload with the key of the given account.
func (k *Keystore) Sign(account identifier.Account, payload object.SigningPayload) (object.Signature, error) {

	address, err := sui.NormalizeAddress(account.Address)
	if err != nil {
		return object.Signature{}, fmt.Errorf("could not normalize address: %w", err)
	}
	if payload.AccountID.Address != "" {
		target, err := sui.NormalizeAddress(payload.AccountID.Address)
		if err != nil || target != address {
			return object.Signature{}, fmt.Errorf("payload is for another account (account: %s, payload: %s)", address, payload.AccountID.Address)
		}
	}
	if payload.SignatureType != "" && payload.SignatureType != sui.SignatureTypeEd25519 {
		return object.Signature{}, fmt.Errorf("unsupported signature type (%s)", payload.SignatureType)
	}

	key, ok := k.keys[address]
	if !ok {
		return object.Signature{}, fmt.Errorf("%w (%s)", ErrUnknownAccount, address)
	}

	message, err := hex.DecodeString(payload.HexBytes)
	if err != nil {
		return object.Signature{}, fmt.Errorf("could not decode signing payload: %w", err)
	}

	signature := object.Signature{
		SigningPayload: payload,
		SignatureType:  sui.SignatureTypeEd25519,
		HexBytes:       hex.EncodeToString(ed25519.Sign(key, message)),
		PublicKey: object.PublicKey{
			HexBytes:  hex.EncodeToString(key.Public().(ed25519.PublicKey)),
			CurveType: sui.CurveTypeEdwards25519,
		},
	}

	return signature, nil
}
