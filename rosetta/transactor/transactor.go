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
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/optakt/sui-rosetta/codec/zbor"
	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Transactor can determine the transfer intent from an array of Rosetta
// operations, build an unsigned Sui transaction for it, attach signatures and
// translate a transaction payload back to an array of Rosetta operations. It
// never signs anything itself.
type Transactor struct {
	cfg      Config
	registry Registry
	ledger   Ledger
	submit   Submitter
	codec    *zbor.Codec
}

// New creates a new transactor to handle interactions with Sui transactions.
func New(registry Registry, ledger Ledger, submit Submitter, options ...func(*Config)) *Transactor {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	t := Transactor{
		cfg:      cfg,
		registry: registry,
		ledger:   ledger,
		submit:   submit,
		codec:    zbor.NewCodec(),
	}

	return &t
}

// Metadata returns the gas parameters for a transaction of the given sender.
func (t *Transactor) Metadata(ctx context.Context, sender string) (*Metadata, error) {

	price, err := t.ledger.ReferenceGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get reference gas price: %w", err)
	}

	metadata := Metadata{
		Sender:    sender,
		GasPrice:  price,
		GasBudget: t.cfg.GasBudget,
	}

	return &metadata, nil
}

// CompileTransaction builds the unsigned transaction for the given intent,
// funded by the selected coins, and returns it as an encoded payload.
func (t *Transactor) CompileTransaction(ctx context.Context, intent *Intent, selection *Selection, metadata *Metadata) (string, error) {

	var txBytes []byte
	var err error
	if intent.Native() {
		txBytes, err = t.ledger.PaySui(ctx, intent.Sender, selection.Coins, intent.Recipients, metadata.GasBudget)
	} else {
		txBytes, err = t.ledger.Pay(ctx, intent.Sender, selection.Coins, intent.Recipients, selection.Gas, metadata.GasBudget)
	}
	if err != nil {
		return "", fmt.Errorf("could not build transaction: %w", err)
	}

	recipients := make([]recipient, 0, len(intent.Recipients))
	for _, r := range intent.Recipients {
		recipients = append(recipients, recipient{Address: r.Address, Amount: r.Amount.String()})
	}

	p := payload{
		TxBytes:    txBytes,
		Sender:     intent.Sender,
		CoinType:   intent.Currency.CoinType,
		Recipients: recipients,
		GasBudget:  metadata.GasBudget,
		GasPrice:   metadata.GasPrice,
	}

	unsigned, err := t.encodePayload(p)
	if err != nil {
		return "", fmt.Errorf("could not encode payload: %w", err)
	}

	return unsigned, nil
}

// SigningPayload returns what the sender has to sign for the given unsigned
// transaction.
func (t *Transactor) SigningPayload(unsigned string) (object.SigningPayload, error) {

	p, err := t.decodePayload(unsigned)
	if err != nil {
		return object.SigningPayload{}, err
	}

	payload := object.SigningPayload{
		AccountID:     identifier.Account{Address: p.Sender},
		HexBytes:      hex.EncodeToString(sui.SigningMessage(p.TxBytes)),
		SignatureType: sui.SignatureTypeEd25519,
	}

	return payload, nil
}

// AttachSignature verifies the given signature against the unsigned
// transaction and its sender, and returns the signed transaction.
func (t *Transactor) AttachSignature(unsigned string, signature object.Signature) (string, error) {

	p, err := t.decodePayload(unsigned)
	if err != nil {
		return "", err
	}

	if len(p.Signatures) > 0 {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(sigFound,
				failure.WithInt("signatures", len(p.Signatures)),
			),
		}
	}

	if signature.SignatureType != sui.SignatureTypeEd25519 {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(sigAlgoInvalid,
				failure.WithString("have_algo", signature.SignatureType),
				failure.WithString("want_algo", sui.SignatureTypeEd25519),
			),
		}
	}
	if signature.PublicKey.CurveType != sui.CurveTypeEdwards25519 {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(curveInvalid,
				failure.WithString("have_curve", signature.PublicKey.CurveType),
				failure.WithString("want_curve", sui.CurveTypeEdwards25519),
			),
		}
	}

	key, err := hex.DecodeString(signature.PublicKey.HexBytes)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(keyEncoding,
				failure.WithInt("length", len(key)),
			),
		}
	}
	sig, err := hex.DecodeString(signature.HexBytes)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(sigEncoding,
				failure.WithInt("length", len(sig)),
			),
		}
	}

	if signature.SigningPayload.AccountID.Address != "" {
		address, err := sui.NormalizeAddress(signature.SigningPayload.AccountID.Address)
		if err != nil || address != p.Sender {
			return "", failure.InvalidSignature{
				Description: failure.NewDescription(accountMismatch,
					failure.WithString("have_signer", signature.SigningPayload.AccountID.Address),
					failure.WithString("want_signer", p.Sender),
				),
			}
		}
	}

	signer := sui.AddressFromPublicKey(key)
	if signer != p.Sender {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(signerInvalid,
				failure.WithString("have_signer", signer),
				failure.WithString("want_signer", p.Sender),
			),
		}
	}

	if !ed25519.Verify(key, sui.SigningMessage(p.TxBytes), sig) {
		return "", failure.InvalidSignature{
			Description: failure.NewDescription(sigInvalid),
		}
	}

	p.Signatures = append(p.Signatures, sui.SerializeSignature(sig, key))

	signed, err := t.encodePayload(p)
	if err != nil {
		return "", fmt.Errorf("could not encode payload: %w", err)
	}

	return signed, nil
}

// TransactionIdentifier returns the transaction identifier of a given
// transaction payload.
func (t *Transactor) TransactionIdentifier(signed string) (identifier.Transaction, error) {

	p, err := t.decodePayload(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	return identifier.Transaction{Hash: sui.TransactionDigest(p.TxBytes)}, nil
}

// Parse translates a transaction payload back to the operations it performs,
// without status, and the accounts that signed it.
func (t *Transactor) Parse(ctx context.Context, payload string) ([]object.Operation, []identifier.Account, error) {

	p, err := t.decodePayload(payload)
	if err != nil {
		return nil, nil, err
	}

	currency, err := t.registry.Currency(ctx, p.CoinType)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get currency: %w", err)
	}

	opType := sui.OperationPayCoin
	if sui.IsNative(p.CoinType) {
		opType = sui.OperationPaySui
	}

	total := new(big.Int)
	for _, r := range p.Recipients {
		amount, ok := new(big.Int).SetString(r.Amount, 10)
		if !ok {
			return nil, nil, failure.InvalidPayload{
				Description: failure.NewDescription(payloadDecoding,
					failure.WithString("amount", r.Amount),
				),
			}
		}
		total.Add(total, amount)
	}

	operations := make([]object.Operation, 0, len(p.Recipients)+1)
	operations = append(operations, object.Operation{
		ID:        identifier.Operation{Index: 0},
		Type:      opType,
		AccountID: identifier.Account{Address: p.Sender},
		Amount: &object.Amount{
			Value:    new(big.Int).Neg(total).String(),
			Currency: currency,
		},
	})
	for i, r := range p.Recipients {
		operations = append(operations, object.Operation{
			ID:        identifier.Operation{Index: uint(i + 1)},
			Type:      opType,
			AccountID: identifier.Account{Address: r.Address},
			Amount: &object.Amount{
				Value:    r.Amount,
				Currency: currency,
			},
		})
	}

	var signers []identifier.Account
	if len(p.Signatures) > 0 {
		signers = append(signers, identifier.Account{Address: p.Sender})
	}

	return operations, signers, nil
}

// SubmitTransaction submits the given signed transaction. It is never
// retried: a failure leaves the outcome to be checked with the returned
// error.
func (t *Transactor) SubmitTransaction(ctx context.Context, signed string) (identifier.Transaction, error) {

	p, err := t.decodePayload(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	if len(p.Signatures) == 0 {
		return identifier.Transaction{}, failure.InvalidPayload{
			Description: failure.NewDescription(payloadUnsigned),
		}
	}

	digest, err := t.submit.Transaction(ctx, p.TxBytes, p.Signatures)
	if err != nil {
		return identifier.Transaction{}, fmt.Errorf("could not submit transaction: %w", err)
	}

	return identifier.Transaction{Hash: digest}, nil
}
