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

package rosetta

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Field names are mandatory arguments for the `ReportError` method from the
// validator library, but since we deal with the structured errors, they are
// not shown anywhere.
const (
	blockchainField = "blockchain"
	networkField    = "network"
	addressField    = "address"
	txField         = "transaction_id"
	coinTypeField   = "coin_type"
	typeField       = "type"
	amountField     = "amount"
	publicKeyField  = "public_key"
	curveField      = "curve_type"
)

// We have to multiply by two here, because the addresses that we receive are
// hex-encoded and use two characters for every byte.
const hexAddressSize = len("0x") + 2*sui.AddressLength

func networkValidator(sl validator.StructLevel) {
	network := sl.Current().Interface().(identifier.Network)
	if network.Blockchain == "" {
		sl.ReportError(network.Blockchain, blockchainField, blockchainField, blockchainEmpty, "")
	}
	if network.Network == "" {
		sl.ReportError(network.Network, networkField, networkField, networkEmpty, "")
	}
}

func accountValidator(sl validator.StructLevel) {
	account := sl.Current().Interface().(identifier.Account)
	if account.Address == "" {
		sl.ReportError(account.Address, addressField, addressField, addressEmpty, "")
		return
	}
	if !strings.HasPrefix(account.Address, "0x") {
		sl.ReportError(account.Address, addressField, addressField, addressPrefix, "")
		return
	}
	if len(account.Address) != hexAddressSize {
		sl.ReportError(account.Address, addressField, addressField, addressLength, "")
	}
}

func transactionValidator(sl validator.StructLevel) {
	transaction := sl.Current().Interface().(identifier.Transaction)
	if transaction.Hash == "" {
		sl.ReportError(transaction.Hash, txField, txField, txHashEmpty, "")
	}
}

func currencyValidator(sl validator.StructLevel) {
	currency := sl.Current().Interface().(identifier.Currency)
	if currency.CoinType == "" {
		sl.ReportError(currency.CoinType, coinTypeField, coinTypeField, coinTypeEmpty, "")
	}
}

func operationValidator(sl validator.StructLevel) {
	operation := sl.Current().Interface().(object.Operation)
	if operation.Type == "" {
		sl.ReportError(operation.Type, typeField, typeField, opTypeEmpty, "")
	}
	if operation.Status != nil {
		sl.ReportError(operation.Status, typeField, typeField, opStatusSet, "")
	}
	if operation.Amount == nil {
		sl.ReportError(operation.Amount, amountField, amountField, opAmountMissing, "")
	}
}

func publicKeyValidator(sl validator.StructLevel) {
	key := sl.Current().Interface().(object.PublicKey)
	if key.CurveType != sui.CurveTypeEdwards25519 {
		sl.ReportError(key.CurveType, curveField, curveField, curveUnsupported, "")
	}
	raw, err := hex.DecodeString(key.HexBytes)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		sl.ReportError(key.HexBytes, publicKeyField, publicKeyField, publicKeyInvalid, "")
	}
}
