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

// Error descriptions for common errors.
const (
	// Operations/intent errors.
	opTypeInvalid       = "only transfer operations are supported"
	opAmountMissing     = "operation has no amount"
	opAmountUnparseable = "could not parse amount"
	opAmountZero        = "operation amount is zero"
	opAddressInvalid    = "operation account is not a valid address"
	opCoinTypeInvalid   = "operation currency has invalid coin type"
	opSubAccount        = "sub-account balances can not be transferred"
	opsUnbalanced       = "operation amounts do not sum to zero"
	opsMultiSender      = "only a single sending account is supported"
	opsNoSender         = "operations have no sending account"
	opsMultiCurrency    = "only a single currency per transaction is supported"

	// Coin selection errors.
	balanceInsufficient = "coins do not cover transfer amount and gas budget"
	gasInsufficient     = "no single gas coin covers gas budget"

	// Transaction payload errors.
	payloadEncoding = "payload is not valid base64"
	payloadDecoding = "payload could not be decoded"
	payloadUnsigned = "transaction has no signature"

	// Transaction signature errors.
	sigFound        = "transaction is already signed"
	sigAlgoInvalid  = "invalid signature algorithm"
	curveInvalid    = "invalid public key curve"
	keyEncoding     = "invalid public key encoding"
	sigEncoding     = "invalid signature encoding"
	sigInvalid      = "provided signature is not valid"
	signerInvalid   = "public key does not control sender account"
	accountMismatch = "signing account is not the sender"
)
