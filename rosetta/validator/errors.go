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

package validator

// Error descriptions for common errors.
const (
	blockInvalid     = "block hash is not a valid base58-encoded digest"
	blockTooHigh     = "block index is above latest checkpoint"
	blockUnavailable = "block index is not available on the ledger node"
	blockUnknownHash = "block hash does not match any checkpoint"
	blockMismatch    = "block hash mismatches with authoritative hash for index"
	addressInvalid   = "account address is not a valid address"
	partitionUnknown = "account identifier has unknown sub-account"
	txHashInvalid    = "transaction hash is not a valid base58-encoded digest"
)
