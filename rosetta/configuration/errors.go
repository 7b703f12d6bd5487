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

package configuration

import (
	"github.com/optakt/sui-rosetta/rosetta/meta"
)

var (
	ErrorInternal           = meta.ErrorDefinition{Code: 1, Message: "internal error", Retriable: false}
	ErrorInvalidEncoding    = meta.ErrorDefinition{Code: 2, Message: "invalid request encoding", Retriable: false}
	ErrorInvalidFormat      = meta.ErrorDefinition{Code: 3, Message: "invalid request format", Retriable: false}
	ErrorInvalidNetwork     = meta.ErrorDefinition{Code: 4, Message: "invalid network identifier", Retriable: false}
	ErrorInvalidAccount     = meta.ErrorDefinition{Code: 5, Message: "invalid account identifier", Retriable: false}
	ErrorInvalidCurrency    = meta.ErrorDefinition{Code: 6, Message: "invalid currency identifier", Retriable: false}
	ErrorInvalidBlock       = meta.ErrorDefinition{Code: 7, Message: "invalid block identifier", Retriable: false}
	ErrorUnknownBlock       = meta.ErrorDefinition{Code: 8, Message: "unknown block identifier", Retriable: true}
	ErrorInvalidTransaction = meta.ErrorDefinition{Code: 9, Message: "invalid transaction identifier", Retriable: false}
	ErrorUnknownTransaction = meta.ErrorDefinition{Code: 10, Message: "unknown block transaction", Retriable: false}

	// Construction API specific errors.
	ErrorInvalidOperations        = meta.ErrorDefinition{Code: 11, Message: "invalid transaction operations", Retriable: false}
	ErrorUnsupportedOperationType = meta.ErrorDefinition{Code: 12, Message: "unsupported operation type", Retriable: false}
	ErrorUnbalancedOperations     = meta.ErrorDefinition{Code: 13, Message: "unbalanced transaction operations", Retriable: false}
	ErrorMultiSenderUnsupported   = meta.ErrorDefinition{Code: 14, Message: "multiple senders unsupported", Retriable: false}
	ErrorInsufficientBalance      = meta.ErrorDefinition{Code: 15, Message: "insufficient balance", Retriable: false}
	ErrorInvalidPayload           = meta.ErrorDefinition{Code: 16, Message: "invalid transaction payload", Retriable: false}
	ErrorInvalidSignature         = meta.ErrorDefinition{Code: 17, Message: "invalid transaction signature", Retriable: false}
	ErrorRetriableRPC             = meta.ErrorDefinition{Code: 18, Message: "ledger node unavailable", Retriable: true}
	ErrorExecutionFailure         = meta.ErrorDefinition{Code: 19, Message: "transaction execution failed", Retriable: false}
	ErrorConfirmationTimeout      = meta.ErrorDefinition{Code: 20, Message: "transaction confirmation timed out", Retriable: false}
	ErrorSubmissionUnknown        = meta.ErrorDefinition{Code: 21, Message: "transaction submission outcome unknown", Retriable: false}
	ErrorHistoricalBalance        = meta.ErrorDefinition{Code: 22, Message: "historical balance lookup unsupported", Retriable: false}
)
