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
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/sui-rosetta/rosetta/configuration"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/meta"
)

// Error messages for malformed requests.
const (
	invalidJSON = "request does not contain valid JSON-encoded body"

	blockchainEmpty  = "blockchain identifier has empty blockchain field"
	networkEmpty     = "blockchain identifier has empty network field"
	addressEmpty     = "account identifier has empty address field"
	addressPrefix    = "account identifier address is missing 0x prefix"
	addressLength    = "account identifier address has wrong length"
	txHashEmpty      = "transaction identifier has empty hash field"
	coinTypeEmpty    = "currency identifier has empty coin type field"
	opTypeEmpty      = "operation has empty type field"
	opStatusSet      = "operation for construction must not have a status"
	opAmountMissing  = "operation has no amount"
	curveUnsupported = "public key has unsupported curve type"
	publicKeyInvalid = "public key is not a hex-encoded Ed25519 key"
	amountInvalid    = "recipient amount is not a positive integer"
	coinsMissing     = "transaction metadata has no coins"
)

// Error descriptions for failures while handling well-formed requests.
const (
	networkCheck        = "unable to check network"
	oldestRetrieval     = "unable to retrieve oldest block"
	currentRetrieval    = "unable to retrieve current block"
	balancesRetrieval   = "unable to retrieve balances"
	blockRetrieval      = "unable to retrieve block"
	txRetrieval         = "unable to retrieve transaction"
	intentDetermination = "unable to determine transaction intent"
	metadataRetrieval   = "unable to retrieve transaction metadata"
	coinSelection       = "unable to select coins"
	txConstruction      = "unable to construct transaction"
	payloadConstruction = "unable to construct signing payload"
	txParsing           = "unable to parse transaction"
	txSigning           = "unable to attach signature"
	txIdentifier        = "unable to compute transaction identifier"
	txSubmission        = "unable to submit transaction"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

func rosettaError(definition meta.ErrorDefinition, description failure.Description, fields ...failure.FieldFunc) Error {
	for _, field := range fields {
		field(&description.Fields)
	}
	details := make(map[string]interface{}, len(description.Fields))
	description.Fields.Iterate(func(key string, val interface{}) {
		details[key] = val
	})
	e := Error{
		ErrorDefinition: definition,
		Description:     description.Text,
		Details:         details,
	}
	return e
}

// unpackError is used for request bodies that could not be decoded.
func unpackError(err error) *echo.HTTPError {
	desc := failure.NewDescription(invalidJSON, failure.WithErr(err))
	return echo.NewHTTPError(http.StatusBadRequest, rosettaError(configuration.ErrorInvalidEncoding, desc))
}

// formatError is used for requests that are decoded but malformed.
func formatError(err error) *echo.HTTPError {
	desc := failure.NewDescription(err.Error())
	return echo.NewHTTPError(statusBadRequest, rosettaError(configuration.ErrorInvalidFormat, desc))
}

// apiError translates a failure from the core into the matching Rosetta
// error. Anything that is not a known failure is an internal error.
func apiError(description string, err error) *echo.HTTPError {

	var invalidNetwork failure.InvalidNetwork
	var invalidAccount failure.InvalidAccount
	var invalidCurrency failure.InvalidCurrency
	var invalidBlock failure.InvalidBlock
	var unknownBlock failure.UnknownBlock
	var invalidTransaction failure.InvalidTransaction
	var unknownTransaction failure.UnknownTransaction
	var invalidOperations failure.InvalidOperations
	var unsupportedType failure.UnsupportedOperationType
	var unbalanced failure.UnbalancedOperations
	var multiSender failure.MultiSenderUnsupported
	var insufficient failure.InsufficientBalance
	var invalidPayload failure.InvalidPayload
	var invalidSignature failure.InvalidSignature
	var retriable failure.RetriableRPC
	var execution failure.ExecutionFailure
	var timeout failure.ConfirmationTimeout
	var unknownOutcome failure.SubmissionUnknown
	var historical failure.HistoricalBalance

	switch {
	case errors.As(err, &invalidNetwork):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidNetwork, invalidNetwork.Description,
			failure.WithString("blockchain", invalidNetwork.Blockchain),
			failure.WithString("network", invalidNetwork.Network),
		))
	case errors.As(err, &invalidAccount):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidAccount, invalidAccount.Description,
			failure.WithString("address", invalidAccount.Address),
		))
	case errors.As(err, &invalidCurrency):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidCurrency, invalidCurrency.Description,
			failure.WithString("coin_type", invalidCurrency.CoinType),
		))
	case errors.As(err, &invalidBlock):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidBlock, invalidBlock.Description))
	case errors.As(err, &historical):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorHistoricalBalance, historical.Description,
			failure.WithUint64("index", historical.Index),
			failure.WithUint64("latest", historical.Latest),
		))
	case errors.As(err, &unknownBlock):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnknownBlock, unknownBlock.Description,
			failure.WithUint64("index", unknownBlock.Index),
			failure.WithString("hash", unknownBlock.Hash),
		))
	case errors.As(err, &invalidTransaction):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidTransaction, invalidTransaction.Description,
			failure.WithString("hash", invalidTransaction.Hash),
		))
	case errors.As(err, &unknownTransaction):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnknownTransaction, unknownTransaction.Description,
			failure.WithString("hash", unknownTransaction.Hash),
		))
	case errors.As(err, &invalidOperations):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidOperations, invalidOperations.Description))
	case errors.As(err, &unsupportedType):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnsupportedOperationType, unsupportedType.Description,
			failure.WithString("type", unsupportedType.Type),
		))
	case errors.As(err, &unbalanced):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorUnbalancedOperations, unbalanced.Description,
			failure.WithString("coin_type", unbalanced.CoinType),
			failure.WithString("sum", unbalanced.Sum),
		))
	case errors.As(err, &multiSender):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorMultiSenderUnsupported, multiSender.Description,
			failure.WithStrings("senders", multiSender.Senders...),
		))
	case errors.As(err, &insufficient):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInsufficientBalance, insufficient.Description,
			failure.WithString("address", insufficient.Address),
			failure.WithString("coin_type", insufficient.CoinType),
			failure.WithString("have", insufficient.Have),
			failure.WithString("want", insufficient.Want),
		))
	case errors.As(err, &invalidPayload):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidPayload, invalidPayload.Description))
	case errors.As(err, &invalidSignature):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorInvalidSignature, invalidSignature.Description))
	case errors.As(err, &retriable):
		return echo.NewHTTPError(statusServiceUnavailable, rosettaError(configuration.ErrorRetriableRPC, retriable.Description,
			failure.WithString("method", retriable.Method),
		))
	case errors.As(err, &execution):
		return echo.NewHTTPError(statusUnprocessableEntity, rosettaError(configuration.ErrorExecutionFailure, execution.Description,
			failure.WithString("digest", execution.Digest),
		))
	case errors.As(err, &timeout):
		return echo.NewHTTPError(statusServiceUnavailable, rosettaError(configuration.ErrorConfirmationTimeout, timeout.Description,
			failure.WithString("digest", timeout.Digest),
			failure.WithDuration("waited", timeout.Waited),
		))
	case errors.As(err, &unknownOutcome):
		return echo.NewHTTPError(statusServiceUnavailable, rosettaError(configuration.ErrorSubmissionUnknown, unknownOutcome.Description,
			failure.WithString("digest", unknownOutcome.Digest),
		))
	default:
		desc := failure.NewDescription(description, failure.WithErr(err))
		return echo.NewHTTPError(statusInternalServerError, rosettaError(configuration.ErrorInternal, desc))
	}
}
