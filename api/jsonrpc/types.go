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

package jsonrpc

import (
	"encoding/json"
	"fmt"
)

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is an error returned by the ledger node for a well-formed request.
// It means the node understood and rejected the request.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (r *RPCError) Error() string {
	return fmt.Sprintf("ledger node rejected request (code: %d): %s", r.Code, r.Message)
}

type checkpointResponse struct {
	SequenceNumber string   `json:"sequenceNumber"`
	Digest         string   `json:"digest"`
	PreviousDigest string   `json:"previousDigest"`
	TimestampMs    string   `json:"timestampMs"`
	Transactions   []string `json:"transactions"`
}

type transactionResponse struct {
	Digest         string                  `json:"digest"`
	Transaction    *transactionEnvelope    `json:"transaction"`
	Effects        *effectsResponse        `json:"effects"`
	Events         []eventResponse         `json:"events"`
	BalanceChanges []balanceChangeResponse `json:"balanceChanges"`
	TimestampMs    string                  `json:"timestampMs"`
	Checkpoint     string                  `json:"checkpoint"`
}

type transactionEnvelope struct {
	Data struct {
		Transaction struct {
			Kind string `json:"kind"`
		} `json:"transaction"`
		Sender  string `json:"sender"`
		GasData struct {
			Owner  string `json:"owner"`
			Price  string `json:"price"`
			Budget string `json:"budget"`
		} `json:"gasData"`
	} `json:"data"`
}

type effectsResponse struct {
	Status struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	} `json:"status"`
	GasUsed struct {
		ComputationCost         string `json:"computationCost"`
		StorageCost             string `json:"storageCost"`
		StorageRebate           string `json:"storageRebate"`
		NonRefundableStorageFee string `json:"nonRefundableStorageFee"`
	} `json:"gasUsed"`
}

type eventResponse struct {
	Type   string `json:"type"`
	Sender string `json:"sender"`
}

type balanceChangeResponse struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   string          `json:"amount"`
}

type ownerResponse struct {
	AddressOwner string `json:"AddressOwner"`
}

type coinPage struct {
	Data []struct {
		CoinType     string `json:"coinType"`
		CoinObjectID string `json:"coinObjectId"`
		Version      string `json:"version"`
		Digest       string `json:"digest"`
		Balance      string `json:"balance"`
	} `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type delegatedStake struct {
	ValidatorAddress string `json:"validatorAddress"`
	Stakes           []struct {
		StakedSuiID     string `json:"stakedSuiId"`
		Principal       string `json:"principal"`
		Status          string `json:"status"`
		EstimatedReward string `json:"estimatedReward"`
	} `json:"stakes"`
}

type coinMetadataResponse struct {
	Decimals uint   `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
}

type transactionBytes struct {
	TxBytes string `json:"txBytes"`
}

type executeResponse struct {
	Digest string `json:"digest"`
}

type transactionOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowEvents         bool `json:"showEvents"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}
