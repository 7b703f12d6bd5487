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
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

// LatestCheckpoint returns the sequence number of the latest executed
// checkpoint.
func (c *Client) LatestCheckpoint(ctx context.Context) (uint64, error) {
	var sequence string
	err := c.read(ctx, "sui_getLatestCheckpointSequenceNumber", &sequence)
	if err != nil {
		return 0, fmt.Errorf("could not get latest checkpoint: %w", err)
	}
	latest, err := strconv.ParseUint(sequence, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse checkpoint sequence number (%s): %w", sequence, err)
	}
	return latest, nil
}

// Checkpoint returns the checkpoint with the given sequence number.
func (c *Client) Checkpoint(ctx context.Context, sequence uint64) (*sui.Checkpoint, error) {
	return c.checkpoint(ctx, strconv.FormatUint(sequence, 10))
}

// CheckpointByDigest returns the checkpoint with the given digest.
func (c *Client) CheckpointByDigest(ctx context.Context, digest string) (*sui.Checkpoint, error) {
	return c.checkpoint(ctx, digest)
}

func (c *Client) checkpoint(ctx context.Context, id string) (*sui.Checkpoint, error) {
	var res checkpointResponse
	err := c.read(ctx, "sui_getCheckpoint", &res, id)
	if err != nil {
		return nil, fmt.Errorf("could not get checkpoint (id: %s): %w", id, err)
	}

	sequence, err := strconv.ParseUint(res.SequenceNumber, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("could not parse checkpoint sequence number (%s): %w", res.SequenceNumber, err)
	}
	timestamp, err := parseTimestamp(res.TimestampMs)
	if err != nil {
		return nil, fmt.Errorf("could not parse checkpoint timestamp: %w", err)
	}

	checkpoint := sui.Checkpoint{
		SequenceNumber: sequence,
		Digest:         res.Digest,
		PreviousDigest: res.PreviousDigest,
		Timestamp:      timestamp,
		Transactions:   res.Transactions,
	}

	return &checkpoint, nil
}

// Transaction returns the execution record of the transaction with the given
// digest, including its balance changes and events.
func (c *Client) Transaction(ctx context.Context, digest string) (*sui.TransactionRecord, error) {

	options := transactionOptions{
		ShowInput:          true,
		ShowEffects:        true,
		ShowEvents:         true,
		ShowBalanceChanges: true,
	}

	var res transactionResponse
	err := c.read(ctx, "sui_getTransactionBlock", &res, digest, options)
	if err != nil {
		return nil, fmt.Errorf("could not get transaction (digest: %s): %w", digest, err)
	}

	record, err := convertTransaction(res)
	if err != nil {
		return nil, fmt.Errorf("could not convert transaction (digest: %s): %w", digest, err)
	}

	return record, nil
}

// Coins returns all coins of the given coin type owned by the given address.
func (c *Client) Coins(ctx context.Context, owner string, coinType string) ([]sui.Coin, error) {

	var coins []sui.Coin
	var cursor *string
	for {
		var page coinPage
		err := c.read(ctx, "suix_getCoins", &page, owner, coinType, cursor, c.cfg.PageSize)
		if err != nil {
			return nil, fmt.Errorf("could not get coins (owner: %s, coin type: %s): %w", owner, coinType, err)
		}

		for _, item := range page.Data {
			version, err := strconv.ParseUint(item.Version, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse coin version (%s): %w", item.Version, err)
			}
			balance, err := parseAmount(item.Balance)
			if err != nil {
				return nil, fmt.Errorf("could not parse coin balance: %w", err)
			}
			coin := sui.Coin{
				CoinType: item.CoinType,
				ObjectID: item.CoinObjectID,
				Version:  version,
				Digest:   item.Digest,
				Balance:  balance,
			}
			coins = append(coins, coin)
		}

		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	return coins, nil
}

// Stakes returns all staked SUI objects of the given owner.
func (c *Client) Stakes(ctx context.Context, owner string) ([]sui.Stake, error) {

	var res []delegatedStake
	err := c.read(ctx, "suix_getStakes", &res, owner)
	if err != nil {
		return nil, fmt.Errorf("could not get stakes (owner: %s): %w", owner, err)
	}

	var stakes []sui.Stake
	for _, delegated := range res {
		for _, item := range delegated.Stakes {
			principal, err := parseAmount(item.Principal)
			if err != nil {
				return nil, fmt.Errorf("could not parse stake principal: %w", err)
			}
			reward := new(big.Int)
			if item.EstimatedReward != "" {
				reward, err = parseAmount(item.EstimatedReward)
				if err != nil {
					return nil, fmt.Errorf("could not parse estimated reward: %w", err)
				}
			}
			stake := sui.Stake{
				StakedSuiID:     item.StakedSuiID,
				Status:          item.Status,
				Principal:       principal,
				EstimatedReward: reward,
			}
			stakes = append(stakes, stake)
		}
	}

	return stakes, nil
}

// CoinMetadata returns the metadata registered for the given coin type.
func (c *Client) CoinMetadata(ctx context.Context, coinType string) (*sui.CoinMetadata, error) {

	var res coinMetadataResponse
	err := c.read(ctx, "suix_getCoinMetadata", &res, coinType)
	if err != nil {
		return nil, fmt.Errorf("could not get coin metadata (coin type: %s): %w", coinType, err)
	}

	metadata := sui.CoinMetadata{
		Symbol:   res.Symbol,
		Decimals: res.Decimals,
		Name:     res.Name,
	}

	return &metadata, nil
}

// ReferenceGasPrice returns the reference gas price of the current epoch.
func (c *Client) ReferenceGasPrice(ctx context.Context) (uint64, error) {
	var price string
	err := c.read(ctx, "suix_getReferenceGasPrice", &price)
	if err != nil {
		return 0, fmt.Errorf("could not get reference gas price: %w", err)
	}
	value, err := strconv.ParseUint(price, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse reference gas price (%s): %w", price, err)
	}
	return value, nil
}

// PaySui builds the transaction data for a transfer of native coins. The gas
// is paid from the first input coin.
func (c *Client) PaySui(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, budget uint64) ([]byte, error) {

	addresses, amounts := splitRecipients(recipients)

	var res transactionBytes
	err := c.read(ctx, "unsafe_paySui", &res, sender, coins, addresses, amounts, strconv.FormatUint(budget, 10))
	if err != nil {
		return nil, fmt.Errorf("could not build pay sui transaction: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(res.TxBytes)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction bytes: %w", err)
	}

	return data, nil
}

// Pay builds the transaction data for a transfer of non-native coins, with gas
// paid from the given native coin.
func (c *Client) Pay(ctx context.Context, sender string, coins []string, recipients []sui.Recipient, gas string, budget uint64) ([]byte, error) {

	addresses, amounts := splitRecipients(recipients)

	var res transactionBytes
	err := c.read(ctx, "unsafe_pay", &res, sender, coins, addresses, amounts, gas, strconv.FormatUint(budget, 10))
	if err != nil {
		return nil, fmt.Errorf("could not build pay transaction: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(res.TxBytes)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction bytes: %w", err)
	}

	return data, nil
}

// Execute submits a signed transaction to the ledger node and returns its
// digest. It is never retried: if the request fails at the transport level,
// the transaction may or may not have been received.
func (c *Client) Execute(ctx context.Context, txBytes []byte, signatures [][]byte) (string, error) {

	encoded := make([]string, 0, len(signatures))
	for _, signature := range signatures {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(signature))
	}

	options := transactionOptions{ShowEffects: true}

	var res executeResponse
	err := c.write(ctx, "sui_executeTransactionBlock", &res,
		base64.StdEncoding.EncodeToString(txBytes),
		encoded,
		options,
		"WaitForEffectsCert",
	)
	if err != nil {
		return "", executeError(sui.TransactionDigest(txBytes), err)
	}

	return res.Digest, nil
}

// executeError separates requests the node rejected before execution from
// failures after which the transaction may have reached the validators.
func executeError(digest string, err error) error {

	var transport failure.RetriableRPC
	if errors.As(err, &transport) {
		return fmt.Errorf("could not execute transaction: %w", err)
	}

	var rejected *RPCError
	if errors.As(err, &rejected) && !executionPending(rejected) {
		return fmt.Errorf("could not execute transaction: %w", err)
	}
	if errors.Is(err, errUnexpectedStatus) {
		return fmt.Errorf("could not execute transaction: %w", err)
	}

	return failure.SubmissionUnknown{
		Digest:      digest,
		Description: failure.NewDescription("execution response does not settle the outcome", failure.WithErr(err)),
	}
}

// executionPending matches quorum driver errors returned after the node has
// forwarded the transaction to the validators.
func executionPending(err *RPCError) bool {
	msg := strings.ToLower(err.Message)
	return strings.Contains(msg, "timed out") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "finality") ||
		strings.Contains(msg, "quorum driver")
}

func convertTransaction(res transactionResponse) (*sui.TransactionRecord, error) {

	record := sui.TransactionRecord{
		Digest: res.Digest,
	}

	if res.Transaction != nil {
		record.Kind = res.Transaction.Data.Transaction.Kind
		record.Sender = res.Transaction.Data.Sender
		record.GasOwner = res.Transaction.Data.GasData.Owner
	}

	if res.Effects != nil {
		gas := res.Effects.GasUsed
		computation, err := parseAmount(gas.ComputationCost)
		if err != nil {
			return nil, fmt.Errorf("could not parse computation cost: %w", err)
		}
		storage, err := parseAmount(gas.StorageCost)
		if err != nil {
			return nil, fmt.Errorf("could not parse storage cost: %w", err)
		}
		rebate, err := parseAmount(gas.StorageRebate)
		if err != nil {
			return nil, fmt.Errorf("could not parse storage rebate: %w", err)
		}
		nonRefundable, err := parseAmount(gas.NonRefundableStorageFee)
		if err != nil {
			return nil, fmt.Errorf("could not parse non-refundable storage fee: %w", err)
		}
		record.Effects = &sui.Effects{
			Status: res.Effects.Status.Status,
			Error:  res.Effects.Status.Error,
			Gas: sui.GasCost{
				Computation:   computation,
				Storage:       storage,
				Rebate:        rebate,
				NonRefundable: nonRefundable,
			},
		}
	}

	for _, change := range res.BalanceChanges {
		owner, ok := addressOwner(change.Owner)
		if !ok {
			continue
		}
		amount, err := parseAmount(change.Amount)
		if err != nil {
			return nil, fmt.Errorf("could not parse balance change amount: %w", err)
		}
		record.BalanceChanges = append(record.BalanceChanges, sui.BalanceChange{
			Owner:    owner,
			CoinType: change.CoinType,
			Amount:   amount,
		})
	}

	for _, event := range res.Events {
		record.Events = append(record.Events, sui.Event{
			Type:   event.Type,
			Sender: event.Sender,
		})
	}

	if res.Checkpoint != "" {
		checkpoint, err := strconv.ParseUint(res.Checkpoint, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse checkpoint (%s): %w", res.Checkpoint, err)
		}
		record.Checkpoint = &checkpoint
	}

	timestamp, err := parseTimestamp(res.TimestampMs)
	if err != nil {
		return nil, fmt.Errorf("could not parse timestamp: %w", err)
	}
	record.Timestamp = timestamp

	return &record, nil
}

// addressOwner extracts the owning address of a balance change. Balances held
// by objects, shared objects or immutable objects have no account.
func addressOwner(raw json.RawMessage) (string, bool) {
	var owner ownerResponse
	err := json.Unmarshal(raw, &owner)
	if err != nil {
		return "", false
	}
	if owner.AddressOwner == "" {
		return "", false
	}
	return owner.AddressOwner, true
}

func splitRecipients(recipients []sui.Recipient) ([]string, []string) {
	addresses := make([]string, 0, len(recipients))
	amounts := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		addresses = append(addresses, recipient.Address)
		amounts = append(amounts, recipient.Amount.String())
	}
	return addresses, amounts
}

func parseAmount(value string) (*big.Int, error) {
	if value == "" {
		return new(big.Int), nil
	}
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer (%s)", value)
	}
	return amount, nil
}

func parseTimestamp(ms string) (time.Time, error) {
	if ms == "" {
		return time.Time{}, nil
	}
	value, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp (%s): %w", ms, err)
	}
	return time.UnixMilli(value).UTC(), nil
}
