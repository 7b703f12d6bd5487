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
	"math/big"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
	"github.com/optakt/sui-rosetta/rosetta/transactor"
)

// Metadata implements the /construction/metadata endpoint of the Rosetta Construction API.
// It fetches the reference gas price and selects the coins that fund the
// transfer described by the options. The suggested fee is the gas budget,
// which is the most the transaction can be charged.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionmetadata
func (c *Construction) Metadata(ctx echo.Context) error {

	var req MetadataRequest
	err := ctx.Bind(&req)
	if err != nil {
		return unpackError(err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return formatError(err)
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return apiError(networkCheck, err)
	}

	intent, err := optionsIntent(req.Options)
	if err != nil {
		return apiError(intentDetermination, err)
	}

	metadata, err := c.transact.Metadata(ctx.Request().Context(), intent.Sender)
	if err != nil {
		return apiError(metadataRetrieval, err)
	}

	selection, err := c.transact.SelectCoins(ctx.Request().Context(), intent, metadata)
	if err != nil {
		return apiError(coinSelection, err)
	}

	res := MetadataResponse{
		Metadata: TransactionMetadata{
			Metadata:  *metadata,
			Selection: *selection,
		},
		SuggestedFee: []object.Amount{{
			Value: strconv.FormatUint(metadata.GasBudget, 10),
			Currency: identifier.Currency{
				CoinType: sui.NativeCoinType,
				Symbol:   sui.NativeSymbol,
				Decimals: sui.NativeDecimals,
			},
		}},
	}

	return ctx.JSON(statusOK, res)
}

func optionsIntent(options Options) (*transactor.Intent, error) {

	sender, err := sui.NormalizeAddress(options.Sender)
	if err != nil {
		return nil, failure.InvalidAccount{
			Description: failure.NewDescription("invalid sender address", failure.WithErr(err)),
			Address:     options.Sender,
		}
	}

	intent := transactor.Intent{
		Sender:     sender,
		Currency:   options.Currency,
		Recipients: make([]sui.Recipient, 0, len(options.Recipients)),
	}
	for _, recipient := range options.Recipients {
		address, err := sui.NormalizeAddress(recipient.Address)
		if err != nil {
			return nil, failure.InvalidAccount{
				Description: failure.NewDescription("invalid recipient address", failure.WithErr(err)),
				Address:     recipient.Address,
			}
		}
		amount, ok := new(big.Int).SetString(recipient.Amount, 10)
		if !ok || amount.Sign() <= 0 {
			return nil, failure.InvalidOperations{
				Description: failure.NewDescription(amountInvalid, failure.WithString("amount", recipient.Amount)),
			}
		}
		intent.Recipients = append(intent.Recipients, sui.Recipient{
			Address: address,
			Amount:  amount,
		})
	}

	return &intent, nil
}
