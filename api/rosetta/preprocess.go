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
	"github.com/labstack/echo/v4"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Preprocess implements the /construction/preprocess endpoint of the Rosetta Construction API.
// It derives the transfer intent from the operations and hands it on as the
// options for the metadata endpoint. The sender is the only required signer.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpreprocess
func (c *Construction) Preprocess(ctx echo.Context) error {

	var req PreprocessRequest
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

	intent, err := c.transact.DeriveIntent(req.Operations)
	if err != nil {
		return apiError(intentDetermination, err)
	}

	options := Options{
		Sender:     intent.Sender,
		Currency:   intent.Currency,
		Recipients: make([]Recipient, 0, len(intent.Recipients)),
	}
	for _, recipient := range intent.Recipients {
		options.Recipients = append(options.Recipients, Recipient{
			Address: recipient.Address,
			Amount:  recipient.Amount.String(),
		})
	}

	res := PreprocessResponse{
		Options:            options,
		RequiredPublicKeys: []identifier.Account{{Address: intent.Sender}},
	}

	return ctx.JSON(statusOK, res)
}
