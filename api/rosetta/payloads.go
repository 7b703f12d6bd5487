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

	"github.com/labstack/echo/v4"

	"github.com/optakt/sui-rosetta/rosetta/object"
)

// Payloads implements the /construction/payloads endpoint of the Rosetta Construction API.
// It compiles the unsigned transaction from the operations and the metadata
// and returns the payload the sender has to sign.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpayloads
func (c *Construction) Payloads(ctx echo.Context) error {

	var req PayloadsRequest
	err := ctx.Bind(&req)
	if err != nil {
		return unpackError(err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return formatError(err)
	}
	if len(req.Metadata.Coins) == 0 {
		return formatError(errors.New(coinsMissing))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return apiError(networkCheck, err)
	}

	intent, err := c.transact.DeriveIntent(req.Operations)
	if err != nil {
		return apiError(intentDetermination, err)
	}

	unsigned, err := c.transact.CompileTransaction(ctx.Request().Context(), intent, &req.Metadata.Selection, &req.Metadata.Metadata)
	if err != nil {
		return apiError(txConstruction, err)
	}

	payload, err := c.transact.SigningPayload(unsigned)
	if err != nil {
		return apiError(payloadConstruction, err)
	}

	res := PayloadsResponse{
		Transaction: unsigned,
		Payloads:    []object.SigningPayload{payload},
	}

	return ctx.JSON(statusOK, res)
}
