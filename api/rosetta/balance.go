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
)

// Balance implements the /account/balance endpoint of the Rosetta Data API.
// Balances are returned in the order of the requested currencies, at the
// checkpoint the lookup was done against.
// See https://www.rosetta-api.org/docs/AccountApi.html#accountbalance
func (d *Data) Balance(ctx echo.Context) error {

	var req BalanceRequest
	err := ctx.Bind(&req)
	if err != nil {
		return unpackError(err)
	}

	err = d.validate.Request(req)
	if err != nil {
		return formatError(err)
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return apiError(networkCheck, err)
	}

	blockID, balances, err := d.retrieve.Balances(ctx.Request().Context(), req.BlockID, req.AccountID, req.Currencies)
	if err != nil {
		return apiError(balancesRetrieval, err)
	}

	res := BalanceResponse{
		BlockID:  blockID,
		Balances: balances,
	}

	return ctx.JSON(statusOK, res)
}
