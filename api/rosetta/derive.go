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
	"crypto/ed25519"
	"encoding/hex"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/identifier"
)

// Derive implements the /construction/derive endpoint of the Rosetta Construction API.
// The address is the Blake2b-256 hash of the Ed25519 scheme flag followed by
// the public key.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionderive
func (c *Construction) Derive(ctx echo.Context) error {

	var req DeriveRequest
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

	key, err := hex.DecodeString(req.PublicKey.HexBytes)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return formatError(errors.New(publicKeyInvalid))
	}

	res := DeriveResponse{
		AccountID: identifier.Account{
			Address: sui.AddressFromPublicKey(ed25519.PublicKey(key)),
		},
	}

	return ctx.JSON(statusOK, res)
}
