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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register adds the request ID middleware and the routes of the Data and
// Construction APIs to the given server.
func Register(server *echo.Echo, data *Data, construction *Construction) {

	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	server.POST("/network/list", data.Networks)
	server.POST("/network/options", data.Options)
	server.POST("/network/status", data.Status)
	server.POST("/account/balance", data.Balance)
	server.POST("/block", data.Block)
	server.POST("/block/transaction", data.Transaction)

	server.POST("/construction/derive", construction.Derive)
	server.POST("/construction/preprocess", construction.Preprocess)
	server.POST("/construction/metadata", construction.Metadata)
	server.POST("/construction/payloads", construction.Payloads)
	server.POST("/construction/parse", construction.Parse)
	server.POST("/construction/combine", construction.Combine)
	server.POST("/construction/hash", construction.Hash)
	server.POST("/construction/submit", construction.Submit)
}
