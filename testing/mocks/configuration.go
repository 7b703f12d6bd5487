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

package mocks

import (
	"testing"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/meta"
)

type Configuration struct {
	NetworkFunc                 func() identifier.Network
	VersionFunc                 func() meta.Version
	OperationsFunc              func() []string
	StatusesFunc                func() []meta.StatusDefinition
	ErrorsFunc                  func() []meta.ErrorDefinition
	HistoricalBalanceLookupFunc func() bool
	CheckFunc                   func(network identifier.Network) error
}

func BaselineConfiguration(t *testing.T) *Configuration {
	t.Helper()

	c := Configuration{
		NetworkFunc: func() identifier.Network {
			return GenericNetwork
		},
		VersionFunc: func() meta.Version {
			return meta.Version{RosettaVersion: "1.4.10", NodeVersion: "1.0.0", MiddlewareVersion: "0.1.0"}
		},
		OperationsFunc: func() []string {
			return []string{"PayCoin"}
		},
		StatusesFunc: func() []meta.StatusDefinition {
			return []meta.StatusDefinition{{Status: "SUCCESS", Successful: true}}
		},
		ErrorsFunc: func() []meta.ErrorDefinition {
			return []meta.ErrorDefinition{{Code: 1, Message: "internal error"}}
		},
		HistoricalBalanceLookupFunc: func() bool {
			return false
		},
		CheckFunc: func(identifier.Network) error {
			return nil
		},
	}

	return &c
}

func (c *Configuration) Network() identifier.Network {
	return c.NetworkFunc()
}

func (c *Configuration) Version() meta.Version {
	return c.VersionFunc()
}

func (c *Configuration) Operations() []string {
	return c.OperationsFunc()
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.StatusesFunc()
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.ErrorsFunc()
}

func (c *Configuration) HistoricalBalanceLookup() bool {
	return c.HistoricalBalanceLookupFunc()
}

func (c *Configuration) Check(network identifier.Network) error {
	return c.CheckFunc(network)
}
