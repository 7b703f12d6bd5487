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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelMethod  = "method"
	labelOutcome = "outcome"

	outcomeSuccess   = "success"
	outcomeRejected  = "rejected"
	outcomeTransport = "transport"
)

var (
	requestCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_requests",
		Help: "the number of JSON-RPC requests sent to the ledger node",
	}, []string{labelMethod, labelOutcome})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_request_seconds",
		Help:    "the latency of JSON-RPC requests sent to the ledger node",
		Buckets: prometheus.DefBuckets,
	}, []string{labelMethod})
)
