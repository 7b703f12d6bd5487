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

package poller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFinal     = "final"
	outcomeTimeout   = "timeout"
	outcomeCancelled = "cancelled"
	outcomeError     = "error"
)

var (
	awaitOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confirmation_outcomes",
		Help: "the number of confirmation waits by outcome",
	}, []string{"outcome"})

	awaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "confirmation_wait_seconds",
		Help:    "the time spent waiting for transaction finality",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})
)
