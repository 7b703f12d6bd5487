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

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/sui-rosetta/models/submission"
)

var journalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "journal",
	Name:      "operation_seconds",
	Help:      "duration of journal operations",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation"})

var journalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "journal",
	Name:      "transitions_total",
	Help:      "number of recorded transaction states",
}, []string{"state"})

// Recorder is the part of the journal that is instrumented.
type Recorder interface {
	Record(entry submission.Entry) error
	Entry(txID string) (*submission.Entry, error)
}

// Journal times the operations of the wrapped journal and counts the
// recorded states.
type Journal struct {
	journal Recorder
}

func NewJournal(journal Recorder) *Journal {
	j := Journal{
		journal: journal,
	}
	return &j
}

func (j *Journal) Record(entry submission.Entry) error {
	defer duration("record")()
	err := j.journal.Record(entry)
	if err != nil {
		return err
	}
	journalTransitions.WithLabelValues(string(entry.State)).Inc()
	return nil
}

func (j *Journal) Entry(txID string) (*submission.Entry, error) {
	defer duration("entry")()
	return j.journal.Entry(txID)
}

func duration(operation string) func() {
	start := time.Now()
	return func() {
		journalDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
