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
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/sui-rosetta/models/submission"
	"github.com/optakt/sui-rosetta/service/journal"
)

var valueSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "journal",
	Name:      "value_bytes",
	Help:      "size of encoded journal values",
	Buckets:   prometheus.ExponentialBuckets(64, 2, 10),
}, []string{"type"})

// Codec records the encoded size of every value it marshals.
type Codec struct {
	journal.Codec
}

func NewCodec(codec journal.Codec) *Codec {
	c := Codec{
		Codec: codec,
	}
	return &c
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	data, err := c.Codec.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("could not marshal value: %w", err)
	}
	name := "unknown"
	switch value.(type) {
	case submission.Entry, *submission.Entry:
		name = "entry"
	case string:
		name = "identifier"
	}
	valueSize.WithLabelValues(name).Observe(float64(len(data)))
	return data, nil
}
