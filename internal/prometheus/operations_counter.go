// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package prometheus

import "github.com/prometheus/client_golang/prometheus"

// OperationsCounter counts the operations applied to a trie by kind.
type OperationsCounter struct {
	name    string
	counter *prometheus.CounterVec
}

func NewOperationsCounter(name string) *OperationsCounter {
	return &OperationsCounter{
		name: name,
		counter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tst_operations_total",
				Help: "Number of operations applied to the trie",
			},
			[]string{"trie", "operation"},
		),
	}
}

func (c *OperationsCounter) Observe(operation string) {
	c.counter.WithLabelValues(c.name, operation).Inc()
}

func (c *OperationsCounter) Describe(ch chan<- *prometheus.Desc) { c.counter.Describe(ch) }

func (c *OperationsCounter) Collect(ch chan<- prometheus.Metric) { c.counter.Collect(ch) }
