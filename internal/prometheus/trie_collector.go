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

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dadrus/tst/internal/tst"
)

type StatsSource interface {
	Stats() tst.Stats
	Footprint() int
}

type trieCollector struct {
	name   string
	source StatsSource
	nodes  *prometheus.Desc
	keys   *prometheus.Desc
	memory *prometheus.Desc
}

// NewTrieCollector exports the node and key count as well as the memory
// taken by a trie. All values are computed by walking the trie on every scrape.
func NewTrieCollector(name string, source StatsSource) prometheus.Collector {
	return &trieCollector{
		name:   name,
		source: source,
		nodes: prometheus.NewDesc(
			"tst_nodes",
			"Number of nodes allocated by the trie",
			[]string{"trie"},
			nil,
		),
		keys: prometheus.NewDesc(
			"tst_keys",
			"Number of keys stored in the trie",
			[]string{"trie"},
			nil,
		),
		memory: prometheus.NewDesc(
			"tst_memory_bytes",
			"Approximate memory taken by the trie in bytes",
			[]string{"trie"},
			nil,
		),
	}
}

func (c *trieCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.keys
	ch <- c.memory
}

func (c *trieCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(stats.Nodes), c.name)
	ch <- prometheus.MustNewConstMetric(c.keys, prometheus.GaugeValue, float64(stats.Keys), c.name)
	ch <- prometheus.MustNewConstMetric(c.memory, prometheus.GaugeValue, float64(c.source.Footprint()), c.name)
}
