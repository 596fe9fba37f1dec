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
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tst/internal/tst"
)

var errGather = errors.New("gather failed")

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) { return nil, errGather }

func TestSnapshot(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		gatherer func(t *testing.T) prometheus.Gatherer
		assert   func(t *testing.T, err error, result map[string]float64)
	}{
		{
			uc: "gathering fails",
			gatherer: func(t *testing.T) prometheus.Gatherer {
				t.Helper()

				return failingGatherer{}
			},
			assert: func(t *testing.T, err error, result map[string]float64) {
				t.Helper()

				require.ErrorIs(t, err, errGather)
				assert.Nil(t, result)
			},
		},
		{
			uc: "trie metrics only",
			gatherer: func(t *testing.T) prometheus.Gatherer {
				t.Helper()

				trie := tst.New()
				require.NoError(t, trie.Insert("ab", 1))

				counter := NewOperationsCounter("foo")
				counter.Observe("insert")
				counter.Observe("lookup")
				counter.Observe("lookup")

				return NewRegistry(NewTrieCollector("foo", trie), counter)
			},
			assert: func(t *testing.T, err error, result map[string]float64) {
				t.Helper()

				require.NoError(t, err)
				assert.Len(t, result, 5)
				assert.InDelta(t, 1.0, result["tst_keys{trie=foo}"], 0.0001)
				assert.InDelta(t, 3.0, result["tst_nodes{trie=foo}"], 0.0001)
				assert.Positive(t, result["tst_memory_bytes{trie=foo}"])
				assert.InDelta(t, 1.0, result["tst_operations_total{operation=insert,trie=foo}"], 0.0001)
				assert.InDelta(t, 2.0, result["tst_operations_total{operation=lookup,trie=foo}"], 0.0001)
			},
		},
		{
			uc: "metric without labels",
			gatherer: func(t *testing.T) prometheus.Gatherer {
				t.Helper()

				gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "tst_bar"})
				gauge.Set(4)

				reg := prometheus.NewRegistry()
				reg.MustRegister(gauge)

				return reg
			},
			assert: func(t *testing.T, err error, result map[string]float64) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, map[string]float64{"tst_bar": 4}, result)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			result, err := Snapshot(tc.gatherer(t), "tst_")

			// THEN
			tc.assert(t, err, result)
		})
	}
}
