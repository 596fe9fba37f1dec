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

package verify

import (
	"context"

	stdprom "github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/tst/internal/config"
	"github.com/dadrus/tst/internal/prometheus"
	"github.com/dadrus/tst/internal/tst"
	"github.com/dadrus/tst/internal/verify"
)

const trieName = "verify"

// nolint: gochecknoglobals
var Module = fx.Module(
	"verify",
	fx.Provide(
		newTrie,
		newOperationsCounter,
		newRegistry,
		newSnapshot,
		newVerifier,
	),
)

func newTrie(lifecycle fx.Lifecycle, logger zerolog.Logger) *tst.Synchronized {
	trie := tst.NewSynchronized()

	lifecycle.Append(
		fx.Hook{
			OnStop: func(_ context.Context) error {
				stats := trie.Stats()

				logger.Debug().
					Int("_nodes", stats.Nodes).
					Int("_keys", stats.Keys).
					Msg("Releasing trie")
				trie.Destroy()

				return nil
			},
		},
	)

	return trie
}

func newOperationsCounter() *prometheus.OperationsCounter {
	return prometheus.NewOperationsCounter(trieName)
}

func newRegistry(
	conf *config.Configuration,
	trie *tst.Synchronized,
	counter *prometheus.OperationsCounter,
) *stdprom.Registry {
	if !conf.Metrics.Enabled {
		return stdprom.NewRegistry()
	}

	return prometheus.NewRegistry(prometheus.NewTrieCollector(trieName, trie), counter)
}

// snapshot holds the metrics gathered while the trie still holds all keys.
type snapshot struct {
	values map[string]float64
	err    error
}

func newSnapshot() *snapshot { return &snapshot{} }

func newVerifier(
	conf *config.Configuration,
	logger zerolog.Logger,
	counter *prometheus.OperationsCounter,
	registry *stdprom.Registry,
	snap *snapshot,
) *verify.Verifier {
	opts := []verify.Option{verify.WithOperationObserver(counter)}

	if conf.Metrics.Enabled {
		opts = append(opts, verify.WithFilledHook(func() {
			snap.values, snap.err = prometheus.Snapshot(registry, "tst_")
		}))
	}

	return verify.NewVerifier(conf.Verify, logger, opts...)
}
