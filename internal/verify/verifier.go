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

// Package verify applies random insertions, deletions and lookups to a trie
// and to a map in parallel and reports every divergence between the two.
package verify

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/tst/internal/config"
	"github.com/dadrus/tst/internal/tst"
	"github.com/dadrus/tst/internal/x/errorchain"
)

var (
	ErrMismatch = errors.New("trie diverged from reference")
	ErrLeak     = errors.New("nodes left behind")
	ErrMemory   = errors.New("memory budget exceeded")
	ErrAborted  = errors.New("verification aborted")
)

type Trie interface {
	Insert(key string, value int) error
	Lookup(key string) int
	Delete(key string) error
	Stats() tst.Stats
	Footprint() int
}

type OperationObserver interface {
	Observe(operation string)
}

type Mismatch struct {
	Step     int    `json:"step"`
	Phase    string `json:"phase"`
	Key      string `json:"key"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
}

type Report struct {
	ID        string    `json:"id"`
	Seed      uint64    `json:"seed"`
	Trials    int       `json:"trials"`
	Inserts   int       `json:"inserts"`
	Deletes   int       `json:"deletes"`
	Lookups   int       `json:"lookups"`
	PeakNodes int       `json:"peak_nodes"`
	Final     tst.Stats `json:"final"`
	// Memory is the size of the trie before the cleanup.
	Memory     int        `json:"memory_bytes"`
	Residual   tst.Stats  `json:"residual"`
	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

type Verifier struct {
	conf   config.VerifyConfig
	l      zerolog.Logger
	obs    OperationObserver
	filled func()
}

type Option func(v *Verifier)

func WithOperationObserver(obs OperationObserver) Option {
	return func(v *Verifier) {
		if obs != nil {
			v.obs = obs
		}
	}
}

// WithFilledHook registers fn to be called once all random operations are
// done and compared, right before the trie is emptied.
func WithFilledHook(fn func()) Option {
	return func(v *Verifier) {
		if fn != nil {
			v.filled = fn
		}
	}
}

type noopObserver struct{}

func (noopObserver) Observe(string) {}

func NewVerifier(conf config.VerifyConfig, logger zerolog.Logger, opts ...Option) *Verifier {
	verifier := &Verifier{conf: conf, l: logger, obs: noopObserver{}, filled: func() {}}

	for _, opt := range opts {
		opt(verifier)
	}

	return verifier
}

// Run executes the configured number of random operations. Once done, all
// remaining keys are compared, then deleted, and the trie is expected to
// have shrunk to at most its root.
func (v *Verifier) Run(ctx context.Context, trie Trie) (*Report, error) {
	seed := v.conf.Seed
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec
	}

	run := &session{
		conf:     v.conf,
		trie:     trie,
		obs:      v.obs,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1|1)), //nolint:gosec
		expected: make(map[string]int),
		index:    make(map[string]int),
		deleted:  make(map[string]struct{}),
		report: &Report{
			ID:     uuid.NewString(),
			Seed:   seed,
			Trials: v.conf.Trials,
		},
	}

	logger := v.l.With().Str("_run", run.report.ID).Uint64("_seed", seed).Logger()
	logger.Debug().Int("_trials", v.conf.Trials).Msg("Starting verification")

	for step := range v.conf.Trials {
		if err := ctx.Err(); err != nil {
			return run.report, errorchain.NewWithMessagef(ErrAborted,
				"interrupted after %d steps", step).CausedBy(err)
		}

		if err := run.step(step); err != nil {
			return run.report, err
		}
	}

	run.compareAll()
	run.report.Final = trie.Stats()
	run.report.Memory = trie.Footprint()

	v.filled()

	if err := run.drain(); err != nil {
		return run.report, err
	}

	run.report.Residual = trie.Stats()

	logger.Debug().
		Int("_keys", run.report.Final.Keys).
		Int("_peak_nodes", run.report.PeakNodes).
		Int("_mismatches", len(run.report.Mismatches)).
		Msg("Verification finished")

	if len(run.report.Mismatches) != 0 {
		return run.report, errorchain.NewWithMessagef(ErrMismatch,
			"%d lookups disagreed with the reference map", len(run.report.Mismatches))
	}

	if v.conf.MaxMemory > 0 && float64(run.report.Memory) > float64(v.conf.MaxMemory) {
		return run.report, errorchain.NewWithMessagef(ErrMemory, "trie took %s, only %s are allowed",
			bytesize.New(float64(run.report.Memory)), v.conf.MaxMemory)
	}

	if run.report.Residual.Nodes > 1 || run.report.Residual.Keys != 0 {
		return run.report, errorchain.NewWithMessagef(ErrLeak,
			"%d nodes remain after deleting all keys", run.report.Residual.Nodes)
	}

	return run.report, nil
}

type session struct {
	conf config.VerifyConfig
	trie Trie
	obs  OperationObserver
	rnd  *rand.Rand

	// expected is the reference mapping
	expected map[string]int
	// keys and index allow picking a random live key in constant time
	keys  []string
	index map[string]int
	// deleted holds removed keys, which have not been inserted again
	deleted map[string]struct{}

	report *Report
}

// step deletes a key with the configured probability and inserts a random
// key afterwards. Deleted keys are either live ones or random ones.
func (s *session) step(step int) error {
	if s.rnd.Float64() < s.conf.DeleteRatio {
		key := s.randomKey()
		if len(s.keys) != 0 {
			key = s.keys[s.rnd.IntN(len(s.keys))]
		}

		s.obs.Observe("delete")
		s.report.Deletes++

		if err := s.trie.Delete(key); err != nil {
			return errorchain.NewWithMessagef(ErrAborted, "deletion of %q failed", key).CausedBy(err)
		}

		s.forget(key)
		s.check(step, "random", key)
	}

	key := s.randomKey()
	value := s.rnd.IntN(s.conf.MaxValue)

	s.obs.Observe("insert")
	s.report.Inserts++

	if err := s.trie.Insert(key, value); err != nil {
		return errorchain.NewWithMessagef(ErrAborted, "insertion of %q failed", key).CausedBy(err)
	}

	s.remember(key, value)

	s.report.PeakNodes = max(s.report.PeakNodes, s.trie.Stats().Nodes)
	s.check(step, "random", key)

	return nil
}

func (s *session) randomKey() string {
	buf := make([]byte, s.rnd.IntN(s.conf.MaxKeyLength+1))
	for idx := range buf {
		buf[idx] = s.conf.Alphabet[s.rnd.IntN(len(s.conf.Alphabet))]
	}

	return string(buf)
}

func (s *session) remember(key string, value int) {
	if _, ok := s.index[key]; !ok {
		s.index[key] = len(s.keys)
		s.keys = append(s.keys, key)
	}

	s.expected[key] = value
	delete(s.deleted, key)
}

func (s *session) forget(key string) {
	if idx, ok := s.index[key]; ok {
		last := s.keys[len(s.keys)-1]
		s.keys[idx] = last
		s.index[last] = idx
		s.keys = s.keys[:len(s.keys)-1]

		delete(s.index, key)
	}

	delete(s.expected, key)
	s.deleted[key] = struct{}{}
}

func (s *session) check(step int, phase, key string) {
	expected, ok := s.expected[key]
	if !ok {
		expected = tst.Absent
	}

	s.obs.Observe("lookup")
	s.report.Lookups++

	if actual := s.trie.Lookup(key); actual != expected {
		s.report.Mismatches = append(s.report.Mismatches, Mismatch{
			Step:     step,
			Phase:    phase,
			Key:      key,
			Expected: expected,
			Actual:   actual,
		})
	}
}

func (s *session) compareAll() {
	for _, key := range s.keys {
		s.check(s.conf.Trials, "final", key)
	}

	for key := range s.deleted {
		s.check(s.conf.Trials, "final", key)
	}
}

func (s *session) drain() error {
	for len(s.keys) != 0 {
		key := s.keys[len(s.keys)-1]

		s.obs.Observe("delete")
		s.report.Deletes++

		if err := s.trie.Delete(key); err != nil {
			return errorchain.NewWithMessagef(ErrAborted, "deletion of %q failed", key).CausedBy(err)
		}

		s.forget(key)
		s.check(s.conf.Trials, "drain", key)
	}

	return nil
}
