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

package script

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dadrus/tst/internal/tst"
	"github.com/dadrus/tst/internal/x/errorchain"
)

type Trie interface {
	Insert(key string, value int) error
	Lookup(key string) int
	Delete(key string) error
	Destroy()
	Stats() tst.Stats
}

type OperationObserver interface {
	Observe(operation string)
}

type Outcome struct {
	Step int    `json:"step"`
	Op   Kind   `json:"op"`
	Key  string `json:"key"`
	// Value is the inserted value for insertions and the reported one for lookups.
	Value    *int `json:"value,omitempty"`
	Expected *int `json:"expected,omitempty"`
	Passed   bool `json:"passed"`
}

type Report struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Outcomes []Outcome `json:"outcomes"`
	Failures int       `json:"failures"`
	// Stats is taken after the last operation.
	Stats tst.Stats `json:"stats"`
}

type Runner struct {
	l   zerolog.Logger
	obs OperationObserver
}

type RunnerOption func(r *Runner)

func WithOperationObserver(obs OperationObserver) RunnerOption {
	return func(r *Runner) {
		if obs != nil {
			r.obs = obs
		}
	}
}

type noopObserver struct{}

func (noopObserver) Observe(string) {}

func NewRunner(logger zerolog.Logger, opts ...RunnerOption) *Runner {
	runner := &Runner{l: logger, obs: noopObserver{}}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run applies all operations of the script to trie. Expectations are only
// checked for lookups. A failing operation aborts the run, unmet
// expectations are collected and reported once all operations are done.
func (r *Runner) Run(trie Trie, script *Script) (*Report, error) {
	report := &Report{
		ID:       uuid.NewString(),
		Name:     script.Name,
		Outcomes: make([]Outcome, 0, len(script.Operations)),
	}

	logger := r.l.With().Str("_run", report.ID).Str("_script", script.Name).Logger()

	lookups := 0

	for step, op := range script.Operations {
		outcome, err := r.apply(trie, step, op)
		if err != nil {
			report.Stats = trie.Stats()

			return report, errorchain.NewWithMessagef(ErrExecution,
				"step %d (%s %q)", step, op.Op, op.Key).CausedBy(err)
		}

		if op.Op == KindLookup {
			lookups++
		}

		if !outcome.Passed {
			report.Failures++

			logger.Warn().
				Int("_step", step).
				Str("_key", op.Key).
				Int("_expected", *outcome.Expected).
				Int("_actual", *outcome.Value).
				Msg("Lookup reported unexpected value")
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Stats = trie.Stats()

	logger.Debug().
		Int("_operations", len(script.Operations)).
		Int("_failures", report.Failures).
		Msg("Script executed")

	if report.Failures != 0 {
		return report, errorchain.NewWithMessagef(ErrExpectation,
			"%d of %d lookups reported unexpected values", report.Failures, lookups)
	}

	return report, nil
}

func (r *Runner) apply(trie Trie, step int, op Operation) (Outcome, error) {
	outcome := Outcome{Step: step, Op: op.Op, Key: op.Key, Passed: true}

	r.obs.Observe(string(op.Op))

	switch op.Op {
	case KindInsert:
		if err := trie.Insert(op.Key, op.Value); err != nil {
			return outcome, err
		}

		value := op.Value
		outcome.Value = &value
	case KindLookup:
		value := trie.Lookup(op.Key)
		outcome.Value = &value

		if op.Expect != nil {
			expected := *op.Expect
			outcome.Expected = &expected
			outcome.Passed = value == expected
		}
	case KindDelete:
		if err := trie.Delete(op.Key); err != nil {
			return outcome, err
		}
	case KindDestroy:
		trie.Destroy()
	default:
		return outcome, errorchain.NewWithMessagef(ErrScript, "unsupported operation %q", op.Op)
	}

	return outcome, nil
}
