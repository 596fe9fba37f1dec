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

package run

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dadrus/tst/cmd/flags"
	"github.com/dadrus/tst/cmd/output"
	"github.com/dadrus/tst/internal/logging"
	"github.com/dadrus/tst/internal/prometheus"
	"github.com/dadrus/tst/internal/script"
	"github.com/dadrus/tst/internal/tst"
)

const substituteEnvFlag = "substitute-env"

var ErrNoScriptFile = errors.New("no script file provided")

type scriptLoader func(decoder *script.Decoder) (*script.Script, error)

type result struct {
	*script.Report

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// NewRunCommand represents the "run" command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script file]",
		Short: "Runs the operations of a script against a new trie",
		Long: `Runs the operations of a script against a new trie. The script is a YAML
or JSON document listing insert, lookup, delete and destroy operations.
Lookups can carry the value they are expected to report. Use - to read
the script from stdin.`,
		Example: "tst run scenario.yaml -o json",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runScript(cmd, fileLoader(cmd, args)); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().Bool(substituteEnvFlag, false,
		"Substitute ${VAR} references in the script with the\nvalues of the corresponding environment variables.")

	return cmd
}

// NewDemoCommand represents the "demo" command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Runs the built-in hello scenario",
		Long: `Runs the built-in scenario: Hello is inserted with 100, looked up, updated
to 500, deleted and the trie is destroyed afterwards.`,
		Example: "tst demo",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runScript(cmd, script.Demo); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func fileLoader(cmd *cobra.Command, args []string) scriptLoader {
	return func(decoder *script.Decoder) (*script.Script, error) {
		if len(args) == 0 {
			return nil, ErrNoScriptFile
		}

		if args[0] == "-" {
			return decoder.Decode(cmd.InOrStdin())
		}

		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}

		defer file.Close()

		return decoder.Decode(file)
	}
}

func runScript(cmd *cobra.Command, load scriptLoader) error {
	format, _ := cmd.Flags().GetString(flags.Output)
	substitute, _ := cmd.Flags().GetBool(substituteEnvFlag)

	conf, validator, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(conf.Log)

	scr, err := load(script.NewDecoder(validator, script.WithEnvVarsSubstitution(substitute)))
	if err != nil {
		return err
	}

	trie := tst.New()
	defer trie.Destroy()

	counter := prometheus.NewOperationsCounter(scr.Name)
	reg := prometheus.NewRegistry(counter)
	runner := script.NewRunner(logger, script.WithOperationObserver(counter))

	report, runErr := runner.Run(trie, scr)

	res := result{Report: report}

	if conf.Metrics.Enabled {
		if res.Metrics, err = prometheus.Snapshot(reg, "tst_"); err != nil {
			return err
		}
	}

	if err = output.Write(cmd.OutOrStdout(), format, res, func(out io.Writer) { writeText(out, res) }); err != nil {
		return err
	}

	return runErr
}

func writeText(out io.Writer, res result) {
	fmt.Fprintf(out, "Script %q (run %s)\n", res.Name, res.ID)

	for _, outcome := range res.Outcomes {
		fmt.Fprintf(out, "%4d  %-7s %-20q", outcome.Step, outcome.Op, outcome.Key)

		switch {
		case outcome.Op == script.KindInsert:
			fmt.Fprintf(out, " %d", *outcome.Value)
		case outcome.Op == script.KindLookup && outcome.Expected == nil:
			fmt.Fprintf(out, " -> %d", *outcome.Value)
		case outcome.Op == script.KindLookup && outcome.Passed:
			fmt.Fprintf(out, " -> %d ok", *outcome.Value)
		case outcome.Op == script.KindLookup:
			fmt.Fprintf(out, " -> %d failed, expected %d", *outcome.Value, *outcome.Expected)
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Nodes: %d, Keys: %d, Failures: %d\n", res.Stats.Nodes, res.Stats.Keys, res.Failures)

	for _, name := range slices.Sorted(maps.Keys(res.Metrics)) {
		fmt.Fprintf(out, "%s %g\n", name, res.Metrics[name])
	}
}
