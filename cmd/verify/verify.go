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
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/dadrus/tst/cmd/flags"
	"github.com/dadrus/tst/cmd/output"
	"github.com/dadrus/tst/internal/config"
	"github.com/dadrus/tst/internal/logging"
	"github.com/dadrus/tst/internal/tst"
	"github.com/dadrus/tst/internal/verify"
	"github.com/dadrus/tst/version"
)

type result struct {
	*verify.Report

	// Metrics are gathered before the cleanup.
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// NewVerifyCommand represents the "verify" command.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verifies the trie against a reference map",
		Long: `Applies random insertions and deletions to a trie and to a reference map
and compares the values reported by both. Afterwards all keys are deleted
and the trie is expected to have released all its nodes. The number of
operations, the key alphabet and the seed are taken from the verify
section of the configuration.`,
		Example: "TST_VERIFY_SEED=42 tst verify -o json",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := runVerification(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}
}

func createApp(conf *config.Configuration, logger zerolog.Logger, populate ...any) (*fx.App, error) {
	app := fx.New(
		fx.Supply(conf, logger),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
			return &eventLogger{l: logger}
		}),
		Module,
		fx.Populate(populate...),
	)

	return app, app.Err()
}

func runVerification(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString(flags.Output)

	conf, _, err := flags.LoadConfiguration(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(conf.Log)
	logger.Info().
		Str("_version", version.Version).
		Str("_cli", commandLine(cmd)).
		Str("_config", conf.Source()).
		Msg("Starting verification")

	var (
		verifier *verify.Verifier
		trie     *tst.Synchronized
		snap     *snapshot
	)

	app, err := createApp(conf, logger, &verifier, &trie, &snap)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err = app.Start(ctx); err != nil {
		return err
	}

	report, verifyErr := verifier.Run(ctx, trie)

	res := result{Report: report, Metrics: snap.values}
	err = snap.err

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancel()

	if stopErr := app.Stop(stopCtx); stopErr != nil {
		logger.Warn().Err(stopErr).Msg("Failed to stop")
	}

	if err != nil {
		return err
	}

	if err = output.Write(cmd.OutOrStdout(), format, res, func(out io.Writer) { writeText(out, res) }); err != nil {
		return err
	}

	return verifyErr
}

func commandLine(cmd *cobra.Command) string {
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	return cli.String()
}

func writeText(out io.Writer, res result) {
	fmt.Fprintf(out, "Verification %s (seed %d)\n", res.ID, res.Seed)
	fmt.Fprintf(out, "Trials: %d, Inserts: %d, Deletes: %d, Lookups: %d\n",
		res.Trials, res.Inserts, res.Deletes, res.Lookups)
	fmt.Fprintf(out, "Peak nodes: %d\n", res.PeakNodes)
	fmt.Fprintf(out, "Before cleanup: %d nodes, %d keys, %s\n",
		res.Final.Nodes, res.Final.Keys, bytesize.New(float64(res.Memory)))
	fmt.Fprintf(out, "After cleanup: %d nodes, %d keys\n", res.Residual.Nodes, res.Residual.Keys)

	for _, mismatch := range res.Mismatches {
		fmt.Fprintf(out, "Mismatch at step %d (%s) for %q: expected %d, got %d\n",
			mismatch.Step, mismatch.Phase, mismatch.Key, mismatch.Expected, mismatch.Actual)
	}

	if len(res.Metrics) != 0 {
		fmt.Fprintln(out, "Metrics before cleanup:")
	}

	for _, name := range slices.Sorted(maps.Keys(res.Metrics)) {
		fmt.Fprintf(out, "%s %g\n", name, res.Metrics[name])
	}
}
