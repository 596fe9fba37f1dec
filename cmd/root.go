package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dadrus/tst/cmd/flags"
	"github.com/dadrus/tst/version"
)

// nolint: gochecknoglobals
var (
	// RootCmd represents the base command when called without any subcommands.
	RootCmd = &cobra.Command{
		Use:   "tst",
		Short: "A ternary search trie mapping strings to integers",
		Long: `tst stores integer values under arbitrary byte string keys in a ternary
search trie. It can replay operation scripts against a trie and verify the
trie against a reference map using randomized operations.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// nolint: gochecknoinits
func init() {
	flags.RegisterGlobalFlags(RootCmd)
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		RootCmd.PrintErrln(err)
		cancel()
		os.Exit(-1)
	}
}
