// Package cli implements the hwreport command line using Cobra.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/logger"
	"codeberg.org/mutker/hwreport/internal/output"
	"codeberg.org/mutker/hwreport/internal/query"
	"codeberg.org/mutker/hwreport/internal/report"
	"github.com/spf13/cobra"
)

// providerFactory builds the providers needed for one query kind.
type providerFactory func(ctx context.Context, kind query.Kind) report.Providers

var rootCmd = newRootCmd(hostProviders)

func newRootCmd(newProviders providerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hwreport [--cpu | --processor | --battery | --fans | --temperature | --gpu | --memory]",
		Short: "Report local hardware telemetry as JSON",
		Long: `hwreport prints one line of JSON describing the selected hardware subsystem.

Exactly one query runs per invocation. When several query flags are given the
first in this order wins: cpu, battery, fans, temperature, gpu, memory,
processor. Without a query flag "Invalid method" is printed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, newProviders)
		},
	}

	registerFlags(cmd)
	cmd.SetFlagErrorFunc(invalidInvocation)

	return cmd
}

// invalidInvocation handles flag values that do not parse. Like a missing
// query flag, they print the invalid method sentinel and exit 0.
func invalidInvocation(cmd *cobra.Command, err error) error {
	logger.Debug().Err(err).Msg("Invalid flag value")

	return output.WriteText(cmd.OutOrStdout(), output.InvalidMethod)
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version
	logger.Init(false, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.ErrorWithCode(appErr).Msg("hwreport failed")
		} else {
			logger.Error().Err(err).Msg("hwreport failed")
		}
		os.Exit(1)
	}
}
