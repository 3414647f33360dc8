package cli

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/config"
	"codeberg.org/mutker/hwreport/internal/cpu"
	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/gpu"
	"codeberg.org/mutker/hwreport/internal/logger"
	"codeberg.org/mutker/hwreport/internal/memory"
	"codeberg.org/mutker/hwreport/internal/output"
	"codeberg.org/mutker/hwreport/internal/power"
	"codeberg.org/mutker/hwreport/internal/query"
	"codeberg.org/mutker/hwreport/internal/report"
	"codeberg.org/mutker/hwreport/internal/sensors"
	"github.com/spf13/cobra"
)

// hostProviders wires the real providers. The CPU provider samples a times
// baseline on creation, so it is only built for the queries that read it.
func hostProviders(ctx context.Context, kind query.Kind) report.Providers {
	log := logger.Default()

	p := report.Providers{
		Memory:  memory.New(),
		Sensors: sensors.New(log),
		Battery: power.New(log),
		GPU:     gpu.New(log),
	}
	if kind == query.KindCPU || kind == query.KindProcessor {
		p.CPU = cpu.New(ctx, log)
	}

	return p
}

func run(cmd *cobra.Command, newProviders providerFactory) error {
	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")
	verbose, _ := flags.GetBool("verbose")
	logger.InitWithWriter(cmd.ErrOrStderr(), debug, verbose)

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	logger.InitWithWriter(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbose)
	logger.Debug().Msg("Config loaded")

	stdout := cmd.OutOrStdout()

	kind, ok := selectedKind(cmd)
	if !ok {
		logger.Debug().Strs("args", flags.Args()).Msg("No query flag given")
		return output.WriteText(stdout, output.InvalidMethod)
	}
	logger.Info().Str("query", kind.String()).Msg("Running query")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := cfg.Options()
	if celsius, _ := flags.GetBool("celsius"); celsius {
		opts.Unit = query.Celsius
	}

	reporter := report.New(newProviders(ctx, kind), logger.Default())
	result := reporter.Report(ctx, kind, opts)

	err = output.Write(stdout, result)
	if errors.HasCode(err, errors.ErrEncodeOutput) {
		logger.Warn().Err(err).Str("query", kind.String()).Msg("Report could not be encoded")
		return output.Write(stdout, output.NewErrorResult(err))
	}

	return err
}
