package cli

import (
	"codeberg.org/mutker/hwreport/internal/query"
	"github.com/spf13/cobra"
)

func registerFlags(cmd *cobra.Command) {
	defaults := query.DefaultOptions()
	flags := cmd.Flags()

	for _, kind := range query.Priority {
		flags.Bool(kind.String(), false, kind.Usage())
	}
	flags.Bool("celsius", defaults.Unit == query.Celsius, "Report temperatures in Celsius instead of Fahrenheit")

	flags.Float64("percent-interval", defaults.CPU.PercentInterval.Seconds(),
		"CPU percent sampling interval in seconds (0 compares against the previous sample)")
	flags.Bool("percent-percpu", defaults.CPU.PercentPerCPU, "Report CPU percent per logical CPU")
	flags.Bool("logical", defaults.CPU.Logical, "Count logical instead of physical cores")
	flags.Bool("freq-percpu", defaults.CPU.FreqPerCPU, "Report CPU frequency per logical CPU")
	flags.Bool("times-percpu", defaults.CPU.TimesPerCPU, "Report CPU times per logical CPU")
	flags.Float64("times-percent-interval", defaults.CPU.TimesPercentInterval.Seconds(),
		"CPU times percent sampling interval in seconds (0 measures since start)")
	flags.Bool("times-percent-percpu", defaults.CPU.TimesPercentPerCPU, "Report CPU times percent per logical CPU")

	persistent := cmd.PersistentFlags()
	persistent.Bool("debug", false, "Enable debugging mode")
	persistent.Bool("verbose", false, "Enable verbose logging")
	persistent.String("config", "", "Path to the configuration file")
}

// selectedKind resolves the query kind from the query flags that were set.
func selectedKind(cmd *cobra.Command) (query.Kind, bool) {
	return query.Resolve(func(name string) bool {
		set, err := cmd.Flags().GetBool(name)
		return err == nil && set
	})
}
