// Package query defines the closed set of report kinds and the options that
// parameterize them.
package query

import "time"

// Kind selects the report produced by one invocation.
type Kind int

const (
	KindCPU Kind = iota
	KindBattery
	KindFans
	KindTemperature
	KindGPU
	KindMemory
	KindProcessor
)

// Priority is the dispatch order. When several query flags are given, the
// earliest kind in this list wins regardless of argument position.
var Priority = []Kind{
	KindCPU,
	KindBattery,
	KindFans,
	KindTemperature,
	KindGPU,
	KindMemory,
	KindProcessor,
}

var kindNames = map[Kind]string{
	KindCPU:         "cpu",
	KindBattery:     "battery",
	KindFans:        "fans",
	KindTemperature: "temperature",
	KindGPU:         "gpu",
	KindMemory:      "memory",
	KindProcessor:   "processor",
}

var kindUsage = map[Kind]string{
	KindCPU:         "Report CPU load, core count, frequency, counters and times",
	KindBattery:     "Report battery charge and remaining time",
	KindFans:        "Report fan speeds",
	KindTemperature: "Report temperature sensors (Fahrenheit unless --celsius)",
	KindGPU:         "Report GPU load, memory, temperature and driver",
	KindMemory:      "Report virtual memory and swap usage",
	KindProcessor:   "Report processor identity, caches and instruction-set flags",
}

// String returns the flag name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Usage returns the help text of the kind's flag.
func (k Kind) Usage() string {
	return kindUsage[k]
}

// Resolve returns the highest-priority kind whose flag is set.
func Resolve(isSet func(flag string) bool) (Kind, bool) {
	for _, kind := range Priority {
		if isSet(kind.String()) {
			return kind, true
		}
	}

	return 0, false
}

// Unit is the temperature scale requested from the sensor provider.
type Unit int

const (
	Fahrenheit Unit = iota
	Celsius
)

func (u Unit) String() string {
	if u == Celsius {
		return "celsius"
	}
	return "fahrenheit"
}

// CPUOptions holds the independent CPU sub-options.
type CPUOptions struct {
	PercentInterval      time.Duration
	PercentPerCPU        bool
	Logical              bool
	FreqPerCPU           bool
	TimesPerCPU          bool
	TimesPercentInterval time.Duration
	TimesPercentPerCPU   bool
}

// Options parameterizes a query.
type Options struct {
	CPU  CPUOptions
	Unit Unit
}

// DefaultCPUOptions returns the documented CPU defaults: non-blocking
// aggregate percent, logical core count, per-unit frequency and times.
func DefaultCPUOptions() CPUOptions {
	return CPUOptions{
		PercentInterval:      0,
		PercentPerCPU:        false,
		Logical:              true,
		FreqPerCPU:           true,
		TimesPerCPU:          true,
		TimesPercentInterval: 0,
		TimesPercentPerCPU:   true,
	}
}

// DefaultOptions returns CPU defaults and Fahrenheit.
func DefaultOptions() Options {
	return Options{
		CPU:  DefaultCPUOptions(),
		Unit: Fahrenheit,
	}
}
