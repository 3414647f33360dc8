//go:build linux

package cpu

import (
	"sort"
	"strconv"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"
)

const kHzPerMHz = 1000

type procStats struct {
	root string
}

func (r procStats) read() (Stats, error) {
	fs, err := r.fs()
	if err != nil {
		return Stats{}, err
	}

	stat, err := fs.Stat()
	if err != nil {
		return Stats{}, err
	}

	// Linux has no global syscall counter.
	return Stats{
		CtxSwitches:    stat.ContextSwitches,
		Interrupts:     stat.IRQTotal,
		SoftInterrupts: stat.SoftIRQTotal,
		Syscalls:       0,
	}, nil
}

func (r procStats) fs() (procfs.FS, error) {
	if r.root == "" {
		return procfs.NewDefaultFS()
	}
	return procfs.NewFS(r.root)
}

type sysfsFrequency struct {
	root string
}

func (r sysfsFrequency) read() ([]Frequency, error) {
	fs, err := r.fs()
	if err != nil {
		return nil, err
	}

	stats, err := fs.SystemCpufreq()
	if err != nil {
		return nil, err
	}

	// procfs drops offline CPUs; CPUs without a cpufreq directory come back
	// as zero entries without a name.
	units := make([]sysfs.SystemCPUCpufreqStats, 0, len(stats))
	for _, s := range stats {
		if s.Name != "" {
			units = append(units, s)
		}
	}
	sort.SliceStable(units, func(i, j int) bool {
		return cpuIndex(units[i].Name) < cpuIndex(units[j].Name)
	})

	freqs := make([]Frequency, 0, len(units))
	for _, s := range units {
		current := s.ScalingCurrentFrequency
		if current == nil {
			current = s.CpuinfoCurrentFrequency
		}
		minimum := s.ScalingMinimumFrequency
		if minimum == nil {
			minimum = s.CpuinfoMinimumFrequency
		}
		maximum := s.ScalingMaximumFrequency
		if maximum == nil {
			maximum = s.CpuinfoMaximumFrequency
		}

		freqs = append(freqs, Frequency{
			Current: kHzToMHz(current),
			Min:     kHzToMHz(minimum),
			Max:     kHzToMHz(maximum),
		})
	}

	return freqs, nil
}

func (r sysfsFrequency) fs() (sysfs.FS, error) {
	if r.root == "" {
		return sysfs.NewDefaultFS()
	}
	return sysfs.NewFS(r.root)
}

func kHzToMHz(v *uint64) float64 {
	if v == nil {
		return 0
	}
	return float64(*v) / kHzPerMHz
}

func cpuIndex(name string) int {
	n, err := strconv.Atoi(name)
	if err != nil {
		return -1
	}
	return n
}
