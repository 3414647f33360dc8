package report

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/cpu"
	"codeberg.org/mutker/hwreport/internal/field"
	"codeberg.org/mutker/hwreport/internal/query"
)

type cpuReport struct {
	Percent      PerUnit[float64]            `json:"percent"`
	Cores        int                         `json:"cores"`
	Freq         field.OrNull[PerUnit[freq]] `json:"freq"`
	Status       field.OrNull[cpuStatus]     `json:"status"`
	Times        PerUnit[cpuTimes]           `json:"times"`
	TimesPercent PerUnit[cpuTimes]           `json:"times_percent"`
}

type freq struct {
	Current float64 `json:"current"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type cpuStatus struct {
	CtxSwitches    uint64 `json:"ctx_switches"`
	Interrupts     uint64 `json:"interrupts"`
	SoftInterrupts uint64 `json:"soft_interrupts"`
	Syscalls       uint64 `json:"syscalls"`
}

type cpuTimes struct {
	User      float64 `json:"user"`
	System    float64 `json:"system"`
	Idle      float64 `json:"idle"`
	Nice      float64 `json:"nice"`
	Iowait    float64 `json:"iowait"`
	Irq       float64 `json:"irq"`
	Softirq   float64 `json:"softirq"`
	Steal     float64 `json:"steal"`
	Guest     float64 `json:"guest"`
	GuestNice float64 `json:"guest_nice"`
}

// CPU reports load, core count, clocks, counters and mode times. Sampling
// intervals block; a cancelled context aborts the whole report.
func (r *Reporter) CPU(ctx context.Context, opts query.CPUOptions) (any, error) {
	p := r.providers.CPU

	percent, err := p.Percent(ctx, opts.PercentInterval, opts.PercentPerCPU)
	if err != nil {
		return nil, err
	}

	cores, err := p.Counts(ctx, opts.Logical)
	if err != nil {
		return nil, err
	}

	times, err := p.Times(ctx, opts.TimesPerCPU)
	if err != nil {
		return nil, err
	}

	timesPercent, err := p.TimesPercent(ctx, opts.TimesPercentInterval, opts.TimesPercentPerCPU)
	if err != nil {
		return nil, err
	}

	report := cpuReport{
		Percent:      perUnitOf(percent, opts.PercentPerCPU),
		Cores:        cores,
		Times:        perUnitOf(toCPUTimes(times), opts.TimesPerCPU),
		TimesPercent: perUnitOf(toCPUTimes(timesPercent), opts.TimesPercentPerCPU),
	}

	if freqs, err := p.Frequencies(ctx); err == nil && len(freqs) > 0 {
		report.Freq = field.Present(frequencies(freqs, opts.FreqPerCPU))
	} else {
		r.log.Debug().Err(err).Msg("CPU frequency unavailable")
	}

	if stats, err := p.Stats(ctx); err == nil {
		report.Status = field.Present(cpuStatus(stats))
	} else {
		r.log.Debug().Err(err).Msg("CPU counters unavailable")
	}

	return report, nil
}

// frequencies returns per-unit clocks, or their arithmetic mean.
func frequencies(freqs []cpu.Frequency, perCPU bool) PerUnit[freq] {
	out := make([]freq, 0, len(freqs))
	for _, f := range freqs {
		out = append(out, freq(f))
	}
	if perCPU || len(out) == 1 {
		return perUnitOf(out, perCPU)
	}

	var sum freq
	for _, f := range out {
		sum.Current += f.Current
		sum.Min += f.Min
		sum.Max += f.Max
	}
	n := float64(len(out))
	mean := freq{Current: sum.Current / n, Min: sum.Min / n, Max: sum.Max / n}

	return perUnitOf([]freq{mean}, false)
}

func toCPUTimes(times []cpu.Times) []cpuTimes {
	out := make([]cpuTimes, 0, len(times))
	for _, t := range times {
		out = append(out, cpuTimes(t))
	}

	return out
}
