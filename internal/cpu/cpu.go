// Package cpu reads processor load, topology, frequency, counters and
// identity from the host.
//
// Load and times come from gopsutil, kernel counters and cpufreq from
// procfs/sysfs, identity from CPUID.
package cpu

import (
	"context"
	"time"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/logger"
	gcpu "github.com/shirou/gopsutil/v4/cpu"
)

// Frequency is one processing unit's clock in MHz. Min and Max are zero
// when the platform does not report scaling limits.
type Frequency struct {
	Current float64
	Min     float64
	Max     float64
}

// Stats are kernel counters accumulated since boot.
type Stats struct {
	CtxSwitches    uint64
	Interrupts     uint64
	SoftInterrupts uint64
	Syscalls       uint64
}

// Times are cumulative seconds (or percentages, see TimesPercent) spent in
// each processor mode.
type Times struct {
	User      float64
	System    float64
	Idle      float64
	Nice      float64
	Iowait    float64
	Irq       float64
	Softirq   float64
	Steal     float64
	Guest     float64
	GuestNice float64
}

// Identity describes the processor. Empty strings and non-positive numbers
// mean the value could not be determined.
type Identity struct {
	Brand                  string
	HzAdvertised           int64
	HzActual               int64
	Arch                   string
	Bits                   int
	Count                  int
	VendorID               string
	L1DataCacheSize        int
	L1InstructionCacheSize int
	L2CacheSize            int
	L3CacheSize            int
	Flags                  []string
}

// Provider is the host CPU provider.
type Provider struct {
	log      logger.Logger
	stats    statsReader
	freq     frequencyReader
	identity identityReader

	baseline       []Times
	baselinePerCPU []Times
}

// New creates a provider and records the times baseline used by
// zero-interval TimesPercent calls.
func New(ctx context.Context, log logger.Logger) *Provider {
	p := &Provider{
		log:      log,
		stats:    procStats{},
		freq:     sysfsFrequency{},
		identity: cpuidIdentity{},
	}
	p.baseline, _ = p.Times(ctx, false)
	p.baselinePerCPU, _ = p.Times(ctx, true)

	return p
}

// Percent returns utilization in percent, one value per logical CPU when
// perCPU is set. A zero interval compares against the previous call or
// process start; a positive interval blocks for that long.
func (p *Provider) Percent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
	percent, err := gcpu.PercentWithContext(ctx, interval, perCPU)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.New().Wrap(errors.ErrCancelled, ctx.Err())
		}
		return nil, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	return percent, nil
}

// Counts returns the number of logical or physical cores.
func (p *Provider) Counts(ctx context.Context, logical bool) (int, error) {
	count, err := gcpu.CountsWithContext(ctx, logical)
	if err != nil {
		return 0, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	return count, nil
}

// Frequencies returns the clock of every processing unit. When cpufreq is
// not exposed, the current speed from the processor table is used with
// zero limits.
func (p *Provider) Frequencies(ctx context.Context) ([]Frequency, error) {
	freqs, err := p.freq.read()
	if err == nil && len(freqs) > 0 {
		return freqs, nil
	}
	if err != nil {
		p.log.Debug().Err(err).Msg("cpufreq unavailable, falling back to cpu info")
	}

	infos, err := gcpu.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	freqs = make([]Frequency, 0, len(infos))
	for _, info := range infos {
		freqs = append(freqs, Frequency{Current: info.Mhz})
	}

	return freqs, nil
}

// Stats returns context switch, interrupt and syscall counters.
func (p *Provider) Stats(_ context.Context) (Stats, error) {
	stats, err := p.stats.read()
	if err != nil {
		return Stats{}, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	return stats, nil
}

// Times returns cumulative mode times, one entry per logical CPU when
// perCPU is set and a single aggregate entry otherwise.
func (p *Provider) Times(ctx context.Context, perCPU bool) ([]Times, error) {
	stats, err := gcpu.TimesWithContext(ctx, perCPU)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	times := make([]Times, 0, len(stats))
	for _, s := range stats {
		times = append(times, fromTimesStat(s))
	}

	return times, nil
}

// TimesPercent returns the share of elapsed time spent in each mode. With a
// zero interval the window starts at provider creation.
func (p *Provider) TimesPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]Times, error) {
	before := p.baseline
	if perCPU {
		before = p.baselinePerCPU
	}

	if interval > 0 {
		var err error
		if before, err = p.Times(ctx, perCPU); err != nil {
			return nil, err
		}
		if err := sleep(ctx, interval); err != nil {
			return nil, err
		}
	}

	after, err := p.Times(ctx, perCPU)
	if err != nil {
		return nil, err
	}

	result := make([]Times, len(after))
	for i := range after {
		var prev Times
		if i < len(before) {
			prev = before[i]
		}
		result[i] = timesPercent(prev, after[i])
	}

	return result, nil
}

// Identity returns processor identification. It never fails; unknown fields
// are left zero.
func (p *Provider) Identity(ctx context.Context) Identity {
	id := p.identity.read()

	if infos, err := gcpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		if infos[0].Mhz > 0 {
			id.HzActual = int64(infos[0].Mhz * 1e6)
		}
		if id.Brand == "" {
			id.Brand = infos[0].ModelName
		}
		if id.VendorID == "" {
			id.VendorID = infos[0].VendorID
		}
	} else if err != nil {
		p.log.Debug().Err(err).Msg("cpu info unavailable")
	}

	return id
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.New().Wrap(errors.ErrCancelled, ctx.Err())
	case <-timer.C:
		return nil
	}
}

func fromTimesStat(s gcpu.TimesStat) Times {
	return Times{
		User:      s.User,
		System:    s.System,
		Idle:      s.Idle,
		Nice:      s.Nice,
		Iowait:    s.Iowait,
		Irq:       s.Irq,
		Softirq:   s.Softirq,
		Steal:     s.Steal,
		Guest:     s.Guest,
		GuestNice: s.GuestNice,
	}
}

// total excludes guest time, which the kernel already counts in user and nice.
func (t Times) total() float64 {
	return t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
}

func timesPercent(before, after Times) Times {
	elapsed := after.total() - before.total()
	if elapsed <= 0 {
		return Times{}
	}

	pct := func(a, b float64) float64 {
		v := (a - b) / elapsed * 100
		if v < 0 {
			return 0
		}
		return round1(min(v, 100))
	}

	return Times{
		User:      pct(after.User, before.User),
		System:    pct(after.System, before.System),
		Idle:      pct(after.Idle, before.Idle),
		Nice:      pct(after.Nice, before.Nice),
		Iowait:    pct(after.Iowait, before.Iowait),
		Irq:       pct(after.Irq, before.Irq),
		Softirq:   pct(after.Softirq, before.Softirq),
		Steal:     pct(after.Steal, before.Steal),
		Guest:     pct(after.Guest, before.Guest),
		GuestNice: pct(after.GuestNice, before.GuestNice),
	}
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}
