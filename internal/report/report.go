// Package report shapes provider readings into the fixed JSON schema of
// each query kind.
package report

import (
	"context"
	"time"

	"codeberg.org/mutker/hwreport/internal/cpu"
	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/gpu"
	"codeberg.org/mutker/hwreport/internal/logger"
	"codeberg.org/mutker/hwreport/internal/memory"
	"codeberg.org/mutker/hwreport/internal/output"
	"codeberg.org/mutker/hwreport/internal/power"
	"codeberg.org/mutker/hwreport/internal/query"
	"codeberg.org/mutker/hwreport/internal/sensors"
)

// CPUProvider supplies CPU load, counters and identity.
type CPUProvider interface {
	Percent(ctx context.Context, interval time.Duration, perCPU bool) ([]float64, error)
	Counts(ctx context.Context, logical bool) (int, error)
	Frequencies(ctx context.Context) ([]cpu.Frequency, error)
	Stats(ctx context.Context) (cpu.Stats, error)
	Times(ctx context.Context, perCPU bool) ([]cpu.Times, error)
	TimesPercent(ctx context.Context, interval time.Duration, perCPU bool) ([]cpu.Times, error)
	Identity(ctx context.Context) cpu.Identity
}

// MemoryProvider supplies virtual memory and swap usage.
type MemoryProvider interface {
	Virtual(ctx context.Context) (memory.Virtual, error)
	Swap(ctx context.Context) (memory.Swap, error)
}

// SensorProvider supplies temperature and fan sensors.
type SensorProvider interface {
	Temperatures(ctx context.Context, unit query.Unit) ([]sensors.TemperatureGroup, error)
	Fans(ctx context.Context) ([]sensors.Fan, error)
}

// BatteryProvider supplies the battery state.
type BatteryProvider interface {
	Battery(ctx context.Context) (power.Battery, error)
}

// GPUProvider enumerates GPUs.
type GPUProvider interface {
	Devices(ctx context.Context) ([]gpu.Device, error)
}

// Providers groups the providers a Reporter reads from.
type Providers struct {
	CPU     CPUProvider
	Memory  MemoryProvider
	Sensors SensorProvider
	Battery BatteryProvider
	GPU     GPUProvider
}

// Reporter runs one query against its providers.
type Reporter struct {
	providers Providers
	log       logger.Logger
}

func New(providers Providers, log logger.Logger) *Reporter {
	return &Reporter{providers: providers, log: log}
}

// Report runs the query for kind and returns the value to serialize.
// Provider errors are converted to output.ErrorResult, so the result is
// always printable.
func (r *Reporter) Report(ctx context.Context, kind query.Kind, opts query.Options) any {
	var (
		result any
		err    error
	)

	switch kind {
	case query.KindCPU:
		result, err = r.CPU(ctx, opts.CPU)
	case query.KindProcessor:
		result, err = r.Processor(ctx)
	case query.KindBattery:
		result, err = r.Battery(ctx)
	case query.KindFans:
		result, err = r.Fans(ctx)
	case query.KindTemperature:
		result, err = r.Temperature(ctx, opts.Unit)
	case query.KindGPU:
		result, err = r.GPU(ctx)
	case query.KindMemory:
		result, err = r.Memory(ctx)
	default:
		err = errors.New().WithData(errors.ErrInvalidArgument, kind.String())
	}

	if err != nil {
		r.logFailure(kind, err)
		return errorResult(err)
	}

	return result
}

func (r *Reporter) logFailure(kind query.Kind, err error) {
	r.log.Debug().
		Err(err).
		Str("query", kind.String()).
		Str("error_code", string(errors.CodeOf(err))).
		Msg("Query failed")
}

// fixedMessages lists the codes whose ErrorResult text must not carry
// the underlying cause.
var fixedMessages = []errors.ErrorCode{
	errors.ErrNoBattery,
	errors.ErrNoFans,
	errors.ErrNoGPU,
}

func errorResult(err error) output.ErrorResult {
	for _, code := range fixedMessages {
		if errors.HasCode(err, code) {
			return output.ErrorResult{Message: errors.GetErrorMessage(code)}
		}
	}

	return output.NewErrorResult(err)
}
