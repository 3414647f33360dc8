package report

import (
	"context"
	"fmt"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/field"
	"codeberg.org/mutker/hwreport/internal/output"
	"codeberg.org/mutker/hwreport/internal/query"
)

type temperatureReading struct {
	Label    string                `json:"label"`
	Current  float64               `json:"current"`
	High     field.OrNull[float64] `json:"high"`
	Critical field.OrNull[float64] `json:"critical"`
}

// Fans reports fan speeds keyed by sensor label, or "Fan N" for unlabeled
// fans. Any provider failure, or no fans at all, is reported as
// ErrNoFans.
func (r *Reporter) Fans(ctx context.Context) (any, error) {
	fans, err := r.providers.Sensors.Fans(ctx)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrNoFans, err)
	}
	if len(fans) == 0 {
		return nil, errors.New().New(errors.ErrNoFans)
	}

	result := output.NewOrderedMap[field.OrUnknown[int]]()
	for i, fan := range fans {
		name := fan.Name
		if name == "" {
			name = fmt.Sprintf("Fan %d", i+1)
		}
		result.Set(name, orUnknownPtr(fan.Current))
	}

	return result, nil
}

// Temperature reports sensor groups in the requested unit. Conversion
// happens in the provider.
func (r *Reporter) Temperature(ctx context.Context, unit query.Unit) (any, error) {
	groups, err := r.providers.Sensors.Temperatures(ctx, unit)
	if err != nil {
		return nil, err
	}

	result := output.NewOrderedMap[[]temperatureReading]()
	for _, g := range groups {
		readings := make([]temperatureReading, 0, len(g.Readings))
		for _, t := range g.Readings {
			readings = append(readings, temperatureReading{
				Label:    t.Label,
				Current:  t.Current,
				High:     field.FromPtr(t.High),
				Critical: field.FromPtr(t.Critical),
			})
		}
		if existing, ok := result.Get(g.Name); ok {
			readings = append(existing, readings...)
		}
		result.Set(g.Name, readings)
	}

	return result, nil
}

func orUnknownPtr[T any](p *T) field.OrUnknown[T] {
	if p == nil {
		return field.OrUnknown[T]{}
	}

	return field.Known(*p)
}
