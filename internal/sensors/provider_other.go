//go:build !linux

package sensors

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/errors"
	"github.com/shirou/gopsutil/v4/sensors"
)

func (p *Provider) readTemperatures(ctx context.Context) ([]TemperatureGroup, error) {
	stats, err := sensors.TemperaturesWithContext(ctx)
	if err != nil && len(stats) == 0 {
		return nil, errors.New().Wrap(errors.ErrProviderFailed, err)
	}

	var groups []TemperatureGroup
	for _, s := range stats {
		r := Temperature{Current: s.Temperature}
		if s.High > 0 {
			high := s.High
			r.High = &high
		}
		if s.Critical > 0 {
			crit := s.Critical
			r.Critical = &crit
		}
		groups = appendReading(groups, s.SensorKey, r)
	}

	return groups, nil
}

func (p *Provider) readFans(_ context.Context) ([]Fan, error) {
	return nil, errors.New().New(errors.ErrProviderUnavailable)
}
