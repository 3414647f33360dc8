//go:build linux

package sensors

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/errors"
)

func (p *Provider) readTemperatures(_ context.Context) ([]TemperatureGroup, error) {
	groups := readHwmonTemperatures(p.sysRoot)
	if len(groups) == 0 {
		p.log.Debug().Str("root", p.sysRoot).Msg("No hwmon temperatures, trying thermal zones")
		groups = readThermalZones(p.sysRoot)
	}

	return groups, nil
}

func (p *Provider) readFans(_ context.Context) ([]Fan, error) {
	fans := readHwmonFans(p.sysRoot)
	if len(fans) == 0 {
		return nil, errors.New().New(errors.ErrNoFans)
	}

	return fans, nil
}
