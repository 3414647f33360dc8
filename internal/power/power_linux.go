//go:build linux

package power

import (
	"context"
	"sort"
	"strings"

	"codeberg.org/mutker/hwreport/internal/errors"
	"github.com/prometheus/procfs/sysfs"
)

func (p *Provider) readBattery(_ context.Context) (Battery, error) {
	errFactory := errors.New()

	fs, err := sysfs.NewFS(p.sysRoot)
	if err != nil {
		return Battery{}, errFactory.Wrap(errors.ErrProviderUnavailable, err)
	}

	supplies, err := fs.PowerSupplyClass()
	if err != nil {
		p.log.Debug().Err(err).Msg("Failed to read power supply class")
		return Battery{}, errFactory.Wrap(errors.ErrNoBattery, err)
	}

	bat, ok := firstBattery(supplies)
	if !ok {
		return Battery{}, errFactory.New(errors.ErrNoBattery)
	}

	percent, ok := batteryPercent(bat)
	if !ok {
		return Battery{}, errFactory.WithData(errors.ErrNoBattery, bat.Name)
	}

	plugged := powerPlugged(supplies, bat)
	p.log.Debug().
		Str("supply", bat.Name).
		Str("status", bat.Status).
		Bool("plugged", plugged).
		Msg("Read battery")

	return Battery{
		Percent:      percent,
		PowerPlugged: plugged,
		SecsLeft:     secsLeft(bat, plugged),
	}, nil
}

// firstBattery picks the battery with the lowest name, e.g. BAT0 before BAT1.
func firstBattery(supplies sysfs.PowerSupplyClass) (sysfs.PowerSupply, bool) {
	var names []string
	for name, ps := range supplies {
		if strings.EqualFold(ps.Type, "Battery") ||
			strings.HasPrefix(name, "BAT") ||
			strings.Contains(strings.ToLower(name), "battery") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return sysfs.PowerSupply{}, false
	}
	sort.Strings(names)

	return supplies[names[0]], true
}

// batteryPercent prefers the energy (or charge) ratio and falls back to
// the capacity attribute.
func batteryPercent(bat sysfs.PowerSupply) (float64, bool) {
	now, full := bat.EnergyNow, bat.EnergyFull
	if now == nil || full == nil {
		now, full = bat.ChargeNow, bat.ChargeFull
	}
	if now != nil && full != nil {
		if *full == 0 {
			return 0, true
		}
		return 100 * float64(*now) / float64(*full), true
	}

	if bat.Capacity != nil {
		return float64(*bat.Capacity), true
	}

	return 0, false
}

// powerPlugged reports whether any mains supply is online, falling back to
// the battery status when no mains supply is exposed.
func powerPlugged(supplies sysfs.PowerSupplyClass, bat sysfs.PowerSupply) bool {
	sawMains := false
	for _, ps := range supplies {
		if !strings.EqualFold(ps.Type, "Mains") || ps.Online == nil {
			continue
		}
		sawMains = true
		if *ps.Online == 1 {
			return true
		}
	}
	if sawMains {
		return false
	}

	switch strings.ToLower(bat.Status) {
	case "charging", "full", "not charging":
		return true
	default:
		return false
	}
}

func secsLeft(bat sysfs.PowerSupply, plugged bool) int {
	if plugged {
		return SecsLeftUnlimited
	}

	now, rate := bat.EnergyNow, bat.PowerNow
	if now == nil || rate == nil {
		now, rate = bat.ChargeNow, bat.CurrentNow
	}
	if now != nil && rate != nil && *rate > 0 {
		return int(float64(*now) / float64(*rate) * secondsPerHour)
	}

	return SecsLeftUnknown
}
