// Package power reads the host battery.
package power

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/logger"
)

// Sentinel values for Battery.SecsLeft.
const (
	SecsLeftUnknown   = -1
	SecsLeftUnlimited = -2
)

const secondsPerHour = 3600

// Battery is a point-in-time battery reading.
type Battery struct {
	Percent      float64
	PowerPlugged bool
	SecsLeft     int
}

// Provider is the host battery provider.
type Provider struct {
	log     logger.Logger
	sysRoot string
}

func New(log logger.Logger) *Provider {
	return &Provider{log: log, sysRoot: "/sys"}
}

// Battery returns the first battery found. It fails with ErrNoBattery when
// the host has none.
func (p *Provider) Battery(ctx context.Context) (Battery, error) {
	return p.readBattery(ctx)
}
