//go:build !linux

package power

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/errors"
)

func (p *Provider) readBattery(_ context.Context) (Battery, error) {
	p.log.Debug().Msg("Battery reading is only implemented for Linux")

	return Battery{}, errors.New().Wrap(errors.ErrNoBattery, errors.New().New(errors.ErrProviderUnavailable))
}
