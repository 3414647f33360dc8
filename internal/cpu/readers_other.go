//go:build !linux

package cpu

import "codeberg.org/mutker/hwreport/internal/errors"

type procStats struct{}

func (procStats) read() (Stats, error) {
	return Stats{}, errors.New().New(errors.ErrProviderUnavailable)
}

type sysfsFrequency struct{}

func (sysfsFrequency) read() ([]Frequency, error) {
	return nil, errors.New().New(errors.ErrProviderUnavailable)
}
