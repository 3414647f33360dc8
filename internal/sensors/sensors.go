// Package sensors reads temperature and fan sensors.
//
// On Linux the hwmon class in sysfs is walked directly so that readings keep
// their chip grouping and labels, with thermal zones as a fallback. Other
// platforms go through gopsutil.
package sensors

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/logger"
	"codeberg.org/mutker/hwreport/internal/query"
)

// Temperature is one sensor reading in the requested unit. High and
// Critical are nil when the sensor has no such threshold.
type Temperature struct {
	Label    string
	Current  float64
	High     *float64
	Critical *float64
}

// TemperatureGroup is a chip or zone and its readings, in sysfs order.
type TemperatureGroup struct {
	Name     string
	Readings []Temperature
}

// Fan is one fan sensor. Name is the sensor label and may be empty.
// Current is nil when the speed could not be read.
type Fan struct {
	Name    string
	Current *int
}

// Provider is the host sensor provider.
type Provider struct {
	log     logger.Logger
	sysRoot string
}

func New(log logger.Logger) *Provider {
	return &Provider{log: log, sysRoot: "/sys"}
}

// Temperatures returns all temperature sensors converted to unit.
func (p *Provider) Temperatures(ctx context.Context, unit query.Unit) ([]TemperatureGroup, error) {
	groups, err := p.readTemperatures(ctx)
	if err != nil {
		return nil, err
	}

	if unit == query.Fahrenheit {
		for gi := range groups {
			for ri := range groups[gi].Readings {
				groups[gi].Readings[ri] = groups[gi].Readings[ri].toFahrenheit()
			}
		}
	}

	return groups, nil
}

// Fans returns all fan sensors in sysfs order.
func (p *Provider) Fans(ctx context.Context) ([]Fan, error) {
	return p.readFans(ctx)
}

func (t Temperature) toFahrenheit() Temperature {
	return Temperature{
		Label:    t.Label,
		Current:  celsiusToFahrenheit(t.Current),
		High:     convertPtr(t.High),
		Critical: convertPtr(t.Critical),
	}
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func convertPtr(c *float64) *float64 {
	if c == nil {
		return nil
	}
	f := celsiusToFahrenheit(*c)

	return &f
}

// appendReading adds r to the group called name, creating it at the end
// when it does not exist yet.
func appendReading(groups []TemperatureGroup, name string, r Temperature) []TemperatureGroup {
	for i := range groups {
		if groups[i].Name == name {
			groups[i].Readings = append(groups[i].Readings, r)
			return groups
		}
	}

	return append(groups, TemperatureGroup{Name: name, Readings: []Temperature{r}})
}
