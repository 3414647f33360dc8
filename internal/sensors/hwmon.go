package sensors

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const milliPerUnit = 1000

var (
	tempInputRe = regexp.MustCompile(`^temp\d+_`)
	fanInputRe  = regexp.MustCompile(`^fan\d+_`)
)

// sensorBases returns the sorted, deduplicated "<dir>/<kindN>" prefixes of
// hwmon attribute files matching re, e.g. ".../hwmon0/temp1".
func sensorBases(sysRoot, kind string, re *regexp.Regexp) []string {
	patterns := []string{
		filepath.Join(sysRoot, "class/hwmon/hwmon*", kind+"*_*"),
		filepath.Join(sysRoot, "class/hwmon/hwmon*/device", kind+"*_*"),
	}

	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, _ := filepath.Glob(pattern)
		for _, match := range matches {
			name := filepath.Base(match)
			if !re.MatchString(name) {
				continue
			}
			prefix := name[:strings.Index(name, "_")]
			seen[filepath.Join(filepath.Dir(match), prefix)] = struct{}{}
		}
	}

	bases := make([]string, 0, len(seen))
	for base := range seen {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	return bases
}

// chipName reads the hwmon "name" attribute for a sensor base path,
// looking next to it and, for device/ paths, one level up.
func chipName(base string) string {
	dir := filepath.Dir(base)
	if name := readString(filepath.Join(dir, "name")); name != "" {
		return name
	}
	if filepath.Base(dir) == "device" {
		return readString(filepath.Join(filepath.Dir(dir), "name"))
	}

	return ""
}

func readHwmonTemperatures(sysRoot string) []TemperatureGroup {
	var groups []TemperatureGroup

	for _, base := range sensorBases(sysRoot, "temp", tempInputRe) {
		current, ok := readMilli(base + "_input")
		if !ok {
			continue
		}

		r := Temperature{
			Label:   readString(base + "_label"),
			Current: current,
		}
		if high, ok := readMilli(base + "_max"); ok {
			r.High = &high
		}
		if crit, ok := readMilli(base + "_crit"); ok {
			r.Critical = &crit
		}

		groups = appendReading(groups, chipName(base), r)
	}

	return groups
}

// readThermalZones reads /sys/class/thermal, using the highest "hot" trip
// point as High and the "critical" trip point as Critical.
func readThermalZones(sysRoot string) []TemperatureGroup {
	zones, _ := filepath.Glob(filepath.Join(sysRoot, "class/thermal/thermal_zone*"))
	sort.Strings(zones)

	var groups []TemperatureGroup
	for _, zone := range zones {
		current, ok := readMilli(filepath.Join(zone, "temp"))
		if !ok {
			continue
		}

		r := Temperature{Current: current}

		trips, _ := filepath.Glob(filepath.Join(zone, "trip_point_*_type"))
		sort.Strings(trips)
		for _, trip := range trips {
			value, ok := readMilli(strings.TrimSuffix(trip, "_type") + "_temp")
			if !ok {
				continue
			}
			switch readString(trip) {
			case "critical":
				r.Critical = &value
			case "high", "hot":
				if r.High == nil || value > *r.High {
					r.High = &value
				}
			}
		}

		name := readString(filepath.Join(zone, "type"))
		groups = appendReading(groups, name, r)
	}

	return groups
}

func readHwmonFans(sysRoot string) []Fan {
	var fans []Fan

	for _, base := range sensorBases(sysRoot, "fan", fanInputRe) {
		fan := Fan{Name: readString(base + "_label")}
		if rpm, ok := readInt(base + "_input"); ok {
			fan.Current = &rpm
		}
		fans = append(fans, fan)
	}

	return fans
}

func readString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

func readInt(path string) (int, bool) {
	v, err := strconv.Atoi(readString(path))
	if err != nil {
		return 0, false
	}

	return v, true
}

// readMilli reads a millidegree attribute as degrees.
func readMilli(path string) (float64, bool) {
	v, err := strconv.ParseFloat(readString(path), 64)
	if err != nil {
		return 0, false
	}

	return v / milliPerUnit, true
}
