package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/power"
	"codeberg.org/mutker/hwreport/internal/query"
	"codeberg.org/mutker/hwreport/internal/report"
	"codeberg.org/mutker/hwreport/internal/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBattery struct{}

func (fakeBattery) Battery(context.Context) (power.Battery, error) {
	return power.Battery{Percent: 80, PowerPlugged: true, SecsLeft: power.SecsLeftUnlimited}, nil
}

type fakeSensors struct {
	unit *query.Unit
}

func (f fakeSensors) Temperatures(_ context.Context, unit query.Unit) ([]sensors.TemperatureGroup, error) {
	*f.unit = unit
	return []sensors.TemperatureGroup{{
		Name:     "acpitz",
		Readings: []sensors.Temperature{{Current: 100}},
	}}, nil
}

func (fakeSensors) Fans(context.Context) ([]sensors.Fan, error) {
	return nil, errors.New().New(errors.ErrNoFans)
}

type execResult struct {
	stdout string
	kind   query.Kind
	built  bool
	unit   query.Unit
}

func execute(t *testing.T, args ...string) (execResult, error) {
	t.Helper()
	t.Setenv("HWREPORT_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	var res execResult
	cmd := newRootCmd(func(_ context.Context, kind query.Kind) report.Providers {
		res.kind = kind
		res.built = true
		return report.Providers{
			Battery: fakeBattery{},
			Sensors: fakeSensors{unit: &res.unit},
		}
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	res.stdout = stdout.String()

	return res, err
}

func TestInvalidMethod(t *testing.T) {
	tests := [][]string{
		{},
		{"--nonsense"},
		{"positional", "--celsius"},
	}

	for _, args := range tests {
		res, err := execute(t, args...)
		require.NoError(t, err)
		assert.Equal(t, "Invalid method\n", res.stdout)
		assert.False(t, res.built)
	}
}

func TestBatteryQuery(t *testing.T) {
	res, err := execute(t, "--battery")
	require.NoError(t, err)

	assert.Equal(t, query.KindBattery, res.kind)
	assert.Equal(t,
		`{"percent": 80, "plugged_in": true, "secsleft": -2, "secsleft_formatted": "-1:59:58"}`+"\n",
		res.stdout)
}

func TestPriorityIgnoresArgumentOrder(t *testing.T) {
	res, err := execute(t, "--fans", "--battery")
	require.NoError(t, err)
	assert.Equal(t, query.KindBattery, res.kind)
}

func TestUnknownFlagsIgnored(t *testing.T) {
	res, err := execute(t, "--bogus", "--fans", "extra")
	require.NoError(t, err)

	assert.Equal(t, query.KindFans, res.kind)
	assert.Equal(t, `{"error": "No fan information"}`+"\n", res.stdout)
}

func TestTemperatureUnit(t *testing.T) {
	res, err := execute(t, "--temperature")
	require.NoError(t, err)
	assert.Equal(t, query.Fahrenheit, res.unit)

	res, err = execute(t, "--temperature", "--celsius")
	require.NoError(t, err)
	assert.Equal(t, query.Celsius, res.unit)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	assert.Contains(t, decoded, "acpitz")
}

func TestConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwreport.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cpu]\npercent_interval = -1\n"), 0o600))

	res, err := execute(t, "--config", path, "--cpu")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInterval))
	assert.Empty(t, res.stdout)
	assert.False(t, res.built)
}

func TestMalformedFlagValues(t *testing.T) {
	tests := [][]string{
		{"--cpu=maybe"},
		{"--memory", "--percent-interval"},
		{"--memory", "--percent-interval", "abc"},
	}

	for _, args := range tests {
		res, err := execute(t, args...)
		require.NoError(t, err, "args %v", args)
		assert.Equal(t, "Invalid method\n", res.stdout, "args %v", args)
		assert.False(t, res.built, "args %v", args)
	}
}

func TestConfigCannotSelectCelsius(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwreport.toml")
	require.NoError(t, os.WriteFile(path, []byte("celsius = true\n"), 0o600))

	t.Setenv("HWREPORT_CELSIUS", "true")
	res, err := execute(t, "--config", path, "--temperature")
	require.NoError(t, err)
	assert.Equal(t, query.Fahrenheit, res.unit)
}
