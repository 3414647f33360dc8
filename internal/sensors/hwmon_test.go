package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sysTree map[string]string

func buildTree(t *testing.T, files sysTree) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content+"\n"), 0o600))
	}
	return root
}

var hwmonTree = sysTree{
	"class/hwmon/hwmon0/name":               "coretemp",
	"class/hwmon/hwmon0/temp1_input":        "48000",
	"class/hwmon/hwmon0/temp1_label":        "Package id 0",
	"class/hwmon/hwmon0/temp1_max":          "80000",
	"class/hwmon/hwmon0/temp1_crit":         "100000",
	"class/hwmon/hwmon0/temp2_input":        "46000",
	"class/hwmon/hwmon0/temp2_label":        "Core 0",
	"class/hwmon/hwmon1/name":               "nvme",
	"class/hwmon/hwmon1/temp1_input":        "36850",
	"class/hwmon/hwmon1/temp1_crit":         "84850",
	"class/hwmon/hwmon2/name":               "acpitz",
	"class/hwmon/hwmon2/temp1_input":        "not-a-number",
	"class/hwmon/hwmon3/name":               "thinkpad",
	"class/hwmon/hwmon3/fan1_input":         "2400",
	"class/hwmon/hwmon3/fan2_input":         "",
	"class/hwmon/hwmon3/fan2_label":         "GPU",
	"class/hwmon/hwmon4/device/name":        "it8728",
	"class/hwmon/hwmon4/device/fan1_input":  "900",
	"class/hwmon/hwmon4/device/fan1_label":  "CPU Fan",
	"class/hwmon/hwmon4/device/temp1_input": "30000",
}

func TestReadHwmonTemperatures(t *testing.T) {
	root := buildTree(t, hwmonTree)

	groups := readHwmonTemperatures(root)
	require.Len(t, groups, 3)

	assert.Equal(t, "coretemp", groups[0].Name)
	require.Len(t, groups[0].Readings, 2)
	pkg := groups[0].Readings[0]
	assert.Equal(t, "Package id 0", pkg.Label)
	assert.InDelta(t, 48.0, pkg.Current, 1e-9)
	require.NotNil(t, pkg.High)
	require.NotNil(t, pkg.Critical)
	assert.InDelta(t, 80.0, *pkg.High, 1e-9)
	assert.InDelta(t, 100.0, *pkg.Critical, 1e-9)
	core := groups[0].Readings[1]
	assert.Equal(t, "Core 0", core.Label)
	assert.Nil(t, core.High)
	assert.Nil(t, core.Critical)

	assert.Equal(t, "nvme", groups[1].Name)
	nvme := groups[1].Readings[0]
	assert.Equal(t, "", nvme.Label)
	assert.Nil(t, nvme.High)
	require.NotNil(t, nvme.Critical)
	assert.InDelta(t, 84.85, *nvme.Critical, 1e-9)

	assert.Equal(t, "it8728", groups[2].Name)
	assert.InDelta(t, 30.0, groups[2].Readings[0].Current, 1e-9)
}

func TestReadThermalZones(t *testing.T) {
	root := buildTree(t, sysTree{
		"class/thermal/thermal_zone0/type":              "x86_pkg_temp",
		"class/thermal/thermal_zone0/temp":              "52000",
		"class/thermal/thermal_zone0/trip_point_0_type": "passive",
		"class/thermal/thermal_zone0/trip_point_0_temp": "90000",
		"class/thermal/thermal_zone0/trip_point_1_type": "critical",
		"class/thermal/thermal_zone0/trip_point_1_temp": "105000",
		"class/thermal/thermal_zone1/type":              "acpitz",
		"class/thermal/thermal_zone1/temp":              "27800",
		"class/thermal/thermal_zone1/trip_point_0_type": "hot",
		"class/thermal/thermal_zone1/trip_point_0_temp": "95000",
	})

	groups := readThermalZones(root)
	require.Len(t, groups, 2)

	assert.Equal(t, "x86_pkg_temp", groups[0].Name)
	zone0 := groups[0].Readings[0]
	assert.InDelta(t, 52.0, zone0.Current, 1e-9)
	assert.Nil(t, zone0.High)
	require.NotNil(t, zone0.Critical)
	assert.InDelta(t, 105.0, *zone0.Critical, 1e-9)

	zone1 := groups[1].Readings[0]
	require.NotNil(t, zone1.High)
	assert.InDelta(t, 95.0, *zone1.High, 1e-9)
	assert.Nil(t, zone1.Critical)
}

func TestReadHwmonFans(t *testing.T) {
	root := buildTree(t, hwmonTree)

	fans := readHwmonFans(root)
	require.Len(t, fans, 3)

	assert.Equal(t, "", fans[0].Name)
	require.NotNil(t, fans[0].Current)
	assert.Equal(t, 2400, *fans[0].Current)

	assert.Equal(t, "GPU", fans[1].Name)
	assert.Nil(t, fans[1].Current)

	assert.Equal(t, "CPU Fan", fans[2].Name)
	require.NotNil(t, fans[2].Current)
	assert.Equal(t, 900, *fans[2].Current)
}

func TestReadEmptyTree(t *testing.T) {
	root := t.TempDir()

	assert.Empty(t, readHwmonTemperatures(root))
	assert.Empty(t, readThermalZones(root))
	assert.Empty(t, readHwmonFans(root))
}

func TestReadThermalZonesHighestHotTrip(t *testing.T) {
	root := buildTree(t, sysTree{
		"class/thermal/thermal_zone0/type":               "acpitz",
		"class/thermal/thermal_zone0/temp":               "40000",
		"class/thermal/thermal_zone0/trip_point_2_type":  "hot",
		"class/thermal/thermal_zone0/trip_point_2_temp":  "98000",
		"class/thermal/thermal_zone0/trip_point_10_type": "hot",
		"class/thermal/thermal_zone0/trip_point_10_temp": "85000",
	})

	groups := readThermalZones(root)
	require.Len(t, groups, 1)
	high := groups[0].Readings[0].High
	require.NotNil(t, high)
	assert.InDelta(t, 98.0, *high, 1e-9)
}
