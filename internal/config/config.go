package config

import (
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/query"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "hwreport"
	configType = "toml"
)

type CPU struct {
	PercentInterval      float64 `mapstructure:"percent_interval"`
	PercentPerCPU        bool    `mapstructure:"percent_percpu"`
	Logical              bool    `mapstructure:"logical"`
	FreqPerCPU           bool    `mapstructure:"freq_percpu"`
	TimesPerCPU          bool    `mapstructure:"times_percpu"`
	TimesPercentInterval float64 `mapstructure:"times_percent_interval"`
	TimesPercentPerCPU   bool    `mapstructure:"times_percent_percpu"`
}

type Config struct {
	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`
	CPU     CPU  `mapstructure:"cpu"`
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"debug":                      "debug",
	"verbose":                    "verbose",
	"cpu.percent_interval":       "percent-interval",
	"cpu.percent_percpu":         "percent-percpu",
	"cpu.logical":                "logical",
	"cpu.freq_percpu":            "freq-percpu",
	"cpu.times_percpu":           "times-percpu",
	"cpu.times_percent_interval": "times-percent-interval",
	"cpu.times_percent_percpu":   "times-percent-percpu",
}

// Load reads defaults, the optional config file, HWREPORT_* environment
// variables and the flags in fs, in increasing order of precedence. fs may
// be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	errFactory := errors.New()
	v := viper.New()

	setDefaults(v)

	v.SetConfigType(configType)
	if path := configPath(fs); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath("/etc")
		v.AddConfigPath("$HOME/.config/hwreport")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	v.SetEnvPrefix(strings.ToUpper(configName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errFactory.Wrap(errors.ErrBindFlags, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := query.DefaultOptions()

	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("cpu.percent_interval", defaults.CPU.PercentInterval.Seconds())
	v.SetDefault("cpu.percent_percpu", defaults.CPU.PercentPerCPU)
	v.SetDefault("cpu.logical", defaults.CPU.Logical)
	v.SetDefault("cpu.freq_percpu", defaults.CPU.FreqPerCPU)
	v.SetDefault("cpu.times_percpu", defaults.CPU.TimesPerCPU)
	v.SetDefault("cpu.times_percent_interval", defaults.CPU.TimesPercentInterval.Seconds())
	v.SetDefault("cpu.times_percent_percpu", defaults.CPU.TimesPercentPerCPU)
}

// configPath returns the explicit config file from --config or
// HWREPORT_CONFIG, or "" to search the default locations.
func configPath(fs *pflag.FlagSet) string {
	if fs != nil {
		if path, err := fs.GetString("config"); err == nil && path != "" {
			return path
		}
	}

	return os.Getenv("HWREPORT_CONFIG")
}

// Validate checks that sampling intervals are usable.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.CPU.PercentInterval < 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, "percent_interval")
	}
	if c.CPU.TimesPercentInterval < 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, "times_percent_interval")
	}

	return nil
}

// Options converts the configuration into query options. The temperature
// unit is not configurable and stays at its default; only the command line
// selects Celsius.
func (c *Config) Options() query.Options {
	return query.Options{
		CPU: query.CPUOptions{
			PercentInterval:      seconds(c.CPU.PercentInterval),
			PercentPerCPU:        c.CPU.PercentPerCPU,
			Logical:              c.CPU.Logical,
			FreqPerCPU:           c.CPU.FreqPerCPU,
			TimesPerCPU:          c.CPU.TimesPerCPU,
			TimesPercentInterval: seconds(c.CPU.TimesPercentInterval),
			TimesPercentPerCPU:   c.CPU.TimesPercentPerCPU,
		},
		Unit: query.DefaultOptions().Unit,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
