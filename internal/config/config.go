package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/username/ganttsvg/internal/chart"
	"github.com/username/ganttsvg/internal/holiday"
)

// Config represents application configuration
type Config struct {
	Chart    ChartConfig    `mapstructure:"chart"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// ChartConfig represents chart cell geometry
type ChartConfig struct {
	CellWidth  int `mapstructure:"cell_width"`
	CellHeight int `mapstructure:"cell_height"`
	YAxisWidth int `mapstructure:"y_axis_width"`
}

// HolidaysConfig selects the public-holiday table
type HolidaysConfig struct {
	Source string `mapstructure:"source"` // "builtin" or "file"
	File   string `mapstructure:"file"`   // For file source
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing default config file is
// not an error: the chart works entirely on defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ganttsvg")
		v.AddConfigPath("/etc/ganttsvg")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Chart.CellWidth == 0 {
		c.Chart.CellWidth = chart.DefaultCellWidth
	}
	if c.Chart.CellHeight == 0 {
		c.Chart.CellHeight = chart.DefaultCellHeight
	}
	if c.Chart.YAxisWidth == 0 {
		c.Chart.YAxisWidth = chart.DefaultYAxisWidth
	}
	if c.Holidays.Source == "" {
		c.Holidays.Source = "builtin"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Holidays.Source {
	case "builtin":
	case "file":
		if c.Holidays.File == "" {
			return fmt.Errorf("holidays.file is required for file source")
		}
	default:
		return fmt.Errorf("holidays.source must be 'builtin' or 'file', got '%s'", c.Holidays.Source)
	}

	return nil
}

// HolidayTable resolves the configured holiday table.
func (c *Config) HolidayTable(logger *zap.Logger) (holiday.Table, error) {
	switch c.Holidays.Source {
	case "file":
		return holiday.Load(c.Holidays.File, logger)
	default:
		return holiday.France2024(), nil
	}
}

// ChartOptions converts the config into render options.
func (c *Config) ChartOptions(table holiday.Table) chart.Options {
	return chart.Options{
		CellWidth:  c.Chart.CellWidth,
		CellHeight: c.Chart.CellHeight,
		YAxisWidth: c.Chart.YAxisWidth,
		Holidays:   table,
	}
}
