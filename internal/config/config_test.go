package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/username/ganttsvg/internal/chart"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `chart:
  cell_width: 30
  cell_height: 24
holidays:
  source: builtin
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Chart.CellWidth != 30 {
		t.Errorf("CellWidth = %d, want 30", cfg.Chart.CellWidth)
	}
	if cfg.Chart.CellHeight != 24 {
		t.Errorf("CellHeight = %d, want 24", cfg.Chart.CellHeight)
	}
	if cfg.Chart.YAxisWidth != chart.DefaultYAxisWidth {
		t.Errorf("YAxisWidth = %d, want default %d", cfg.Chart.YAxisWidth, chart.DefaultYAxisWidth)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_FileSourceRequiresPath(t *testing.T) {
	path := writeConfig(t, `holidays:
  source: file
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for file source without path, got nil")
	}
}

func TestLoad_UnknownHolidaySource(t *testing.T) {
	path := writeConfig(t, `holidays:
  source: webcal
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for unknown holiday source, got nil")
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults error = %v", err)
	}
	if cfg.Holidays.Source != "builtin" {
		t.Errorf("Holidays.Source = %q, want builtin", cfg.Holidays.Source)
	}
	if cfg.Chart.CellWidth != chart.DefaultCellWidth {
		t.Errorf("CellWidth = %d, want %d", cfg.Chart.CellWidth, chart.DefaultCellWidth)
	}
}

func TestChartOptions(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Chart.CellWidth = 25

	opts := cfg.ChartOptions(nil)
	if opts.CellWidth != 25 {
		t.Errorf("CellWidth = %d, want 25", opts.CellWidth)
	}
	if opts.CellHeight != chart.DefaultCellHeight {
		t.Errorf("CellHeight = %d, want %d", opts.CellHeight, chart.DefaultCellHeight)
	}
}
