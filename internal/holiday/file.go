package holiday

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/ganttsvg/pkg/dateutil"
)

// holidayFile is the on-disk YAML shape:
//
//	holidays:
//	  - date: 2025-01-01
//	    label: Jour de l'an
type holidayFile struct {
	Holidays []holidayRow `yaml:"holidays"`
}

type holidayRow struct {
	Date  string `yaml:"date"`
	Label string `yaml:"label"`
}

// Load reads a holiday table from a YAML file. Rows with unparseable
// dates are logged and skipped rather than failing the whole load.
func Load(path string, logger *zap.Logger) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday file: %w", err)
	}

	var file holidayFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse holiday file: %w", err)
	}

	table := make(Table, 0, len(file.Holidays))
	for _, row := range file.Holidays {
		date, err := dateutil.ParseDate(row.Date)
		if err != nil {
			logger.Warn("Skipping holiday with invalid date",
				zap.String("date", row.Date),
				zap.String("label", row.Label))
			continue
		}

		table = append(table, Entry{Date: date, Label: row.Label})
	}

	logger.Info("Holiday table loaded",
		zap.String("file", path),
		zap.Int("entries", len(table)))

	return table, nil
}
