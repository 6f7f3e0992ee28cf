package chart

import (
	"time"

	"github.com/username/ganttsvg/internal/holiday"
)

// Default cell geometry, in pixels.
const (
	DefaultCellWidth  = 20
	DefaultCellHeight = 20
	DefaultYAxisWidth = 200
)

// Options configures one render call. The zero value is valid: every
// field falls back to its default independently.
type Options struct {
	// CellWidth is the pixel width of one day column.
	CellWidth int
	// CellHeight is the pixel height of one row.
	CellHeight int
	// YAxisWidth is the pixel width reserved for task name labels.
	YAxisWidth int

	// Holidays is the public-holiday table to highlight. Nil selects
	// the built-in French 2024 table.
	Holidays holiday.Table

	// Now overrides the reference instant used for date-range seeding
	// and span classification. Nil means time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.CellWidth == 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.CellHeight == 0 {
		o.CellHeight = DefaultCellHeight
	}
	if o.YAxisWidth == 0 {
		o.YAxisWidth = DefaultYAxisWidth
	}
	if o.Holidays == nil {
		o.Holidays = holiday.France2024()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
