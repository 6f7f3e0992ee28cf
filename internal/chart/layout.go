package chart

import (
	"time"

	"github.com/username/ganttsvg/pkg/dateutil"
)

// Layout is the computed geometry of a chart: the overall date bounds,
// the enumerated day sequence, the month buckets and the pixel
// dimensions. It is immutable once computed.
type Layout struct {
	FirstDay time.Time
	LastDay  time.Time
	Days     []time.Time
	Months   []dateutil.MonthBucket

	CellWidth  int
	CellHeight int
	YAxisWidth int

	Width  int
	Height int
}

// ComputeLayout derives the layout from the task list. It always
// succeeds: a task list without spans collapses to a single-day range
// at the reference instant, producing a degenerate one-column chart.
func ComputeLayout(tasks []Task, opts Options) Layout {
	opts = opts.withDefaults()
	now := opts.Now()

	first, last := dateBounds(tasks, now)
	days := dateutil.DateRange(first, last)

	return Layout{
		FirstDay:   first,
		LastDay:    last,
		Days:       days,
		Months:     dateutil.MonthRange(first, last),
		CellWidth:  opts.CellWidth,
		CellHeight: opts.CellHeight,
		YAxisWidth: opts.YAxisWidth,
		Width:      opts.CellWidth*len(days) + opts.YAxisWidth,
		Height:     (len(tasks) + 2) * opts.CellHeight,
	}
}

// dateBounds folds the span bounds of every task into the inclusive
// (firstDay, lastDay) pair. With no spans both bounds are the seed
// instant.
func dateBounds(tasks []Task, seed time.Time) (first, last time.Time) {
	first, last = seed, seed
	seen := false

	for _, task := range tasks {
		for _, span := range task.Spans {
			lo := dateutil.MinDate(span.Start, span.End)
			hi := dateutil.MaxDate(span.Start, span.End)
			if !seen {
				first, last = lo, hi
				seen = true
				continue
			}
			first = dateutil.MinDate(first, lo)
			last = dateutil.MaxDate(last, hi)
		}
	}

	return first, last
}

// DayOffset returns the column index of a date, counted in calendar
// days from the first day of the chart.
func (l Layout) DayOffset(t time.Time) int {
	return dateutil.DaysBetween(l.FirstDay, t)
}

// ContainsDay reports whether the given instant falls on a calendar day
// covered by the chart.
func (l Layout) ContainsDay(t time.Time) bool {
	off := l.DayOffset(t)
	return off >= 0 && off < len(l.Days)
}
