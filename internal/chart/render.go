package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/ganttsvg/internal/scene"
	"github.com/username/ganttsvg/internal/tooltip"
	"github.com/username/ganttsvg/pkg/dateutil"
)

// Chart is the result of one render call: the computed layout, the
// drawable scene graph and the tooltip controller for the host to wire
// pointer events into. The tooltip starts hidden and unmounted.
type Chart struct {
	Layout  Layout
	Scene   *scene.Group
	Tooltip *tooltip.Controller
}

// Render builds the full chart scene from the task list. It never
// fails: degenerate input produces a degenerate but drawable scene.
func Render(tasks []Task, opts Options) *Chart {
	opts = opts.withDefaults()
	now := opts.Now()
	// Pin the reference instant so layout seeding and span
	// classification agree within one render.
	opts.Now = func() time.Time { return now }
	layout := ComputeLayout(tasks, opts)
	tip := tooltip.New()

	root := &scene.Group{ID: "chart", Class: "gantt"}
	root.Add(
		monthAxis(layout),
		dayAxis(layout),
		weekendLayer(layout, len(tasks), tip),
		holidayLayer(layout, len(tasks), opts, tip),
	)
	for i, task := range tasks {
		root.Add(taskRow(layout, i, task, now, tip))
	}
	if marker := todayMarker(layout, len(tasks), now); marker != nil {
		root.Add(marker)
	}

	return &Chart{Layout: layout, Scene: root, Tooltip: tip}
}

// gridX maps a day column index to its pixel position, past the task
// name gutter.
func gridX(l Layout, col int) int {
	return l.YAxisWidth + col*l.CellWidth
}

// rowY maps a row index to its pixel position. Rows 0 and 1 are the
// month and day axis bands; task rows start at 2.
func rowY(l Layout, row int) int {
	return row * l.CellHeight
}

func monthAxis(l Layout) *scene.Group {
	g := &scene.Group{ID: "x-axis-months", Class: "axis months"}

	for _, bucket := range l.Months {
		x := gridX(l, l.DayOffset(bucket.Days[0]))
		w := len(bucket.Days) * l.CellWidth
		label := fmt.Sprintf("%s, %d", MonthName(bucket.Month), bucket.Year)

		g.Add(
			&scene.Rect{X: x, Y: rowY(l, 0), W: w, H: l.CellHeight, Class: "month"},
			&scene.Text{
				X:       x + w/2,
				Y:       rowY(l, 1) - 5,
				Anchor:  scene.AnchorMiddle,
				Class:   "month-label",
				Content: label,
			},
		)
	}
	return g
}

func dayAxis(l Layout) *scene.Group {
	g := &scene.Group{ID: "x-axis-days", Class: "axis days"}

	for i, day := range l.Days {
		x := gridX(l, i)
		g.Add(
			&scene.Rect{X: x, Y: rowY(l, 1), W: l.CellWidth, H: l.CellHeight, Class: "day"},
			&scene.Text{
				X:       x + l.CellWidth/2,
				Y:       rowY(l, 2) - 5,
				Anchor:  scene.AnchorMiddle,
				Class:   "day-label",
				Content: fmt.Sprintf("%d", day.Day()),
			},
		)
	}
	return g
}

// weekendLayer highlights Saturdays and Sundays across all task rows.
// Hovering a cell shows the weekday name.
func weekendLayer(l Layout, taskCount int, tip *tooltip.Controller) *scene.Group {
	g := &scene.Group{ID: "weekends", Class: "layer weekends"}

	for i, day := range l.Days {
		if !dateutil.IsWeekend(day) {
			continue
		}
		id := "weekend-" + day.Format("2006-01-02")
		tip.Bind(id, DayName(day.Weekday()))
		g.Add(&scene.Rect{
			X:       gridX(l, i),
			Y:       rowY(l, 2),
			W:       l.CellWidth,
			H:       taskCount * l.CellHeight,
			Class:   "weekend",
			HoverID: id,
		})
	}
	return g
}

// holidayLayer highlights the days matching the injected holiday table.
// Matching is exact calendar-date equality. Hovering shows the label.
func holidayLayer(l Layout, taskCount int, opts Options, tip *tooltip.Controller) *scene.Group {
	g := &scene.Group{ID: "holidays", Class: "layer holidays"}

	for i, day := range l.Days {
		label, found := opts.Holidays.Lookup(day)
		if !found {
			continue
		}
		id := "holiday-" + day.Format("2006-01-02")
		tip.Bind(id, label)
		g.Add(&scene.Rect{
			X:       gridX(l, i),
			Y:       rowY(l, 2),
			W:       l.CellWidth,
			H:       taskCount * l.CellHeight,
			Class:   "holiday",
			HoverID: id,
		})
	}
	return g
}

func taskRow(l Layout, index int, task Task, now time.Time, tip *tooltip.Controller) *scene.Group {
	g := &scene.Group{ID: fmt.Sprintf("task-%d", index), Class: "task"}
	y := rowY(l, index+2)

	labelID := fmt.Sprintf("task-%d-label", index)
	tip.Bind(labelID, task.Tooltip)
	g.Add(&scene.Text{
		X:       l.YAxisWidth - 4,
		Y:       y + l.CellHeight - 5,
		Anchor:  scene.AnchorEnd,
		Class:   "task-name",
		Content: task.Name,
		HoverID: labelID,
	})

	for si, span := range task.Spans {
		g.Add(spanBar(l, index, si, span, now, tip))
	}
	return g
}

func spanBar(l Layout, taskIndex, spanIndex int, span Span, now time.Time, tip *tooltip.Controller) *scene.Group {
	g := &scene.Group{ID: fmt.Sprintf("span-%d-%d", taskIndex, spanIndex), Class: "span"}

	x := gridX(l, l.DayOffset(span.Start))
	y := rowY(l, taskIndex+2)
	// Inclusive day count, minus a fixed one-unit gap between bars.
	// Reversed bounds yield a negative width on purpose: garbage in,
	// degenerate bar out.
	w := (dateutil.DaysBetween(span.Start, span.End)+1)*l.CellWidth - 1

	id := g.ID + "-bar"
	tip.Bind(id, span.Tooltip)

	g.Add(
		&scene.Rect{
			X:       x,
			Y:       y + 1,
			W:       w,
			H:       l.CellHeight - 2,
			Class:   strings.Join(span.Classes(now), " "),
			HoverID: id,
		},
		&scene.Text{
			X:       x + 3,
			Y:       y + l.CellHeight - 5,
			Anchor:  scene.AnchorStart,
			Class:   "span-label",
			Content: span.Brief,
			HoverID: id,
		},
	)
	return g
}

// todayMarker returns the current-day highlight column, or nil when the
// current day is outside the chart range.
func todayMarker(l Layout, taskCount int, now time.Time) *scene.Group {
	if !l.ContainsDay(now) {
		return nil
	}

	g := &scene.Group{ID: "today", Class: "today-marker"}
	g.Add(&scene.Rect{
		X:     gridX(l, l.DayOffset(now)),
		Y:     rowY(l, 2),
		W:     l.CellWidth,
		H:     taskCount * l.CellHeight,
		Class: "today",
	})
	return g
}
