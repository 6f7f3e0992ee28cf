package taskio

import (
	"fmt"
	"os"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/username/ganttsvg/internal/chart"
)

// LoadICS reads a task list from an iCalendar file. Events sharing a
// summary become spans of one task, ordered by start date. Only
// concrete VEVENTs are considered; recurrence rules are not expanded.
func LoadICS(path string, logger *zap.Logger) ([]chart.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ICS file: %w", err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ICS file: %w", err)
	}

	byName := make(map[string]*chart.Task)
	var order []string

	for _, event := range cal.Events() {
		summary := propValue(event, ical.ComponentPropertySummary)
		if summary == "" {
			logger.Warn("Skipping event without summary",
				zap.String("uid", propValue(event, ical.ComponentPropertyUniqueId)))
			continue
		}

		start, end, err := eventBounds(event)
		if err != nil {
			logger.Warn("Skipping event with unusable dates",
				zap.String("summary", summary),
				zap.Error(err))
			continue
		}

		task, ok := byName[summary]
		if !ok {
			task = &chart.Task{Name: summary}
			byName[summary] = task
			order = append(order, summary)
		}

		task.Spans = append(task.Spans, chart.Span{
			Start:   start,
			End:     end,
			Brief:   summary,
			Tooltip: propValue(event, ical.ComponentPropertyDescription),
		})
	}

	tasks := make([]chart.Task, 0, len(order))
	for _, name := range order {
		task := byName[name]
		sort.Slice(task.Spans, func(i, j int) bool {
			return task.Spans[i].Start.Before(task.Spans[j].Start)
		})
		tasks = append(tasks, *task)
	}

	logger.Info("ICS file loaded",
		zap.String("file", path),
		zap.Int("tasks", len(tasks)))

	return tasks, nil
}

func propValue(event *ical.VEvent, name ical.ComponentProperty) string {
	prop := event.GetProperty(name)
	if prop == nil {
		return ""
	}
	return prop.Value
}

// eventBounds extracts the inclusive calendar-day span of a VEVENT.
// All-day DTEND is exclusive per RFC 5545, so it is pulled back one day.
func eventBounds(event *ical.VEvent) (time.Time, time.Time, error) {
	if start, err := event.GetAllDayStartAt(); err == nil {
		end, err := event.GetAllDayEndAt()
		if err != nil {
			return start, start, nil
		}
		end = end.AddDate(0, 0, -1)
		if end.Before(start) {
			end = start
		}
		return start, end, nil
	}

	start, err := event.GetStartAt()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("missing DTSTART: %w", err)
	}
	end, err := event.GetEndAt()
	if err != nil {
		return start, start, nil
	}
	return start, end, nil
}
