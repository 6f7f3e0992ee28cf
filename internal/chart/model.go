package chart

import "time"

// Span is one contiguous date interval of a task. Start <= End is
// assumed, not enforced; a reversed span renders as a degenerate bar
// but never fails.
type Span struct {
	Start   time.Time
	End     time.Time
	Brief   string
	Tooltip string
	Class   string
}

// Task is a named row of the chart with its spans, in input order.
type Task struct {
	Name    string
	Tooltip string
	Spans   []Span
}

// Contains reports whether the given instant falls inside the span,
// bounds inclusive.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Status classifies a span relative to a reference instant. A span is
// either active or inactive; past and future are independent tags. A
// span can be inactive and past at once, never active and past.
type Status struct {
	Active bool
	Past   bool
	Future bool
}

// Classify computes the span status at the given instant.
func (s Span) Classify(now time.Time) Status {
	return Status{
		Active: s.Contains(now),
		Past:   s.End.Before(now),
		Future: now.Before(s.Start),
	}
}

// Classes returns the style class list for a span bar: the activity
// state, the past/future tags, and the caller-supplied class verbatim.
func (s Span) Classes(now time.Time) []string {
	status := s.Classify(now)

	classes := make([]string, 0, 3)
	if status.Active {
		classes = append(classes, "active")
	} else {
		classes = append(classes, "inactive")
	}
	if status.Past {
		classes = append(classes, "past")
	}
	if status.Future {
		classes = append(classes, "future")
	}
	if s.Class != "" {
		classes = append(classes, s.Class)
	}
	return classes
}
