package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpanContains(t *testing.T) {
	span := Span{Start: date(2024, 5, 8), End: date(2024, 5, 10)}

	assert.True(t, span.Contains(date(2024, 5, 8)), "start bound is inclusive")
	assert.True(t, span.Contains(date(2024, 5, 9)))
	assert.True(t, span.Contains(date(2024, 5, 10)), "end bound is inclusive")
	assert.False(t, span.Contains(date(2024, 5, 7)))
	assert.False(t, span.Contains(date(2024, 5, 11)))
}

func TestSpanClassify(t *testing.T) {
	span := Span{Start: date(2024, 5, 8), End: date(2024, 5, 10)}

	tests := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"Before span", date(2024, 5, 1), Status{Active: false, Past: false, Future: true}},
		{"At start", date(2024, 5, 8), Status{Active: true}},
		{"Inside", date(2024, 5, 9), Status{Active: true}},
		{"At end", date(2024, 5, 10), Status{Active: true}},
		{"After span", date(2024, 5, 20), Status{Active: false, Past: true, Future: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := span.Classify(tt.now)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Active && got.Past, "a span is never active and past at once")
			assert.False(t, got.Active && got.Future, "a span is never active and future at once")
		})
	}
}

func TestSpanClasses(t *testing.T) {
	tests := []struct {
		name string
		span Span
		now  time.Time
		want []string
	}{
		{
			name: "Active span",
			span: Span{Start: date(2024, 5, 8), End: date(2024, 5, 10)},
			now:  date(2024, 5, 9),
			want: []string{"active"},
		},
		{
			name: "Past span",
			span: Span{Start: date(2024, 5, 1), End: date(2024, 5, 3)},
			now:  date(2024, 5, 9),
			want: []string{"inactive", "past"},
		},
		{
			name: "Future span",
			span: Span{Start: date(2024, 5, 20), End: date(2024, 5, 22)},
			now:  date(2024, 5, 9),
			want: []string{"inactive", "future"},
		},
		{
			name: "Caller class appended verbatim",
			span: Span{Start: date(2024, 5, 8), End: date(2024, 5, 10), Class: "milestone urgent"},
			now:  date(2024, 5, 9),
			want: []string{"active", "milestone urgent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.Classes(tt.now))
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "janvier", MonthName(time.January))
	assert.Equal(t, "mai", MonthName(time.May))
	assert.Equal(t, "décembre", MonthName(time.December))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "dimanche", DayName(time.Sunday))
	assert.Equal(t, "samedi", DayName(time.Saturday))
}
