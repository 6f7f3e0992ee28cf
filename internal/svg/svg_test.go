package svg

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/ganttsvg/internal/chart"
)

func renderExample(t *testing.T) string {
	t.Helper()

	tasks := []chart.Task{
		{Name: "Design & review", Spans: []chart.Span{
			{
				Start:   time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
				End:     time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
				Brief:   "v1",
				Tooltip: "first draft",
			},
		}},
	}
	c := chart.Render(tasks, chart.Options{
		Now: func() time.Time { return time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC) },
	})

	var buf bytes.Buffer
	Write(&buf, c)
	return buf.String()
}

func TestWrite_Document(t *testing.T) {
	out := renderExample(t)

	assert.True(t, strings.HasPrefix(out, "<?xml"), "starts with XML declaration")
	assert.Contains(t, out, `width="240"`, "2 days * 20px + 200px gutter")
	assert.Contains(t, out, `height="60"`, "1 task + 2 axis rows")
	assert.Contains(t, out, "</svg>")
}

func TestWrite_GroupStructure(t *testing.T) {
	out := renderExample(t)

	for _, id := range []string{"chart", "x-axis-months", "x-axis-days", "weekends", "holidays", "task-0", "span-0-0", "today"} {
		assert.Contains(t, out, `id="`+id+`"`, "group %q present", id)
	}
}

func TestWrite_HoverBindingsBecomeDataAttributes(t *testing.T) {
	out := renderExample(t)

	assert.Contains(t, out, `data-tip="span-0-0-bar"`)
	assert.Contains(t, out, `data-tip="holiday-2024-05-08"`)
	assert.Contains(t, out, `data-tip="holiday-2024-05-09"`)
}

func TestWrite_LabelsAndAnchors(t *testing.T) {
	out := renderExample(t)

	assert.Contains(t, out, "mai, 2024")
	assert.Contains(t, out, `text-anchor="end"`, "task name labels are right-aligned")
	require.Contains(t, out, "Design &amp; review", "text content is escaped")
	assert.NotContains(t, out, "Design & review<")
}

func TestWrite_EmptyTaskList(t *testing.T) {
	c := chart.Render(nil, chart.Options{
		Now: func() time.Time { return time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC) },
	})

	var buf bytes.Buffer
	Write(&buf, c)
	out := buf.String()

	assert.Contains(t, out, `width="220"`, "one day column plus gutter")
	assert.Contains(t, out, `height="40"`, "axis rows only")
}
