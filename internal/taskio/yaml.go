// Package taskio loads chart task lists from external sources. The
// renderer itself never reads files; the CLI feeds it through here.
package taskio

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/ganttsvg/internal/chart"
	"github.com/username/ganttsvg/pkg/dateutil"
)

// taskFile is the on-disk YAML shape:
//
//	tasks:
//	  - name: Backend
//	    tooltip: API rework
//	    spans:
//	      - start: 2024-05-08
//	        end: 2024-05-17
//	        brief: v1
//	        class: milestone
type taskFile struct {
	Tasks []taskRow `yaml:"tasks"`
}

type taskRow struct {
	Name    string    `yaml:"name"`
	Tooltip string    `yaml:"tooltip"`
	Spans   []spanRow `yaml:"spans"`
}

type spanRow struct {
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Brief   string `yaml:"brief"`
	Tooltip string `yaml:"tooltip"`
	Class   string `yaml:"class"`
}

// Load reads a task list from a YAML file. Unlike holiday tables, a bad
// span date fails the load: silently dropping a task row would render a
// chart that lies about the plan.
func Load(path string, logger *zap.Logger) ([]chart.Task, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var file taskFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}

	tasks := make([]chart.Task, 0, len(file.Tasks))
	for _, row := range file.Tasks {
		task := chart.Task{Name: row.Name, Tooltip: row.Tooltip}

		for _, sr := range row.Spans {
			start, err := dateutil.ParseDate(sr.Start)
			if err != nil {
				return nil, fmt.Errorf("task %q: invalid span start %q", row.Name, sr.Start)
			}
			end, err := dateutil.ParseDate(sr.End)
			if err != nil {
				return nil, fmt.Errorf("task %q: invalid span end %q", row.Name, sr.End)
			}

			task.Spans = append(task.Spans, chart.Span{
				Start:   start,
				End:     end,
				Brief:   sr.Brief,
				Tooltip: sr.Tooltip,
				Class:   sr.Class,
			})
		}

		tasks = append(tasks, task)
	}

	logger.Info("Task file loaded",
		zap.String("file", path),
		zap.Int("tasks", len(tasks)))

	return tasks, nil
}
