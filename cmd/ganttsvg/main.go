package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/ganttsvg/internal/chart"
	"github.com/username/ganttsvg/internal/config"
	"github.com/username/ganttsvg/internal/svg"
	"github.com/username/ganttsvg/internal/taskio"
	"github.com/username/ganttsvg/internal/watch"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ganttsvg",
		Short: "Gantt chart SVG renderer",
		Long:  "Render a Gantt-style task chart as SVG, with weekend and public-holiday highlighting",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(renderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var (
		tasksPath  string
		icsPath    string
		outputPath string
		watchMode  bool
		cellWidth  int
		cellHeight int
		yAxisWidth int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a task file to an SVG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags override the config file.
			if cellWidth > 0 {
				cfg.Chart.CellWidth = cellWidth
			}
			if cellHeight > 0 {
				cfg.Chart.CellHeight = cellHeight
			}
			if yAxisWidth > 0 {
				cfg.Chart.YAxisWidth = yAxisWidth
			}

			table, err := cfg.HolidayTable(logger)
			if err != nil {
				return fmt.Errorf("failed to load holiday table: %w", err)
			}
			opts := cfg.ChartOptions(table)

			sourcePath := tasksPath
			if icsPath != "" {
				sourcePath = icsPath
			}

			render := func() error {
				return renderOnce(sourcePath, icsPath != "", outputPath, opts)
			}

			if err := render(); err != nil {
				return err
			}

			if !watchMode {
				return nil
			}
			if outputPath == "" {
				return fmt.Errorf("--watch requires --output")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch.New(sourcePath, logger).Run(ctx, render)
		},
	}

	cmd.Flags().StringVar(&tasksPath, "tasks", "tasks.yaml", "Task file (YAML)")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Load tasks from an iCalendar file instead of YAML")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SVG file (default stdout)")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Re-render when the task file changes")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "Day column width in pixels")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 0, "Row height in pixels")
	cmd.Flags().IntVar(&yAxisWidth, "y-axis-width", 0, "Task label gutter width in pixels")

	return cmd
}

func renderOnce(sourcePath string, fromICS bool, outputPath string, opts chart.Options) error {
	var (
		tasks []chart.Task
		err   error
	)
	if fromICS {
		tasks, err = taskio.LoadICS(sourcePath, logger)
	} else {
		tasks, err = taskio.Load(sourcePath, logger)
	}
	if err != nil {
		return err
	}

	rendered := chart.Render(tasks, opts)

	logger.Info("Chart rendered",
		zap.String("source", sourcePath),
		zap.Int("tasks", len(tasks)),
		zap.Int("days", len(rendered.Layout.Days)),
		zap.Int("width", rendered.Layout.Width),
		zap.Int("height", rendered.Layout.Height))

	if outputPath == "" {
		svg.Write(os.Stdout, rendered)
		return nil
	}

	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	svg.Write(f, rendered)
	return nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
