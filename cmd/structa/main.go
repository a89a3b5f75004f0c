package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aneliseestevam/structa-web/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		dataDir   = flag.String("data", "", "Path to a directory of CSV files")
		report    = flag.String("report", "general", "Report type: general, costs, progress, productivity, materials, stock, dashboard")
		format    = flag.String("format", "text", "Output format: text, json, csv, xlsx")
		outputDir = flag.String("output", "", "Output directory for results (optional)")
		projectID = flag.String("project", "", "Restrict the report to one project")
		from      = flag.String("from", "", "Include records from this date (YYYY-MM-DD)")
		to        = flag.String("to", "", "Include records up to this date (YYYY-MM-DD)")
		status    = flag.String("status", "", "Restrict to projects with this status: planned, in-progress, completed")
		topLimit  = flag.Int("top", 5, "Rows in the top consumed materials ranking")
		logLevel  = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	logger, err := initLogger(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Create command configuration
	config := commands.Config{
		DataDir:   *dataDir,
		Report:    *report,
		Format:    *format,
		OutputDir: *outputDir,
		ProjectID: *projectID,
		From:      *from,
		To:        *to,
		Status:    *status,
		TopLimit:  *topLimit,
		Verbose:   *verbose,
		Help:      *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config, logger)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()

	switch level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level: %s", level)
	}

	return zapCfg.Build()
}
