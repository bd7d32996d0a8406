package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/asbscan/internal/config"
	"github.com/nao1215/asbscan/internal/model"
	"github.com/nao1215/asbscan/internal/pipeline"
	"github.com/nao1215/asbscan/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [csv-file]",
		Short: "Clean and analyze an ASB incident CSV",
		Long: `Analyze runs the full exploratory pipeline over an incident CSV:

1. Load the raw extract (UTF-8 BOM tolerated, common missing markers recognized)
2. Clean it: coerce response times to numbers and clock times to hours,
   fill missing numerics with the column median and missing text with
   "Unknown", drop rows that are mostly empty, drop exact duplicates
3. Write the cleaned table to a new CSV
4. Render frequency and hourly charts to an HTML dashboard
5. Test the borough distribution: chi-square goodness-of-fit against
   uniform, and a Welch t-test between the busiest and quietest boroughs

Examples:
  # Analyze the default extract in the current directory
  asbscan analyze

  # Analyze a specific file
  asbscan analyze incidents.csv

  # Write cleaned data and charts to chosen paths
  asbscan analyze --output clean.csv --charts charts.html incidents.csv

  # Markdown report to a file
  asbscan analyze --markdown -o report.md incidents.csv

  # Use a custom configuration file
  asbscan analyze -c myconfig.yaml incidents.csv

Configuration file (.asbscan) example:
  columns:
    borough: "Borough"
    hour: "Incident_Hour"
  alpha: 0.01
  output: "cleaned.csv"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyzeCmd,
	}

	// Data flags
	cmd.Flags().String("output", config.DefaultOutputFile,
		"Output path for the cleaned CSV")
	cmd.Flags().String("charts", "",
		"Output path for the HTML chart dashboard (default: XDG data directory)")

	// Analysis flags
	cmd.Flags().Float64P("alpha", "a", config.DefaultAlpha,
		"Significance threshold for hypothesis tests (0 < alpha < 1)")
	cmd.Flags().IntP("group-size", "g", config.DefaultGroupSize,
		"Number of top and bottom boroughs compared by the t-test")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .asbscan in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("report", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalysis(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	charts, err := cmd.Flags().GetString("charts")
	if err != nil {
		return nil, err
	}
	if charts != "" {
		cfg.ChartsPath = charts
	}

	cfg.Alpha, err = cmd.Flags().GetFloat64("alpha")
	if err != nil {
		return nil, err
	}

	cfg.GroupSize, err = cmd.Flags().GetInt("group-size")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the configuration file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags set explicitly on the command line beat file values.
	if cmd.Flags().Changed("output") {
		cfg.OutputPath, _ = cmd.Flags().GetString("output") //nolint:errcheck // Checked above
	}
	if cmd.Flags().Changed("charts") {
		cfg.ChartsPath = charts
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Alpha, _ = cmd.Flags().GetFloat64("alpha") //nolint:errcheck // Checked above
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	// Positional argument overrides the default input file
	if len(args) == 1 {
		cfg.InputPath = args[0]
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runAnalysis executes the analysis pipeline and outputs the report.
func runAnalysis(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"charts", cfg.ChartsPath,
		"alpha", cfg.Alpha,
	)

	p := pipeline.DefaultPipeline(cfg, pipeline.WithLogger(logger))

	analysisReport := model.NewAnalysisReport(cfg.InputPath)

	fmt.Printf("Analyzing %s...\n", cfg.InputPath)
	startTime := time.Now()

	if err := p.Execute(ctx, analysisReport); err != nil {
		logger.Error("analysis failed", "input", cfg.InputPath, "error", err)
		return fmt.Errorf("analysis of %s failed: %w", cfg.InputPath, err)
	}

	analysisReport.Duration = time.Since(startTime)
	fmt.Printf("Analysis completed in %s\n\n", analysisReport.Duration.Round(time.Millisecond))

	return outputReport(cfg, analysisReport)
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, analysisReport *model.AnalysisReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Read-only usage after write
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report with all data)
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(analysisReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(analysisReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output)
	_, err := writer.Write(analysisReport)
	return err
}
