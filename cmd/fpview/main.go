// Package main provides fpview, a browser fingerprint viewer. It drives a
// headless Chromium through a probe page, or replays a saved record, and shows
// the result in an interactive terminal panel or as a one-shot report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	appconfig "github.com/entrhq/fpview/pkg/config"
	"github.com/entrhq/fpview/pkg/executor/headless"
	"github.com/entrhq/fpview/pkg/executor/tui"
	"github.com/entrhq/fpview/pkg/logging"
)

const version = "0.1.0" // Version of fpview

// Config holds the command line configuration
type Config struct {
	ConfigPath  string
	RecordPath  string
	Headed      bool
	MinLatency  time.Duration
	ShowVersion bool

	Headless       bool
	HeadlessConfig string
	HTMLPath       string
	ExportPath     string
	SummaryPath    string
	Redact         string
	Verbosity      string
	NoColor        bool

	// minLatencySet records whether -min-latency was given explicitly
	minLatencySet bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if config.ShowVersion {
		fmt.Printf("fpview v%s\n", version)
		return
	}

	if err := config.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	runErr := run(ctx, config)
	stop()
	if runErr != nil {
		if errors.Is(runErr, headless.ErrScanFailed) {
			os.Exit(1)
		}
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags(args []string, output io.Writer) (*Config, error) {
	config := &Config{}
	fs := flag.NewFlagSet("fpview", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.ConfigPath, "config", "", "Path to the settings file (default: ~/.fpview/config.json)")
	fs.StringVar(&config.RecordPath, "record", "", "Replay a saved fingerprint record instead of launching a browser")
	fs.BoolVar(&config.Headed, "headed", false, "Show the browser window while probing")
	fs.DurationVar(&config.MinLatency, "min-latency", 0, "Minimum time a scan keeps the loading indicator up (overrides settings)")
	fs.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	fs.BoolVar(&config.Headless, "headless", false, "Scan once and print a report instead of starting the TUI")
	fs.StringVar(&config.HeadlessConfig, "headless-config", "", "Path to a headless run configuration file (YAML)")
	fs.StringVar(&config.HTMLPath, "html", "", "Headless: write the result panel as an HTML page")
	fs.StringVar(&config.ExportPath, "export", "", "Headless: export the record (.json, .yaml or .yml)")
	fs.StringVar(&config.SummaryPath, "summary", "", "Headless: write a JSON run summary")
	fs.StringVar(&config.Redact, "redact", "", "Headless: comma-separated field globs to mask in the export, e.g. 'canvas_*,webgl_{vendor,renderer}'")
	fs.StringVar(&config.Verbosity, "verbosity", "", "Headless: quiet, normal, verbose or debug")
	fs.BoolVar(&config.NoColor, "no-color", false, "Headless: disable ANSI colors")

	fs.Usage = func() {
		fmt.Fprintf(output, "fpview - browser fingerprint viewer\n\n")
		fmt.Fprintf(output, "Usage: fpview [options]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nEnvironment Variables:\n")
		fmt.Fprintf(output, "  %-20s Log level: debug, info, warn or error\n", logging.LevelEnvVar)
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  fpview                                   # Interactive panel\n")
		fmt.Fprintf(output, "  fpview -record saved.json                # Replay a saved record\n")
		fmt.Fprintf(output, "  fpview -headless -export fp.yaml -redact 'canvas_*'\n")
		fmt.Fprintf(output, "  fpview -headless -headless-config scan.yaml\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "min-latency" {
			config.minLatencySet = true
		}
	})
	return config, nil
}

// validate checks that the configuration is valid
func (c *Config) validate() error {
	if c.MinLatency < 0 {
		return fmt.Errorf("-min-latency must not be negative")
	}

	if !c.Headless && c.headlessOnlyFlags() != "" {
		return fmt.Errorf("%s requires -headless", c.headlessOnlyFlags())
	}

	if c.RecordPath != "" {
		info, err := os.Stat(c.RecordPath)
		if err != nil {
			return fmt.Errorf("record file error: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("record path '%s' is a directory", c.RecordPath)
		}
	}

	return nil
}

func (c *Config) headlessOnlyFlags() string {
	var names []string
	for name, set := range map[string]bool{
		"-headless-config": c.HeadlessConfig != "",
		"-html":            c.HTMLPath != "",
		"-export":          c.ExportPath != "",
		"-summary":         c.SummaryPath != "",
		"-redact":          c.Redact != "",
		"-verbosity":       c.Verbosity != "",
		"-no-color":        c.NoColor,
	} {
		if set {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// run loads settings, wires a session and hands it to the selected executor
func run(ctx context.Context, config *Config) error {
	settings, err := appconfig.Load(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	config.applyOverrides(settings)

	logger, logErr := logging.NewLogger("fpview")
	if logErr != nil && !config.Headless {
		// A TUI owns the terminal; fall back to discarding instead of stderr.
		logger = logging.Discard("fpview")
	}
	defer logger.Close()
	logger.Infof("fpview v%s starting (session %s)", version, logger.SessionID())

	sess := newSession(buildCollector(settings.Collector().Settings(), logger), settings.Viewer().Settings(), logger)
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			logger.Warnf("Failed to close collector: %v", closeErr)
		}
	}()

	if config.Headless {
		return runHeadless(ctx, config, sess, logger)
	}
	return runTUI(ctx, sess, logger)
}

// applyOverrides layers command line flags over the loaded settings.
// Overrides are not saved.
func (c *Config) applyOverrides(settings *appconfig.Manager) {
	if c.RecordPath != "" {
		settings.Collector().UseRecordFile(c.RecordPath)
	}
	if c.Headed {
		settings.Collector().SetHeadless(false)
	}
	switch {
	case c.minLatencySet:
		settings.Viewer().SetMinScanLatency(c.MinLatency)
	case c.Headless:
		// nobody watches the loading indicator in a report
		settings.Viewer().SetMinScanLatency(0)
	}
}

func runTUI(ctx context.Context, sess *session, logger *logging.Logger) error {
	executor := tui.NewExecutor(tui.Options{
		Controller:     sess.controller,
		Dispatcher:     sess.dispatcher,
		Panel:          sess.panel,
		HighlightStyle: sess.viewer.HighlightStyle,
		Logger:         logger.With("tui"),
	})
	return executor.Run(ctx)
}

func runHeadless(ctx context.Context, config *Config, sess *session, logger *logging.Logger) error {
	execConfig, err := config.headlessConfig()
	if err != nil {
		return err
	}

	executor, err := headless.NewExecutor(sess.controller, sess.panel, execConfig,
		headless.WithLogger(logger.With("headless")),
	)
	if err != nil {
		return err
	}
	return executor.Run(ctx)
}

// headlessConfig loads -headless-config, if given, and applies the headless flags on top.
func (c *Config) headlessConfig() (*headless.Config, error) {
	execConfig := headless.DefaultConfig()
	if c.HeadlessConfig != "" {
		loaded, err := headless.LoadConfig(c.HeadlessConfig)
		if err != nil {
			return nil, err
		}
		execConfig = loaded
	}

	if c.HTMLPath != "" {
		execConfig.Artifacts.HTML = c.HTMLPath
	}
	if c.ExportPath != "" {
		execConfig.Artifacts.Export = c.ExportPath
	}
	if c.SummaryPath != "" {
		execConfig.Artifacts.Summary = c.SummaryPath
	}
	if c.Redact != "" {
		execConfig.Artifacts.Redact = append(execConfig.Artifacts.Redact, c.Redact)
	}
	if c.Verbosity != "" {
		execConfig.Logging.Verbosity = c.Verbosity
	}
	if c.NoColor {
		execConfig.Logging.NoColor = true
	}

	if err := execConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid headless configuration: %w", err)
	}
	return execConfig, nil
}
