package headless

import (
	"context"
	"errors"
	"fmt"
	"os"

	"k8s.io/utils/clock"

	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/panel"
	"github.com/entrhq/fpview/pkg/presenter"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// ErrScanFailed is returned by Run when the scan did not display a record.
var ErrScanFailed = errors.New("fingerprint scan failed")

// Executor runs one scan and reports it.
type Executor struct {
	controller *controller.Controller
	panel      *panel.Panel
	config     *Config
	report     *Logger
	artifacts  *ArtifactWriter
	logger     *logging.Logger
	clock      clock.Clock
}

// Option configures an Executor.
type Option func(*Executor)

// WithReport replaces the stdout report logger.
func WithReport(l *Logger) Option {
	return func(e *Executor) { e.report = l }
}

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// WithClock replaces the clock used to time the run.
func WithClock(c clock.Clock) Option {
	return func(e *Executor) { e.clock = c }
}

// NewExecutor creates a headless executor over a controller and the panel it
// drives.
func NewExecutor(ctrl *controller.Controller, p *panel.Panel, config *Config, opts ...Option) (*Executor, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	redactor, err := config.redactor()
	if err != nil {
		return nil, err
	}

	e := &Executor{
		controller: ctrl,
		panel:      p,
		config:     config,
		artifacts:  NewArtifactWriter(config.Artifacts, redactor),
		clock:      clock.RealClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.report == nil {
		e.report = NewWriterLogger(parseLogLevel(config.Logging.Verbosity), os.Stdout, !config.Logging.NoColor)
	}
	if e.logger == nil {
		e.logger = logging.Discard("headless")
	}
	return e, nil
}

// Run initializes the collector, scans once, prints the report and writes
// artifacts. It returns ErrScanFailed, wrapped with the panel's error text,
// when no record was displayed.
func (e *Executor) Run(ctx context.Context) error {
	summary := &ScanSummary{StartTime: e.clock.Now()}
	e.logger.Infof("Starting headless scan")

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	e.report.Header("fpview headless scan")

	e.report.Step("Initializing collector")
	if err := e.controller.Initialize(ctx); err != nil {
		summary.Outcome = controller.OutcomeFailed.String()
		return e.finish(summary, err)
	}
	e.report.Successf("Collector ready")

	e.report.Step("Collecting fingerprint")
	outcome := e.controller.RunScan(ctx)
	summary.Outcome = outcome.String()
	snap := e.panel.Snapshot()

	if outcome != controller.OutcomeDisplayed {
		return e.finish(summary, fmt.Errorf("%w: %s", ErrScanFailed, snap.ErrorMessage))
	}
	summary.Hash = e.controller.CurrentHash()
	e.report.Successf("Fingerprint collected")

	e.printReport(snap)

	written, err := e.artifacts.WriteResults(snap, e.controller.Record())
	summary.Artifacts = written
	if err != nil {
		return e.finish(summary, err)
	}
	return e.finish(summary, nil)
}

func (e *Executor) printReport(snap panel.Snapshot) {
	f := snap.Fields

	e.report.Section("Identity")
	e.report.Field("Fingerprint Hash", f.Hash)

	for _, section := range presenter.Sections(f) {
		e.report.Section(section.Title)
		for _, row := range section.Rows {
			e.report.Field(row.Label, row.Value)
		}
	}

	e.report.Section("Plugins")
	for _, plugin := range f.Plugins {
		e.report.Item(plugin)
	}

	if e.report.level >= LogLevelVerbose {
		e.report.Section("Raw JSON")
		e.report.Block(f.RawJSON)
	}
}

// finish stamps the summary, writes it and prints it. err becomes the run's
// result; a summary write failure is only reported when the run succeeded.
func (e *Executor) finish(summary *ScanSummary, err error) error {
	summary.EndTime = e.clock.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)
	summary.Status = statusSuccess
	if err != nil {
		summary.Status = statusFailed
		summary.Error = err.Error()
		e.logger.Errorf("Headless scan failed: %v", err)
	}

	if e.config.Artifacts.Summary != "" {
		summary.Artifacts = append(summary.Artifacts, e.config.Artifacts.Summary)
	}
	if werr := e.artifacts.WriteSummary(summary); werr != nil {
		e.report.Warningf("%v", werr)
		if err == nil {
			err = werr
		}
	}

	e.report.Summary(summary)
	e.logger.Infof("Headless scan finished: %s", summary.Status)
	return err
}
