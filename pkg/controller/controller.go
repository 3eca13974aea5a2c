package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/entrhq/fpview/pkg/collector"
	fperrors "github.com/entrhq/fpview/pkg/errors"
	"github.com/entrhq/fpview/pkg/fingerprint"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/presenter"
)

const (
	// DefaultMinScanLatency is the shortest time the busy indicator is shown.
	DefaultMinScanLatency = 800 * time.Millisecond

	// BusyLabel replaces the trigger label while a scan runs.
	BusyLabel = "Scanning..."
)

// State is the controller lifecycle state.
type State int

const (
	StateReady State = iota
	StateScanning
	StateDisplaying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateScanning:
		return "scanning"
	case StateDisplaying:
		return "displaying"
	default:
		return "failed"
	}
}

// Outcome is the result of one RunScan call.
type Outcome int

const (
	// OutcomeSkipped means a scan was already running.
	OutcomeSkipped Outcome = iota
	OutcomeDisplayed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDisplayed:
		return "displayed"
	default:
		return "failed"
	}
}

// Surface is the presentation target of a Controller.
type Surface interface {
	SetTriggerEnabled(enabled bool)
	SetTriggerLabel(label string)
	TriggerLabel() string

	ShowLoading()
	HideLoading()
	ShowResults()
	HideResults()
	ShowError(message string)
	HideError()

	Render(fields presenter.DisplayFields)
}

// Source is the collector binding as seen by the controller.
// *collector.Binding implements it.
type Source interface {
	Initialize(ctx context.Context) (collector.Handle, error)
	Collect(ctx context.Context) (string, error)
	Ready() bool
	Err() error
}

// Config holds the controller's tunables.
type Config struct {
	MinScanLatency time.Duration
	Clock          clock.Clock
	Presenter      *presenter.Presenter
	Logger         *logging.Logger
}

// Controller runs scans against a Source and shows them on a Surface.
type Controller struct {
	source     Source
	surface    Surface
	presenter  *presenter.Presenter
	clock      clock.Clock
	minLatency time.Duration
	logger     *logging.Logger

	mu         sync.Mutex
	state      State
	record     *fingerprint.Record
	initFailed bool
}

// New creates a controller in the Ready state.
func New(source Source, surface Surface, cfg Config) *Controller {
	c := &Controller{
		source:     source,
		surface:    surface,
		presenter:  cfg.Presenter,
		clock:      cfg.Clock,
		minLatency: cfg.MinScanLatency,
		logger:     cfg.Logger,
	}
	if c.presenter == nil {
		c.presenter = presenter.New()
	}
	if c.clock == nil {
		c.clock = clock.RealClock{}
	}
	if c.minLatency < 0 {
		c.minLatency = 0
	}
	if c.logger == nil {
		c.logger = logging.Discard("controller")
	}
	return c
}

// Initialize loads the collector. On failure the error panel shows the init
// message and the trigger stays disabled for the rest of the session.
func (c *Controller) Initialize(ctx context.Context) error {
	if _, err := c.source.Initialize(ctx); err != nil {
		c.mu.Lock()
		c.initFailed = true
		c.setStateLocked(StateFailed)
		c.mu.Unlock()

		c.surface.SetTriggerEnabled(false)
		c.showError(err)
		return err
	}
	return nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Record returns the most recent successfully parsed record, or nil.
func (c *Controller) Record() *fingerprint.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// CurrentHash returns the hash of the held record, or "" before the first
// successful scan.
func (c *Controller) CurrentHash() string {
	if rec := c.Record(); rec != nil {
		return rec.FingerprintHash
	}
	return ""
}

// RunScan performs one collection. It returns OutcomeSkipped without touching
// the surface when a scan is already in progress.
func (c *Controller) RunScan(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.state == StateScanning {
		c.mu.Unlock()
		c.logger.Debugf("Scan already in progress, ignoring trigger")
		return OutcomeSkipped
	}
	initFailed := c.initFailed
	c.setStateLocked(StateScanning)
	c.mu.Unlock()

	label := c.surface.TriggerLabel()
	c.surface.SetTriggerEnabled(false)
	c.surface.SetTriggerLabel(BusyLabel)
	c.surface.HideResults()
	c.surface.HideError()
	c.surface.ShowLoading()

	defer func() {
		c.surface.SetTriggerEnabled(!initFailed)
		c.surface.SetTriggerLabel(label)
	}()

	start := c.clock.Now()
	rec, err := c.collect(ctx)
	if wait := c.minLatency - c.clock.Since(start); wait > 0 {
		c.clock.Sleep(wait)
	}

	if err != nil {
		c.surface.HideLoading()
		c.mu.Lock()
		c.setStateLocked(StateFailed)
		c.mu.Unlock()
		c.showError(err)
		return OutcomeFailed
	}

	fields := c.presenter.Render(rec)

	c.mu.Lock()
	c.record = rec
	c.setStateLocked(StateDisplaying)
	c.mu.Unlock()

	c.surface.Render(fields)
	c.surface.HideLoading()
	c.surface.ShowResults()
	return OutcomeDisplayed
}

// collect calls the source and parses its output. A panicking collector is
// reported as a collection failure.
func (c *Controller) collect(ctx context.Context) (rec *fingerprint.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fperrors.New(fperrors.ErrCodeCollection, fmt.Sprintf("collector panicked: %v", r))
		}
	}()

	if !c.source.Ready() {
		if initErr := c.source.Err(); initErr != nil {
			return nil, initErr
		}
		return nil, fperrors.New(fperrors.ErrCodeNotInitialized, "fingerprinting module is not initialized")
	}

	text, err := c.source.Collect(ctx)
	if err != nil {
		if fperrors.CodeOf(err) != "" {
			return nil, err
		}
		return nil, fperrors.Wrap(fperrors.ErrCodeCollection, "failed to collect fingerprint", err)
	}
	return fingerprint.Parse(text)
}

func (c *Controller) showError(err error) {
	c.logger.Errorf("Scan failed: %v", err)
	c.surface.ShowError(ErrorText(err))
}

// ErrorText formats err for the error panel.
func ErrorText(err error) string {
	return "Error: " + fperrors.UserMessage(err)
}

func (c *Controller) setStateLocked(s State) {
	if c.state != s {
		c.logger.Infof("State %s -> %s", c.state, s)
	}
	c.state = s
}
