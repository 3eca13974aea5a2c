// Package clipboard copies text to the system clipboard and drives the
// transient "Copied!" confirmation on the control that triggered the copy.
package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"k8s.io/utils/clock"

	fperrors "github.com/entrhq/fpview/pkg/errors"
	"github.com/entrhq/fpview/pkg/logging"
)

const (
	// DefaultConfirmationWindow is how long the confirmation stays visible.
	DefaultConfirmationWindow = 2 * time.Second

	// CopiedLabel replaces the control label while the confirmation is shown.
	CopiedLabel = "Copied!"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

// WriteAll implements Writer.
func (f WriterFunc) WriteAll(text string) error {
	return f(text)
}

// System writes to the OS clipboard.
var System Writer = WriterFunc(clipboard.WriteAll)

// Accent is the visual emphasis of a control.
type Accent int

const (
	AccentDefault Accent = iota
	AccentSuccess
)

// ControlState is what a control currently displays.
type ControlState struct {
	Label  string
	Accent Accent
}

// Control is the button that triggered a copy.
type Control interface {
	ControlState() ControlState
	SetControlState(ControlState)
}

// Result reports the outcome of a Copy.
type Result struct {
	Text   string
	Copied bool
	Err    error
}

// Service performs copies and schedules the label revert.
type Service struct {
	writer Writer
	clock  clock.WithDelayedExecution
	window time.Duration
	logger *logging.Logger

	mu      sync.Mutex
	pending *pendingRevert
}

type pendingRevert struct {
	control  Control
	original ControlState
	timer    clock.Timer
}

// Option configures a Service.
type Option func(*Service)

// WithWriter replaces the system clipboard.
func WithWriter(w Writer) Option {
	return func(s *Service) { s.writer = w }
}

// WithClock replaces the real clock.
func WithClock(c clock.WithDelayedExecution) Option {
	return func(s *Service) { s.clock = c }
}

// WithConfirmationWindow sets how long "Copied!" stays visible.
func WithConfirmationWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithLogger sets the logger used for copy failures.
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a clipboard service.
func New(opts ...Option) *Service {
	s := &Service{
		writer: System,
		clock:  clock.RealClock{},
		window: DefaultConfirmationWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard("clipboard")
	}
	return s
}

// Copy writes text to the clipboard. On success control shows the
// confirmation and reverts after the window; on failure it is untouched and
// the ClipboardError is logged and returned in the Result.
func (s *Service) Copy(ctx context.Context, text string, control Control) Result {
	if err := ctx.Err(); err != nil {
		return s.fail(text, err)
	}
	if err := s.writer.WriteAll(text); err != nil {
		return s.fail(text, err)
	}
	if control == nil {
		return Result{Text: text, Copied: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	original := control.ControlState()
	// A second copy inside the window extends it; the label to restore is
	// still the one from before the first copy.
	if p := s.pending; p != nil {
		p.timer.Stop()
		if p.control == control {
			original = p.original
		} else {
			p.control.SetControlState(p.original)
		}
	}

	control.SetControlState(ControlState{Label: CopiedLabel, Accent: AccentSuccess})

	p := &pendingRevert{control: control, original: original}
	// The callback may run with the clock's lock held; it must not call back into the clock.
	p.timer = s.clock.AfterFunc(s.window, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.pending != p {
			return
		}
		p.control.SetControlState(p.original)
		s.pending = nil
	})
	s.pending = p

	return Result{Text: text, Copied: true}
}

func (s *Service) fail(text string, cause error) Result {
	err := fperrors.Wrap(fperrors.ErrCodeClipboard, "failed to copy to clipboard", cause)
	s.logger.Errorf("Copy failed: %v", err)
	return Result{Text: text, Err: err}
}

// Pending reports whether a revert is scheduled.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Close cancels a scheduled revert and restores the control immediately.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.pending; p != nil {
		p.timer.Stop()
		p.control.SetControlState(p.original)
		s.pending = nil
	}
}
