// Package collector binds the fingerprint Collector capability.
//
// A Collector is loaded once through a Binding. Until Initialize succeeds the
// binding refuses to collect; after a failed Initialize it stays failed for
// the rest of the session.
package collector

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	fperrors "github.com/entrhq/fpview/pkg/errors"
	"github.com/entrhq/fpview/pkg/logging"
)

// Handle is an initialized collector.
type Handle interface {
	// Collect probes the environment and returns the record as JSON text.
	Collect(ctx context.Context) (string, error)
}

// Collector loads a Handle.
type Collector interface {
	Init(ctx context.Context) (Handle, error)
}

// State is the lifecycle state of a Binding.
type State int

const (
	StateUnset State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "failed"
	}
}

// Binding owns the process-wide collector handle and its init state.
type Binding struct {
	collector Collector
	logger    *logging.Logger

	mu      sync.RWMutex
	state   State
	handle  Handle
	initErr error
}

// NewBinding creates an unset binding for c.
func NewBinding(c Collector, logger *logging.Logger) *Binding {
	if logger == nil {
		logger = logging.Discard("collector")
	}
	return &Binding{collector: c, logger: logger}
}

// Initialize loads the collector. It runs at most once: later calls return
// the stored handle or the stored InitError.
func (b *Binding) Initialize(ctx context.Context) (Handle, error) {
	b.mu.Lock()
	switch b.state {
	case StateReady:
		h := b.handle
		b.mu.Unlock()
		return h, nil
	case StateFailed:
		err := b.initErr
		b.mu.Unlock()
		return nil, err
	case StateInitializing:
		b.mu.Unlock()
		return nil, fperrors.New(fperrors.ErrCodeInit, "collector initialization already in progress")
	}
	b.state = StateInitializing
	b.mu.Unlock()

	b.logger.Infof("Initializing collector %T", b.collector)
	h, err := b.init(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.state = StateFailed
		b.initErr = fperrors.Wrap(fperrors.ErrCodeInit, fperrors.InitFailedMessage, err)
		b.logger.Errorf("Collector initialization failed: %v", err)
		return nil, b.initErr
	}
	b.state = StateReady
	b.handle = h
	b.logger.Infof("Collector ready")
	return h, nil
}

// init calls the collector, turning a panic during instantiation into an error.
func (b *Binding) init(ctx context.Context) (h Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collector panicked during init: %v", r)
		}
	}()
	if b.collector == nil {
		return nil, fmt.Errorf("no collector configured")
	}
	h, err = b.collector.Init(ctx)
	if err == nil && h == nil {
		err = fmt.Errorf("collector returned no handle")
	}
	return h, err
}

// State returns the current lifecycle state.
func (b *Binding) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Err returns the init failure, if any.
func (b *Binding) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.initErr
}

// Ready reports whether Collect may be called.
func (b *Binding) Ready() bool {
	return b.State() == StateReady
}

// Collect runs the bound handle. Calling it before a successful Initialize
// fails fast with ErrCodeNotInitialized.
func (b *Binding) Collect(ctx context.Context) (string, error) {
	b.mu.RLock()
	h, state := b.handle, b.state
	b.mu.RUnlock()

	if state != StateReady || h == nil {
		return "", fperrors.New(fperrors.ErrCodeNotInitialized, "fingerprinting module is not initialized")
	}
	return h.Collect(ctx)
}

// Close releases the handle if it holds resources (a browser, for example).
func (b *Binding) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.handle.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Func adapts a function to both Collector and Handle. Init returns the
// function itself.
type Func func(ctx context.Context) (string, error)

// Init implements Collector.
func (f Func) Init(context.Context) (Handle, error) {
	return f, nil
}

// Collect implements Handle.
func (f Func) Collect(ctx context.Context) (string, error) {
	return f(ctx)
}

// FileCollector replays a record saved to disk, e.g. by an earlier -export.
type FileCollector struct {
	Path string
}

// Init checks that the file is readable.
func (c *FileCollector) Init(context.Context) (Handle, error) {
	info, err := os.Stat(c.Path)
	if err != nil {
		return nil, fmt.Errorf("record file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("record file %s is a directory", c.Path)
	}
	return c, nil
}

// Collect reads the file on every call so edits show up on re-scan.
func (c *FileCollector) Collect(context.Context) (string, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read record file: %w", err)
	}
	return string(data), nil
}
