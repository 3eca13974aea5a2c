package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/entrhq/fpview/pkg/clipboard"
	fperrors "github.com/entrhq/fpview/pkg/errors"
)

// Intent names a user action.
type Intent string

const (
	IntentScan       Intent = "scan"
	IntentCopyHash   Intent = "copyHash"
	IntentToggleJSON Intent = "toggleJson"
)

// Handler performs an intent.
type Handler func(ctx context.Context) error

// Dispatcher routes intents to handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Intent]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Intent]Handler)}
}

// Register binds h to intent, replacing any previous handler.
func (d *Dispatcher) Register(intent Intent, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[intent] = h
}

// Dispatch runs the handler for intent.
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent) error {
	d.mu.RLock()
	h, ok := d.handlers[intent]
	d.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown intent %q", intent)
	}
	return h(ctx)
}

// Bindings are the components the standard intents act on.
type Bindings struct {
	Controller  *Controller
	Clipboard   *clipboard.Service
	CopyControl clipboard.Control
	Toggle      *JSONToggle
}

// NewStandardDispatcher registers the scan, copyHash and toggleJson intents.
func NewStandardDispatcher(b Bindings) *Dispatcher {
	d := NewDispatcher()

	d.Register(IntentScan, func(ctx context.Context) error {
		b.Controller.RunScan(ctx)
		return nil
	})

	d.Register(IntentCopyHash, func(ctx context.Context) error {
		hash := b.Controller.CurrentHash()
		if hash == "" {
			return fperrors.New(fperrors.ErrCodeClipboard, "no fingerprint hash to copy")
		}
		return b.Clipboard.Copy(ctx, hash, b.CopyControl).Err
	})

	d.Register(IntentToggleJSON, func(context.Context) error {
		b.Toggle.Toggle()
		return nil
	})

	return d
}
