// Package tui provides the interactive terminal front end of fpview.
//
// The package is split into several files:
//   - executor.go: executor and program lifecycle
//   - model.go: model structure and messages
//   - keys.go: key bindings
//   - update.go: Bubble Tea Update and message handling
//   - view.go: Bubble Tea View and rendering
//   - helpers.go: markup decoding and highlighting
//   - styles.go: colors and styles
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/panel"
)

// Options wires the executor to a scan session.
type Options struct {
	Controller *controller.Controller
	Dispatcher *controller.Dispatcher
	Panel      *panel.Panel

	// HighlightStyle is the chroma style for the raw JSON view.
	HighlightStyle string
	Logger         *logging.Logger
}

// Executor runs the result panel in the terminal.
type Executor struct {
	opts    Options
	program *tea.Program
}

// NewExecutor creates a TUI executor.
func NewExecutor(opts Options) *Executor {
	return &Executor{opts: opts}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
// Collector initialization runs as the first command of the program.
func (e *Executor) Run(ctx context.Context) error {
	if e.opts.Controller == nil || e.opts.Dispatcher == nil || e.opts.Panel == nil {
		return fmt.Errorf("tui: controller, dispatcher and panel are required")
	}

	m := newModel(ctx, e.opts)

	e.program = tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	// Clipboard confirmations revert on a timer, outside any Update call.
	e.opts.Panel.OnChange(func() {
		go e.program.Send(panelChangedMsg{})
	})
	defer e.opts.Panel.OnChange(nil)

	if _, err := e.program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}
	return nil
}
