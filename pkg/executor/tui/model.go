package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/panel"
)

// model represents the state of the TUI application.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	// Scan integration
	ctx        context.Context
	controller *controller.Controller
	dispatcher *controller.Dispatcher
	panel      *panel.Panel
	logger     *logging.Logger

	highlightStyle string

	// UI state
	initializing bool
	status       string // feedback for the last failed action
	lastBody     string // viewport content, to keep the scroll position between renders

	// Window dimensions
	width  int
	height int
	ready  bool
}

// initDoneMsg reports the outcome of collector initialization.
type initDoneMsg struct{ err error }

// intentDoneMsg reports the outcome of a dispatched intent.
type intentDoneMsg struct {
	intent controller.Intent
	err    error
}

// panelChangedMsg asks for a redraw after the panel changed outside Update.
type panelChangedMsg struct{}

func newModel(ctx context.Context, opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle.Padding(0)

	vp := viewport.New(80, 20)
	// j is the raw-view toggle, so line scrolling stays on the arrow keys.
	vp.KeyMap.Up = key.NewBinding(key.WithKeys("up"))
	vp.KeyMap.Down = key.NewBinding(key.WithKeys("down"))

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard("tui")
	}
	style := opts.HighlightStyle
	if style == "" {
		style = "dracula"
	}

	return &model{
		viewport:       vp,
		spinner:        s,
		help:           help.New(),
		keys:           defaultKeyMap(),
		ctx:            ctx,
		controller:     opts.Controller,
		dispatcher:     opts.Dispatcher,
		panel:          opts.Panel,
		logger:         logger,
		highlightStyle: style,
		initializing:   true,
	}
}
