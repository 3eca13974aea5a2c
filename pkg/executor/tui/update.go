package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/fpview/pkg/controller"
)

// Init starts the spinner and loads the collector.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initialize)
}

func (m *model) initialize() tea.Msg {
	return initDoneMsg{err: m.controller.Initialize(m.ctx)}
}

// Update handles all state updates for the TUI model.
// The panel is read fresh on every message, so any message also redraws it.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case tea.KeyMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			m.refresh()
			return m, cmd
		}
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)

	case tea.MouseMsg:
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)

	case spinner.TickMsg:
		var spCmd tea.Cmd
		m.spinner, spCmd = m.spinner.Update(msg)
		cmds = append(cmds, spCmd)

	case initDoneMsg:
		m.initializing = false
		if msg.err != nil {
			m.logger.Errorf("Collector initialization failed: %v", msg.err)
		}

	case intentDoneMsg:
		m.handleIntentDone(msg)

	case panelChangedMsg:
		// redraw only
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// handleKeyPress maps keys onto intents. The returned command runs the intent
// off the event loop; scans block for at least the minimum scan latency.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Scan):
		if m.initializing {
			m.status = "Collector is still starting"
			return nil, true
		}
		if !m.panel.Snapshot().TriggerEnabled {
			return nil, true
		}
		m.status = ""
		return m.dispatch(controller.IntentScan), true

	case key.Matches(msg, m.keys.Copy):
		m.status = ""
		return m.dispatch(controller.IntentCopyHash), true

	case key.Matches(msg, m.keys.Toggle):
		if !m.panel.Snapshot().Rendered {
			return nil, true
		}
		return m.dispatch(controller.IntentToggleJSON), true
	}
	return nil, false
}

func (m *model) dispatch(intent controller.Intent) tea.Cmd {
	return func() tea.Msg {
		return intentDoneMsg{intent: intent, err: m.dispatcher.Dispatch(m.ctx, intent)}
	}
}

func (m *model) handleIntentDone(msg intentDoneMsg) {
	if msg.err == nil {
		return
	}
	m.logger.Warnf("Intent %s failed: %v", msg.intent, msg.err)
	m.status = controller.ErrorText(msg.err)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width = max(msg.Width-2, 10)
	m.ready = true
	m.lastBody = ""
}

// refresh pushes the panel body into the viewport and sizes it to the space
// left by the chrome around it.
func (m *model) refresh() {
	snap := m.panel.Snapshot()

	body := m.buildBody(snap)
	if body != m.lastBody {
		m.viewport.SetContent(body)
		m.lastBody = body
	}

	if m.height == 0 {
		return
	}
	chrome := lipgloss.Height(m.buildChrome(snap)) + lipgloss.Height(m.buildBottomBar())
	m.viewport.Height = max(m.height-chrome, 3)
}
