package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/entrhq/fpview/pkg/clipboard"
	"github.com/entrhq/fpview/pkg/collector"
	fperrors "github.com/entrhq/fpview/pkg/errors"
	ft "github.com/entrhq/fpview/pkg/fingerprint/fingerprinttest"
	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/panel"
)

const fixtureHash = "3b7f0a9c5d1e2f4a6b8c0d2e4f6a8b0c1d3e5f7a9b1c3d5e7f9a1b3c5d7e9f0a"

type copyRecorder struct{ texts []string }

func (r *copyRecorder) WriteAll(text string) error {
	r.texts = append(r.texts, text)
	return nil
}

type brokenCollector struct{}

func (brokenCollector) Init(context.Context) (collector.Handle, error) {
	return nil, errors.New("browser binary missing")
}

type testSession struct {
	model     *model
	panel     *panel.Panel
	clipboard *copyRecorder
	clock     *clocktesting.FakeClock
}

func newTestSession(t *testing.T, c collector.Collector) *testSession {
	t.Helper()

	clk := clocktesting.NewFakeClock(time.Unix(1700000000, 0))
	p := panel.New()
	binding := collector.NewBinding(c, nil)
	ctrl := controller.New(binding, p, controller.Config{Clock: clk})

	rec := &copyRecorder{}
	cb := clipboard.New(clipboard.WithWriter(rec), clipboard.WithClock(clk))
	t.Cleanup(cb.Close)

	d := controller.NewStandardDispatcher(controller.Bindings{
		Controller:  ctrl,
		Clipboard:   cb,
		CopyControl: p.CopyButton(),
		Toggle:      controller.NewJSONToggle(p, false),
	})

	m := newModel(context.Background(), Options{Controller: ctrl, Dispatcher: d, Panel: p})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return &testSession{model: m, panel: p, clipboard: rec, clock: clk}
}

// start runs collector initialization the way Init's command would.
func (s *testSession) start() {
	s.model.Update(s.model.initialize())
}

// press sends a key and runs the resulting command synchronously.
func (s *testSession) press(k tea.KeyMsg) tea.Msg {
	_, cmd := s.model.Update(k)
	if cmd == nil {
		return nil
	}
	msg := cmd()
	s.model.Update(msg)
	return msg
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func staticCollector(text string) collector.Func {
	return func(context.Context) (string, error) { return text, nil }
}

func TestModel_ScanRendersResults(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	assert.Contains(t, s.model.View(), "Starting collector")

	s.start()
	assert.False(t, s.model.initializing)
	assert.Contains(t, s.model.View(), "Press s to scan")

	msg := s.press(runes("s"))
	require.IsType(t, intentDoneMsg{}, msg)
	assert.NoError(t, msg.(intentDoneMsg).err)

	view := s.model.View()
	assert.Contains(t, view, fixtureHash)
	assert.Contains(t, view, "Identity")
	assert.Contains(t, view, "Hardware")
	assert.Contains(t, view, "PDF Viewer (Portable Document Format)")
	assert.NotContains(t, s.model.lastBody, "Raw JSON")
	assert.Equal(t, panel.ScanLabel, s.panel.Snapshot().TriggerLabel)
}

func TestModel_EnterAlsoScans(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	s.start()

	s.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, s.panel.Snapshot().Rendered)
}

func TestModel_ScanIgnoredWhileStarting(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))

	assert.Nil(t, s.press(runes("s")))
	assert.Equal(t, "Collector is still starting", s.model.status)
	assert.False(t, s.panel.Snapshot().Rendered)
}

func TestModel_ToggleRawJSON(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	s.start()

	// nothing to show before the first scan
	assert.Nil(t, s.press(runes("j")))
	assert.False(t, s.panel.Snapshot().RawVisible)

	s.press(runes("s"))
	s.press(runes("j"))
	snap := s.panel.Snapshot()
	assert.True(t, snap.RawVisible)
	assert.Equal(t, controller.HideRawLabel, snap.ToggleLabel)
	assert.Contains(t, s.model.lastBody, "Raw JSON")
	assert.Contains(t, s.model.lastBody, "fingerprint_hash")

	s.press(runes("j"))
	assert.False(t, s.panel.Snapshot().RawVisible)
	assert.NotContains(t, s.model.lastBody, "fingerprint_hash")
}

func TestModel_CopyHash(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	s.start()
	s.press(runes("s"))

	msg := s.press(runes("c"))
	require.IsType(t, intentDoneMsg{}, msg)
	assert.NoError(t, msg.(intentDoneMsg).err)
	assert.Equal(t, []string{fixtureHash}, s.clipboard.texts)
	assert.Equal(t, clipboard.CopiedLabel, s.panel.Snapshot().Copy.Label)
	assert.Contains(t, s.model.View(), clipboard.CopiedLabel)

	s.clock.Step(clipboard.DefaultConfirmationWindow)
	s.model.Update(panelChangedMsg{})
	assert.Equal(t, panel.CopyLabel, s.panel.Snapshot().Copy.Label)
	assert.NotContains(t, s.model.View(), clipboard.CopiedLabel)
}

func TestModel_CopyWithoutHashShowsStatus(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	s.start()

	msg := s.press(runes("c"))
	require.IsType(t, intentDoneMsg{}, msg)
	assert.True(t, fperrors.IsCode(msg.(intentDoneMsg).err, fperrors.ErrCodeClipboard))
	assert.Contains(t, s.model.status, "Error:")
	assert.Empty(t, s.clipboard.texts)
	assert.Contains(t, s.model.View(), s.model.status)
}

func TestModel_InitFailureDisablesScan(t *testing.T) {
	s := newTestSession(t, brokenCollector{})
	s.start()

	snap := s.panel.Snapshot()
	assert.False(t, snap.TriggerEnabled)
	assert.True(t, snap.ErrorVisible)
	assert.Contains(t, s.model.View(), fperrors.InitFailedMessage)

	assert.Nil(t, s.press(runes("s")))
	assert.False(t, s.panel.Snapshot().Rendered)
}

func TestModel_ScanFailureShowsError(t *testing.T) {
	s := newTestSession(t, staticCollector("{not json"))
	s.start()
	s.press(runes("s"))

	snap := s.panel.Snapshot()
	assert.True(t, snap.ErrorVisible)
	assert.True(t, snap.TriggerEnabled)
	assert.Contains(t, s.model.View(), "malformed JSON")
	assert.NotContains(t, s.model.View(), fixtureHash)
}

func TestModel_Quit(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := s.model.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_ScrollKeysLeaveToggleAlone(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	s.start()
	s.press(runes("s"))

	s.model.Update(tea.WindowSizeMsg{Width: 120, Height: 12})
	s.model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, s.model.viewport.YOffset)
	assert.False(t, s.panel.Snapshot().RawVisible)

	assert.NotContains(t, s.model.viewport.KeyMap.Down.Keys(), "j")
	assert.Contains(t, viewport.DefaultKeyMap().Down.Keys(), "j")
}

func TestModel_BannerNeedsHeight(t *testing.T) {
	s := newTestSession(t, staticCollector(ft.JSON()))
	assert.Contains(t, s.model.View(), "██████╗")

	s.model.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	assert.NotContains(t, s.model.View(), "██████╗")
	assert.Contains(t, s.model.View(), "◆ fpview")
}
