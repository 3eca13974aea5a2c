package controller

import "sync"

const (
	ShowRawLabel = "Show Raw JSON"
	HideRawLabel = "Hide Raw JSON"
)

// RawPanel is the raw-view panel and its toggle control.
type RawPanel interface {
	SetRawVisible(visible bool)
	SetToggleLabel(label string)
}

// JSONToggle flips the raw view and keeps the toggle label in step with it.
type JSONToggle struct {
	mu      sync.Mutex
	panel   RawPanel
	visible bool
}

// NewJSONToggle applies the initial visibility to panel.
func NewJSONToggle(panel RawPanel, visible bool) *JSONToggle {
	t := &JSONToggle{panel: panel, visible: visible}
	t.apply()
	return t
}

// Toggle flips visibility and returns the new value.
func (t *JSONToggle) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = !t.visible
	t.apply()
	return t.visible
}

// Visible reports whether the raw view is shown.
func (t *JSONToggle) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

func (t *JSONToggle) apply() {
	t.panel.SetRawVisible(t.visible)
	if t.visible {
		t.panel.SetToggleLabel(HideRawLabel)
	} else {
		t.panel.SetToggleLabel(ShowRawLabel)
	}
}
