// Package panel holds the state of the result panel shared between the scan
// controller, which writes it, and a renderer, which reads Snapshots of it.
package panel

import (
	"sync"

	"github.com/entrhq/fpview/pkg/clipboard"
	"github.com/entrhq/fpview/pkg/presenter"
)

const (
	// ScanLabel is the idle label of the scan trigger.
	ScanLabel = "Scan Fingerprint"

	// CopyLabel is the idle label of the copy-hash control.
	CopyLabel = "Copy Hash"
)

// Snapshot is a consistent copy of the panel state.
type Snapshot struct {
	TriggerLabel   string
	TriggerEnabled bool

	Loading        bool
	ResultsVisible bool
	Rendered       bool
	Fields         presenter.DisplayFields

	ErrorVisible bool
	ErrorMessage string

	RawVisible  bool
	ToggleLabel string

	Copy clipboard.ControlState
}

// Panel is a concurrency-safe presentation surface.
type Panel struct {
	mu       sync.RWMutex
	state    Snapshot
	onChange func()
}

// New returns a panel in its initial state: trigger enabled, nothing shown.
func New() *Panel {
	return &Panel{
		state: Snapshot{
			TriggerLabel:   ScanLabel,
			TriggerEnabled: true,
			Copy:           clipboard.ControlState{Label: CopyLabel},
		},
	}
}

// OnChange registers fn to run after every mutation, outside the lock.
func (p *Panel) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = fn
}

func (p *Panel) update(fn func(s *Snapshot)) {
	p.mu.Lock()
	fn(&p.state)
	notify := p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Snapshot returns a copy of the current state.
func (p *Panel) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := p.state
	s.Fields.Plugins = append([]string(nil), p.state.Fields.Plugins...)
	return s
}

func (p *Panel) SetTriggerEnabled(enabled bool) {
	p.update(func(s *Snapshot) { s.TriggerEnabled = enabled })
}

func (p *Panel) SetTriggerLabel(label string) {
	p.update(func(s *Snapshot) { s.TriggerLabel = label })
}

func (p *Panel) TriggerLabel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.TriggerLabel
}

func (p *Panel) ShowLoading() { p.update(func(s *Snapshot) { s.Loading = true }) }
func (p *Panel) HideLoading() { p.update(func(s *Snapshot) { s.Loading = false }) }
func (p *Panel) ShowResults() { p.update(func(s *Snapshot) { s.ResultsVisible = true }) }
func (p *Panel) HideResults() { p.update(func(s *Snapshot) { s.ResultsVisible = false }) }

// ShowError displays message on the error panel.
func (p *Panel) ShowError(message string) {
	p.update(func(s *Snapshot) {
		s.ErrorVisible = true
		s.ErrorMessage = message
	})
}

func (p *Panel) HideError() {
	p.update(func(s *Snapshot) { s.ErrorVisible = false })
}

// Render fills every display slot.
func (p *Panel) Render(fields presenter.DisplayFields) {
	p.update(func(s *Snapshot) {
		s.Fields = fields
		s.Rendered = true
	})
}

func (p *Panel) SetRawVisible(visible bool) {
	p.update(func(s *Snapshot) { s.RawVisible = visible })
}

func (p *Panel) SetToggleLabel(label string) {
	p.update(func(s *Snapshot) { s.ToggleLabel = label })
}

// CopyButton returns the copy-hash control as a clipboard.Control.
func (p *Panel) CopyButton() clipboard.Control {
	return copyButton{p}
}

type copyButton struct{ p *Panel }

func (b copyButton) ControlState() clipboard.ControlState {
	b.p.mu.RLock()
	defer b.p.mu.RUnlock()
	return b.p.state.Copy
}

func (b copyButton) SetControlState(cs clipboard.ControlState) {
	b.p.update(func(s *Snapshot) { s.Copy = cs })
}
