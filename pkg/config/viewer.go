package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/alecthomas/chroma/v2/styles"
)

const (
	// SectionIDViewer is the identifier for the viewer settings section
	SectionIDViewer = "viewer"

	defaultMinScanLatency         = 800 * time.Millisecond
	defaultCopyConfirmationWindow = 2 * time.Second
	defaultUserAgentMaxLength     = 80
	defaultRawViewVisible         = false
	defaultHighlightStyle         = "dracula"
)

// ViewerSettings is a snapshot of the viewer section.
type ViewerSettings struct {
	MinScanLatency         time.Duration
	CopyConfirmationWindow time.Duration
	UserAgentMaxLength     int
	RawViewVisible         bool
	HighlightStyle         string
}

// ViewerSection controls scan timing and presentation.
type ViewerSection struct {
	mu       sync.RWMutex
	settings ViewerSettings
}

// NewViewerSection creates a viewer section with default settings.
func NewViewerSection() *ViewerSection {
	s := &ViewerSection{}
	s.Reset()
	return s
}

func (s *ViewerSection) ID() string    { return SectionIDViewer }
func (s *ViewerSection) Title() string { return "Viewer" }

func (s *ViewerSection) Description() string {
	return "Scan timing, copy confirmation, user agent truncation and raw JSON view."
}

// Data returns the current configuration data.
func (s *ViewerSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"min_scan_latency":         s.settings.MinScanLatency.String(),
		"copy_confirmation_window": s.settings.CopyConfirmationWindow.String(),
		"user_agent_max_length":    s.settings.UserAgentMaxLength,
		"raw_view_visible":         s.settings.RawViewVisible,
		"highlight_style":          s.settings.HighlightStyle,
	}
}

// SetData updates the configuration from the provided data.
func (s *ViewerSection) SetData(data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	var err error
	for key, value := range data {
		switch key {
		case "min_scan_latency":
			next.MinScanLatency, err = durationValue(key, value)
		case "copy_confirmation_window":
			next.CopyConfirmationWindow, err = durationValue(key, value)
		case "user_agent_max_length":
			next.UserAgentMaxLength, err = intValue(key, value)
		case "raw_view_visible":
			next.RawViewVisible, err = boolValue(key, value)
		case "highlight_style":
			next.HighlightStyle, err = stringValue(key, value)
		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
		if err != nil {
			return err
		}
	}
	s.settings = next
	return nil
}

// Validate validates the current configuration.
func (s *ViewerSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings.MinScanLatency < 0 {
		return fmt.Errorf("min_scan_latency must not be negative, got %v", s.settings.MinScanLatency)
	}
	if s.settings.CopyConfirmationWindow <= 0 {
		return fmt.Errorf("copy_confirmation_window must be positive, got %v", s.settings.CopyConfirmationWindow)
	}
	if s.settings.UserAgentMaxLength <= 0 {
		return fmt.Errorf("user_agent_max_length must be positive, got %d", s.settings.UserAgentMaxLength)
	}
	if _, ok := styles.Registry[s.settings.HighlightStyle]; !ok {
		return fmt.Errorf("unknown highlight_style %q", s.settings.HighlightStyle)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *ViewerSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = ViewerSettings{
		MinScanLatency:         defaultMinScanLatency,
		CopyConfirmationWindow: defaultCopyConfirmationWindow,
		UserAgentMaxLength:     defaultUserAgentMaxLength,
		RawViewVisible:         defaultRawViewVisible,
		HighlightStyle:         defaultHighlightStyle,
	}
}

// Settings returns a copy of the current settings.
func (s *ViewerSection) Settings() ViewerSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetMinScanLatency overrides the minimum scan latency.
func (s *ViewerSection) SetMinScanLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.MinScanLatency = d
}
