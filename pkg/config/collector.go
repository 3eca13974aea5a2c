package config

import (
	"fmt"
	"sync"
	"time"
)

const (
	// SectionIDCollector is the identifier for the collector settings section
	SectionIDCollector = "collector"

	// SourceBrowser probes a Playwright-driven Chromium.
	SourceBrowser = "browser"

	// SourceFile replays a record saved as JSON.
	SourceFile = "file"

	defaultViewportWidth    = 1280
	defaultViewportHeight   = 720
	defaultCollectorTimeout = 30 * time.Second
)

// CollectorSettings is a snapshot of the collector section.
type CollectorSettings struct {
	Source         string
	RecordPath     string
	Headless       bool
	ViewportWidth  int
	ViewportHeight int
	Locale         string
	TimezoneID     string
	Timeout        time.Duration
}

// CollectorSection selects and tunes the fingerprint collector.
type CollectorSection struct {
	mu       sync.RWMutex
	settings CollectorSettings
}

// NewCollectorSection creates a collector section with default settings.
func NewCollectorSection() *CollectorSection {
	s := &CollectorSection{}
	s.Reset()
	return s
}

func (s *CollectorSection) ID() string    { return SectionIDCollector }
func (s *CollectorSection) Title() string { return "Collector" }

func (s *CollectorSection) Description() string {
	return "Where fingerprints come from: a headless browser or a saved record file."
}

// Data returns the current configuration data.
func (s *CollectorSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"source":          s.settings.Source,
		"record_path":     s.settings.RecordPath,
		"headless":        s.settings.Headless,
		"viewport_width":  s.settings.ViewportWidth,
		"viewport_height": s.settings.ViewportHeight,
		"locale":          s.settings.Locale,
		"timezone_id":     s.settings.TimezoneID,
		"timeout":         s.settings.Timeout.String(),
	}
}

// SetData updates the configuration from the provided data.
func (s *CollectorSection) SetData(data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	var err error
	for key, value := range data {
		switch key {
		case "source":
			next.Source, err = stringValue(key, value)
		case "record_path":
			next.RecordPath, err = stringValue(key, value)
		case "headless":
			next.Headless, err = boolValue(key, value)
		case "viewport_width":
			next.ViewportWidth, err = intValue(key, value)
		case "viewport_height":
			next.ViewportHeight, err = intValue(key, value)
		case "locale":
			next.Locale, err = stringValue(key, value)
		case "timezone_id":
			next.TimezoneID, err = stringValue(key, value)
		case "timeout":
			next.Timeout, err = durationValue(key, value)
		default:
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
func (s *CollectorSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.settings.Source {
	case SourceBrowser:
	case SourceFile:
		if s.settings.RecordPath == "" {
			return fmt.Errorf("record_path is required when source is %q", SourceFile)
		}
	default:
		return fmt.Errorf("unknown source %q (want %q or %q)", s.settings.Source, SourceBrowser, SourceFile)
	}
	if s.settings.ViewportWidth <= 0 || s.settings.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", s.settings.ViewportWidth, s.settings.ViewportHeight)
	}
	if s.settings.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %v", s.settings.Timeout)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *CollectorSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = CollectorSettings{
		Source:         SourceBrowser,
		Headless:       true,
		ViewportWidth:  defaultViewportWidth,
		ViewportHeight: defaultViewportHeight,
		Timeout:        defaultCollectorTimeout,
	}
}

// Settings returns a copy of the current settings.
func (s *CollectorSection) Settings() CollectorSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UseRecordFile switches the source to a saved record.
func (s *CollectorSection) UseRecordFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Source = SourceFile
	s.settings.RecordPath = path
}

// SetHeadless overrides headless mode.
func (s *CollectorSection) SetHeadless(headless bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Headless = headless
}
