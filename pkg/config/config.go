package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Load opens the store at configPath (DefaultPath when empty), registers the
// viewer and collector sections and loads them.
func Load(configPath string) (*Manager, error) {
	store, err := NewFileStore(configPath)
	if err != nil {
		return nil, err
	}

	manager := NewManager(store)
	if err := manager.RegisterSection(NewViewerSection()); err != nil {
		return nil, err
	}
	if err := manager.RegisterSection(NewCollectorSection()); err != nil {
		return nil, err
	}
	if err := manager.LoadAll(); err != nil {
		return nil, err
	}
	return manager, nil
}

// Initialize loads the configuration into the global manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	manager, err := Load(configPath)
	if err != nil {
		return err
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}
	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// Viewer returns the viewer section of m.
func (m *Manager) Viewer() *ViewerSection {
	if section, ok := m.GetSection(SectionIDViewer); ok {
		if viewer, ok := section.(*ViewerSection); ok {
			return viewer
		}
	}
	return NewViewerSection()
}

// Collector returns the collector section of m.
func (m *Manager) Collector() *CollectorSection {
	if section, ok := m.GetSection(SectionIDCollector); ok {
		if c, ok := section.(*CollectorSection); ok {
			return c
		}
	}
	return NewCollectorSection()
}

// GetViewer returns the viewer section from global config.
// Returns nil if config is not initialized.
func GetViewer() *ViewerSection {
	if !IsInitialized() {
		return nil
	}
	return Global().Viewer()
}

// GetCollector returns the collector section from global config.
// Returns nil if config is not initialized.
func GetCollector() *CollectorSection {
	if !IsInitialized() {
		return nil
	}
	return Global().Collector()
}
