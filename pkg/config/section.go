// Package config holds fpview's persistent settings.
//
// Settings are grouped into Sections registered with a Manager. The Manager
// loads and saves every section through a Store; FileStore keeps them in
// ~/.fpview/config.json. Command-line flags are applied on top of the loaded
// values by the caller and are never written back.
package config

// Section is one named group of settings.
type Section interface {
	// ID is the key the section is stored under
	ID() string

	// Title is a short human-readable name
	Title() string

	// Description explains what the section controls
	Description() string

	// Data returns the settings as JSON-compatible values
	Data() map[string]any

	// SetData applies stored values. Unknown keys are ignored.
	SetData(data map[string]any) error

	// Validate reports the first invalid setting
	Validate() error

	// Reset restores defaults
	Reset()
}
