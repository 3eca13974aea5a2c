package headless

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/fpview/pkg/fingerprint"
)

// Config represents the configuration for a headless run.
type Config struct {
	// Timeout bounds initialization plus the scan. Zero means no limit.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// Artifacts configuration
	Artifacts ArtifactConfig `yaml:"artifacts" json:"artifacts"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ArtifactConfig names the files written after a scan. Empty paths are skipped.
type ArtifactConfig struct {
	HTML    string `yaml:"html" json:"html"`
	Export  string `yaml:"export" json:"export"`
	Summary string `yaml:"summary" json:"summary"`

	// Redact lists glob patterns of record fields masked in the export.
	Redact []string `yaml:"redact" json:"redact"`
}

// LoggingConfig defines report output.
type LoggingConfig struct {
	// Verbosity controls the report: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`
	NoColor   bool   `yaml:"no_color" json:"no_color"`
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}
	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	if _, err := c.redactor(); err != nil {
		return fmt.Errorf("invalid redact pattern: %w", err)
	}

	if a := c.Artifacts; a.HTML != "" && (a.HTML == a.Export || a.HTML == a.Summary) ||
		a.Export != "" && a.Export == a.Summary {
		return fmt.Errorf("artifact paths must be distinct")
	}

	return nil
}

func (c *Config) redactor() (*fingerprint.Redactor, error) {
	if len(c.Artifacts.Redact) == 0 {
		return nil, nil
	}
	return fingerprint.NewRedactor(c.Artifacts.Redact...)
}

// DefaultConfig returns a configuration that prints the report and writes nothing.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 2 * time.Minute,
		Logging: LoggingConfig{Verbosity: "normal"},
	}
}

// LoadConfig reads a YAML run configuration on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read headless config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse headless config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
