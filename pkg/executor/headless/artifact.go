package headless

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/entrhq/fpview/pkg/fingerprint"
	"github.com/entrhq/fpview/pkg/page"
	"github.com/entrhq/fpview/pkg/panel"
)

// ArtifactWriter writes the files named in an ArtifactConfig.
type ArtifactWriter struct {
	config   ArtifactConfig
	redactor *fingerprint.Redactor
}

// NewArtifactWriter creates a new artifact writer
func NewArtifactWriter(config ArtifactConfig, redactor *fingerprint.Redactor) *ArtifactWriter {
	return &ArtifactWriter{config: config, redactor: redactor}
}

// WriteResults writes the page and export artifacts and returns the paths written.
func (w *ArtifactWriter) WriteResults(snap panel.Snapshot, rec *fingerprint.Record) ([]string, error) {
	var written []string

	if path := w.config.HTML; path != "" {
		if err := w.WriteHTML(path, snap); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if path := w.config.Export; path != "" && rec != nil {
		if err := w.WriteExport(path, rec); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// WriteHTML renders the panel as a standalone page
func (w *ArtifactWriter) WriteHTML(path string, snap panel.Snapshot) error {
	err := writeFile(path, func(out io.Writer) error {
		return page.Render(out, page.Document{Snapshot: snap})
	})
	if err != nil {
		return fmt.Errorf("failed to write HTML page: %w", err)
	}
	return nil
}

// WriteExport writes the record in the format implied by the file extension
func (w *ArtifactWriter) WriteExport(path string, rec *fingerprint.Record) error {
	err := writeFile(path, func(out io.Writer) error {
		return fingerprint.Export(out, rec, fingerprint.FormatForPath(path), w.redactor)
	})
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// WriteSummary writes the run summary as JSON, if configured.
func (w *ArtifactWriter) WriteSummary(summary *ScanSummary) error {
	if w.config.Summary == "" {
		return nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan summary: %w", err)
	}

	err = writeFile(w.config.Summary, func(out io.Writer) error {
		_, werr := out.Write(append(data, '\n'))
		return werr
	})
	if err != nil {
		return fmt.Errorf("failed to write summary JSON: %w", err)
	}
	return nil
}

// writeFile renders into memory first so a failed render leaves no partial file.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// ScanSummary contains a complete summary of a headless run
type ScanSummary struct {
	Status    string        `json:"status"`
	Outcome   string        `json:"outcome"`
	Hash      string        `json:"fingerprint_hash,omitempty"`
	Error     string        `json:"error,omitempty"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Artifacts []string      `json:"artifacts,omitempty"`
}
