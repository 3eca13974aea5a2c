package fingerprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the serialization used by Export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// Redacted replaces the value of every redacted field.
const Redacted = "[redacted]"

// FormatForPath picks an export format from a file extension, defaulting to JSON.
func FormatForPath(path string) ExportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ExportYAML
	default:
		return ExportJSON
	}
}

// Redactor blanks fields whose names match any of its glob patterns.
type Redactor struct {
	patterns []glob.Glob
}

// NewRedactor compiles comma-separated or individual glob patterns such as
// "canvas_*" or "webgl_{vendor,renderer}".
func NewRedactor(patterns ...string) (*Redactor, error) {
	r := &Redactor{}
	for _, p := range patterns {
		for _, part := range splitPatterns(p) {
			g, err := glob.Compile(part)
			if err != nil {
				return nil, fmt.Errorf("invalid redact pattern %q: %w", part, err)
			}
			r.patterns = append(r.patterns, g)
		}
	}
	return r, nil
}

// splitPatterns splits on commas outside of {...} alternations.
func splitPatterns(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = appendTrimmed(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		parts = append(parts, s)
	}
	return parts
}

// Match reports whether field is redacted.
func (r *Redactor) Match(field string) bool {
	if r == nil {
		return false
	}
	for _, g := range r.patterns {
		if g.Match(field) {
			return true
		}
	}
	return false
}

// Export writes rec to w in the given format, keeping the collector's field
// order and replacing redacted fields with Redacted.
func Export(w io.Writer, rec *Record, format ExportFormat, redactor *Redactor) error {
	switch format {
	case ExportJSON:
		return exportJSON(w, rec, redactor)
	case ExportYAML:
		return exportYAML(w, rec, redactor)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func exportJSON(w io.Writer, rec *Record, redactor *Redactor) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var encErr error
	gjson.Parse(rec.Raw()).ForEach(func(key, value gjson.Result) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(key.String())
		if err != nil {
			encErr = err
			return false
		}
		buf.Write(k)
		buf.WriteByte(':')
		if redactor.Match(key.String()) {
			buf.WriteString(`"` + Redacted + `"`)
		} else {
			buf.WriteString(value.Raw)
		}
		return true
	})
	if encErr != nil {
		return fmt.Errorf("failed to encode record: %w", encErr)
	}
	buf.WriteByte('}')

	if _, err := w.Write(pretty.Pretty(buf.Bytes())); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func exportYAML(w io.Writer, rec *Record, redactor *Redactor) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	var nodeErr error
	gjson.Parse(rec.Raw()).ForEach(func(key, value gjson.Result) bool {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key.String()}
		valueNode := &yaml.Node{}
		var v any = Redacted
		if !redactor.Match(key.String()) {
			v = value.Value()
		}
		if err := valueNode.Encode(v); err != nil {
			nodeErr = fmt.Errorf("failed to encode field %s: %w", key.String(), err)
			return false
		}
		doc.Content = append(doc.Content, keyNode, valueNode)
		return true
	})
	if nodeErr != nil {
		return nodeErr
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return enc.Close()
}
