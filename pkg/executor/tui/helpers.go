package tui

import (
	"bytes"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/entrhq/fpview/pkg/presenter"
)

// renderValue styles a slot value for display.
func renderValue(s string) string {
	p := presenter.Decode(s)
	switch p.Badge {
	case presenter.BadgeSuccess:
		return successBadgeStyle.Render("● " + p.Text)
	case presenter.BadgeFailure:
		return failureBadgeStyle.Render("○ " + p.Text)
	default:
		return valueStyle.Render(p.Text)
	}
}

// plain decodes a slot value without styling.
func plain(s string) string {
	return presenter.Decode(s).Text
}

// highlightJSON colors src with the named chroma style, returning src
// unchanged if highlighting fails.
func highlightJSON(src, style string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, src, "json", "terminal256", style); err != nil {
		return src
	}
	return buf.String()
}
