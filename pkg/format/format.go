// Package format holds the pure display formatters used by the presenter.
// Every function here is side-effect free and safe for concurrent use.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// Truncate shortens s to at most n characters followed by an ellipsis.
// Strings of n characters or fewer are returned unchanged. Length is counted
// in runes so multi-byte text is never split mid-character.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + Ellipsis
}

// FormatTimezoneOffset renders an offset in minutes as UTC±HH:MM.
//
// The sign is inverted relative to the input: offsets reported as minutes
// behind UTC (positive west of Greenwich) display as a negative UTC offset,
// so 0 and negative values get "+".
func FormatTimezoneOffset(offset int) string {
	abs := offset
	if abs < 0 {
		abs = -abs
	}
	sign := "+"
	if offset > 0 {
		sign = "-"
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, abs/60, abs%60)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes &, <, >, " and ' for insertion into markup.
//
// It is not idempotent: escaping already escaped text escapes the ampersands
// again ("&lt;" becomes "&amp;lt;").
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Badge CSS classes. The TUI maps them back to colors.
const (
	BadgeClassSuccess = "status-badge success"
	BadgeClassFailure = "status-badge failure"
)

// StatusBadge renders a two-state badge. Labels default to "Yes" and "No";
// pass a true label and a false label to override them.
func StatusBadge(ok bool, labels ...string) string {
	trueLabel, falseLabel := "Yes", "No"
	if len(labels) > 0 {
		trueLabel = labels[0]
	}
	if len(labels) > 1 {
		falseLabel = labels[1]
	}
	if ok {
		return fmt.Sprintf(`<span class="%s">%s</span>`, BadgeClassSuccess, EscapeHTML(trueLabel))
	}
	return fmt.Sprintf(`<span class="%s">%s</span>`, BadgeClassFailure, EscapeHTML(falseLabel))
}

// LanguageWithCount appends " (+N more)" when more than one language is listed.
func LanguageWithCount(language string, languages []string) string {
	if len(languages) > 1 {
		return fmt.Sprintf("%s (+%d more)", language, len(languages)-1)
	}
	return language
}

// Fallbacks used for absent values.
const (
	NotSet            = "Not set"
	Unknown           = "Unknown"
	NoneDetected      = "None detected"
	NoPluginsDetected = "No plugins detected"
)

// OptionalString returns the value or fallback when nil.
func OptionalString(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// OptionalInt returns the decimal value or "Unknown" when nil.
func OptionalInt(v *int) string {
	if v == nil {
		return Unknown
	}
	return strconv.Itoa(*v)
}

// Memory renders device memory as "{value} GB", or "Unknown" when nil.
func Memory(gb *float64) string {
	if gb == nil {
		return Unknown
	}
	return strconv.FormatFloat(*gb, 'f', -1, 64) + " GB"
}

// PixelRatio renders a ratio with exactly two decimals.
func PixelRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// Resolution renders "W × H".
func Resolution(w, h int) string {
	return fmt.Sprintf("%d × %d", w, h)
}

// ColorDepth renders "{bits}-bit".
func ColorDepth(bits int) string {
	return fmt.Sprintf("%d-bit", bits)
}

// JoinOr joins items with ", " or returns empty when there are none.
func JoinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
