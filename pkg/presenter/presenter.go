// Package presenter maps a fingerprint.Record onto the named display slots of
// the result panel.
//
// Text slots are HTML-escaped and safe to insert into markup. Slots derived
// from numbers or booleans are safe by construction.
package presenter

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/entrhq/fpview/pkg/fingerprint"
	"github.com/entrhq/fpview/pkg/format"
)

// DefaultUserAgentLength is the user agent truncation limit.
const DefaultUserAgentLength = 80

// DisplayFields holds one rendered value per display slot.
type DisplayFields struct {
	Hash string

	UserAgent      string
	UserAgentTitle string
	Language       string
	LanguageTitle  string
	Platform       string
	Cookies        string
	DoNotTrack     string
	Online         string

	CPUCores     string
	DeviceMemory string
	TouchPoints  string

	ScreenResolution    string
	AvailableResolution string
	ColorDepth          string
	PixelRatio          string

	Timezone       string
	TimezoneOffset string

	LocalStorage   string
	SessionStorage string
	IndexedDB      string

	CanvasHash string

	WebGLVendor          string
	WebGLRenderer        string
	WebGLVersion         string
	WebGLShadingLanguage string
	WebGLExtensions      string

	Plugins []string

	RawJSON string
}

// Presenter renders records. The zero value is not usable; use New.
type Presenter struct {
	userAgentLength int
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithUserAgentLength overrides the user agent truncation limit.
func WithUserAgentLength(n int) Option {
	return func(p *Presenter) {
		if n > 0 {
			p.userAgentLength = n
		}
	}
}

// New creates a Presenter.
func New(opts ...Option) *Presenter {
	p := &Presenter{userAgentLength: DefaultUserAgentLength}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render derives every display slot from rec without modifying it.
func (p *Presenter) Render(rec *fingerprint.Record) DisplayFields {
	esc := format.EscapeHTML

	return DisplayFields{
		Hash: esc(rec.FingerprintHash),

		UserAgent:      esc(format.Truncate(rec.UserAgent, p.userAgentLength)),
		UserAgentTitle: esc(rec.UserAgent),
		Language:       esc(format.LanguageWithCount(rec.Language, rec.Languages)),
		LanguageTitle:  esc(languageTitle(rec.Languages, rec.Language)),
		Platform:       esc(rec.Platform),
		Cookies:        format.StatusBadge(rec.CookieEnabled),
		DoNotTrack:     esc(format.OptionalString(rec.DoNotTrack, format.NotSet)),
		Online:         format.StatusBadge(rec.Online, "Online", "Offline"),

		CPUCores:     format.OptionalInt(rec.HardwareConcurrency),
		DeviceMemory: format.Memory(rec.DeviceMemory),
		TouchPoints:  strconv.Itoa(rec.MaxTouchPoints),

		ScreenResolution:    format.Resolution(rec.ScreenWidth, rec.ScreenHeight),
		AvailableResolution: format.Resolution(rec.ScreenAvailWidth, rec.ScreenAvailHeight),
		ColorDepth:          format.ColorDepth(rec.ScreenColorDepth),
		PixelRatio:          format.PixelRatio(rec.DevicePixelRatio),

		Timezone:       esc(rec.Timezone),
		TimezoneOffset: format.FormatTimezoneOffset(rec.TimezoneOffset),

		LocalStorage:   format.StatusBadge(rec.LocalStorage),
		SessionStorage: format.StatusBadge(rec.SessionStorage),
		IndexedDB:      format.StatusBadge(rec.IndexedDB),

		CanvasHash: esc(rec.CanvasFingerprint),

		WebGLVendor:          esc(rec.WebGLVendor),
		WebGLRenderer:        esc(rec.WebGLRenderer),
		WebGLVersion:         esc(rec.WebGLVersion),
		WebGLShadingLanguage: esc(rec.WebGLShadingLanguageVersion),
		WebGLExtensions:      esc(format.JoinOr(rec.WebGLExtensions, format.NoneDetected)),

		Plugins: pluginItems(rec.Plugins),

		RawJSON: RawView(rec),
	}
}

// RawView renders the whole record as indented JSON for the raw panel.
// The result is plain text; escape it before inserting into markup.
func RawView(rec *fingerprint.Record) string {
	return rec.Pretty()
}

func pluginItems(plugins []string) []string {
	if len(plugins) == 0 {
		return []string{format.NoPluginsDetected}
	}
	items := make([]string, len(plugins))
	for i, p := range plugins {
		items[i] = format.EscapeHTML(p)
	}
	return items
}

// languageTitle names the primary language in English, e.g. "en-US" becomes
// "American English". The raw tag is kept when it does not parse.
func languageTitle(languages []string, primary string) string {
	tag := primary
	if tag == "" && len(languages) > 0 {
		tag = languages[0]
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	name := display.English.Tags().Name(parsed)
	if name == "" {
		return tag
	}
	return name
}
