// Package fingerprint defines the FingerprintRecord produced by a collector and
// the validation that turns collector text into a Record.
package fingerprint

import (
	"github.com/tidwall/pretty"
)

// Record is one snapshot of browser and device attributes.
//
// A Record is immutable once parsed. Nullable collector values are pointers.
type Record struct {
	FingerprintHash string `json:"fingerprint_hash" yaml:"fingerprint_hash"`

	UserAgent     string   `json:"user_agent" yaml:"user_agent"`
	Language      string   `json:"language" yaml:"language"`
	Languages     []string `json:"languages" yaml:"languages"`
	Platform      string   `json:"platform" yaml:"platform"`
	CookieEnabled bool     `json:"cookie_enabled" yaml:"cookie_enabled"`
	DoNotTrack    *string  `json:"do_not_track" yaml:"do_not_track"`
	Online        bool     `json:"online" yaml:"online"`

	HardwareConcurrency *int     `json:"hardware_concurrency" yaml:"hardware_concurrency"`
	DeviceMemory        *float64 `json:"device_memory" yaml:"device_memory"`
	MaxTouchPoints      int      `json:"max_touch_points" yaml:"max_touch_points"`

	ScreenWidth       int     `json:"screen_width" yaml:"screen_width"`
	ScreenHeight      int     `json:"screen_height" yaml:"screen_height"`
	ScreenAvailWidth  int     `json:"screen_avail_width" yaml:"screen_avail_width"`
	ScreenAvailHeight int     `json:"screen_avail_height" yaml:"screen_avail_height"`
	ScreenColorDepth  int     `json:"screen_color_depth" yaml:"screen_color_depth"`
	ScreenPixelDepth  *int    `json:"screen_pixel_depth,omitempty" yaml:"screen_pixel_depth,omitempty"`
	DevicePixelRatio  float64 `json:"device_pixel_ratio" yaml:"device_pixel_ratio"`

	Timezone       string `json:"timezone" yaml:"timezone"`
	TimezoneOffset int    `json:"timezone_offset" yaml:"timezone_offset"`

	LocalStorage   bool `json:"local_storage" yaml:"local_storage"`
	SessionStorage bool `json:"session_storage" yaml:"session_storage"`
	IndexedDB      bool `json:"indexed_db" yaml:"indexed_db"`

	CanvasFingerprint string `json:"canvas_fingerprint" yaml:"canvas_fingerprint"`

	WebGLVendor                 string   `json:"webgl_vendor" yaml:"webgl_vendor"`
	WebGLRenderer               string   `json:"webgl_renderer" yaml:"webgl_renderer"`
	WebGLVersion                string   `json:"webgl_version" yaml:"webgl_version"`
	WebGLShadingLanguageVersion string   `json:"webgl_shading_language_version" yaml:"webgl_shading_language_version"`
	WebGLExtensions             []string `json:"webgl_extensions" yaml:"webgl_extensions"`

	AudioFingerprint *string  `json:"audio_fingerprint,omitempty" yaml:"audio_fingerprint,omitempty"`
	Plugins          []string `json:"plugins" yaml:"plugins"`
	MimeTypes        []string `json:"mime_types,omitempty" yaml:"mime_types,omitempty"`

	raw string
}

// Raw returns the collector text the record was parsed from.
func (r *Record) Raw() string {
	return r.raw
}

// Pretty returns the raw text indented two spaces per level, keeping the
// collector's key order.
func (r *Record) Pretty() string {
	out := pretty.PrettyOptions([]byte(r.raw), &pretty.Options{
		Width:  80,
		Indent: "  ",
	})
	return string(trimNewline(out))
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return b
}
