// Package fingerprinttest provides collector payloads for tests.
package fingerprinttest

import (
	"encoding/json"
	"fmt"
)

// Fields returns a complete, valid record payload as a map so tests can
// modify individual fields.
func Fields() map[string]any {
	return map[string]any{
		"user_agent":                     "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/131.0.0.0 Safari/537.36",
		"language":                       "en-US",
		"languages":                      []any{"en-US", "fr"},
		"platform":                       "Linux x86_64",
		"cookie_enabled":                 true,
		"do_not_track":                   nil,
		"hardware_concurrency":           8,
		"device_memory":                  8,
		"max_touch_points":               0,
		"screen_width":                   1920,
		"screen_height":                  1080,
		"screen_color_depth":             24,
		"screen_pixel_depth":             24,
		"screen_avail_width":             1920,
		"screen_avail_height":            1040,
		"device_pixel_ratio":             1,
		"timezone":                       "Europe/Paris",
		"timezone_offset":                -60,
		"local_storage":                  true,
		"session_storage":                true,
		"indexed_db":                     false,
		"canvas_fingerprint":             "9f2c1e0d7b4a",
		"webgl_vendor":                   "Google Inc. (Intel)",
		"webgl_renderer":                 "ANGLE (Intel, Mesa Intel(R) UHD Graphics 620)",
		"webgl_version":                  "WebGL 1.0 (OpenGL ES 2.0 Chromium)",
		"webgl_shading_language_version": "WebGL GLSL ES 1.0",
		"webgl_extensions":               []any{"ANGLE_instanced_arrays", "EXT_blend_minmax"},
		"audio_fingerprint":              "audio-context-available",
		"plugins":                        []any{"PDF Viewer (Portable Document Format)"},
		"mime_types":                     []any{"application/pdf"},
		"online":                         true,
		"fingerprint_hash":               "3b7f0a9c5d1e2f4a6b8c0d2e4f6a8b0c1d3e5f7a9b1c3d5e7f9a1b3c5d7e9f0a",
	}
}

// JSON returns the payload from Fields after applying the mutators.
func JSON(mutators ...func(map[string]any)) string {
	fields := Fields()
	for _, m := range mutators {
		m(fields)
	}
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("fingerprinttest: %v", err))
	}
	return string(data)
}

// Set returns a mutator that sets key to value.
func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

// Delete returns a mutator that removes key.
func Delete(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}
