package fingerprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	fperrors "github.com/entrhq/fpview/pkg/errors"
	ft "github.com/entrhq/fpview/pkg/fingerprint/fingerprinttest"
)

func TestParse_Valid(t *testing.T) {
	text := ft.JSON()
	rec, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, "en-US", rec.Language)
	assert.Equal(t, []string{"en-US", "fr"}, rec.Languages)
	assert.Nil(t, rec.DoNotTrack)
	require.NotNil(t, rec.HardwareConcurrency)
	assert.Equal(t, 8, *rec.HardwareConcurrency)
	require.NotNil(t, rec.DeviceMemory)
	assert.Equal(t, 8.0, *rec.DeviceMemory)
	assert.Equal(t, -60, rec.TimezoneOffset)
	assert.False(t, rec.IndexedDB)
	require.NotNil(t, rec.ScreenPixelDepth)
	assert.Equal(t, []string{"application/pdf"}, rec.MimeTypes)
	assert.Equal(t, text, rec.Raw())
}

func TestParse_OptionalFieldsMayBeAbsent(t *testing.T) {
	rec, err := Parse(ft.JSON(
		ft.Delete("do_not_track"),
		ft.Delete("screen_pixel_depth"),
		ft.Delete("audio_fingerprint"),
		ft.Delete("mime_types"),
		ft.Set("hardware_concurrency", nil),
		ft.Set("device_memory", nil),
	))
	require.NoError(t, err)

	assert.Nil(t, rec.DoNotTrack)
	assert.Nil(t, rec.HardwareConcurrency)
	assert.Nil(t, rec.DeviceMemory)
	assert.Nil(t, rec.ScreenPixelDepth)
}

func TestParse_Malformed(t *testing.T) {
	for _, text := range []string{"", "not json", `{"user_agent":`, "{]"} {
		_, err := Parse(text)
		require.Error(t, err, "input %q", text)
		assert.Equal(t, fperrors.ErrCodeCollection, fperrors.CodeOf(err))
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		problem string
	}{
		{
			name:    "not an object",
			text:    `["a"]`,
			problem: "must be a JSON object",
		},
		{
			name:    "missing required field",
			text:    ft.JSON(ft.Delete("user_agent")),
			problem: "missing field user_agent",
		},
		{
			name:    "wrong bool type",
			text:    ft.JSON(ft.Set("cookie_enabled", "yes")),
			problem: "field cookie_enabled: expected bool, got string",
		},
		{
			name:    "fractional integer",
			text:    ft.JSON(ft.Set("timezone_offset", 1.5)),
			problem: "field timezone_offset: expected integer, got number",
		},
		{
			name:    "non-string list item",
			text:    ft.JSON(ft.Set("plugins", []any{"a", 1})),
			problem: "field plugins: expected array of strings, got array",
		},
		{
			name:    "null for non-nullable",
			text:    ft.JSON(ft.Set("platform", nil)),
			problem: "field platform: must not be null",
		},
		{
			name:    "nullable but missing",
			text:    ft.JSON(ft.Delete("device_memory")),
			problem: "missing field device_memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.Equal(t, fperrors.ErrCodeValidation, fperrors.CodeOf(err))
			assert.True(t, fperrors.IsCode(err, fperrors.ErrCodeCollection))
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	_, err := Parse(ft.JSON(ft.Delete("user_agent"), ft.Delete("plugins")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing field user_agent")
	assert.Contains(t, err.Error(), "missing field plugins")
}

func TestRecord_Pretty(t *testing.T) {
	rec, err := Parse(`{"fingerprint_hash":"h","user_agent":"ua","language":"en","languages":["en"],"platform":"p","cookie_enabled":true,"do_not_track":null,"online":true,"hardware_concurrency":null,"device_memory":null,"max_touch_points":0,"screen_width":1,"screen_height":1,"screen_avail_width":1,"screen_avail_height":1,"screen_color_depth":24,"device_pixel_ratio":1,"timezone":"UTC","timezone_offset":0,"local_storage":true,"session_storage":true,"indexed_db":true,"canvas_fingerprint":"c","webgl_vendor":"v","webgl_renderer":"r","webgl_version":"1","webgl_shading_language_version":"1","webgl_extensions":[],"plugins":[]}`)
	require.NoError(t, err)

	out := rec.Pretty()
	lines := strings.Split(out, "\n")
	assert.Equal(t, "{", lines[0])
	assert.Equal(t, `  "fingerprint_hash": "h",`, lines[1])
	assert.Equal(t, "}", lines[len(lines)-1])
}

func TestExport_JSONRedacted(t *testing.T) {
	rec, err := Parse(ft.JSON())
	require.NoError(t, err)

	redactor, err := NewRedactor("canvas_*,webgl_{vendor,renderer}")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, rec, ExportJSON, redactor))

	out, err := Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Redacted, out.CanvasFingerprint)
	assert.Equal(t, Redacted, out.WebGLVendor)
	assert.Equal(t, Redacted, out.WebGLRenderer)
	assert.Equal(t, rec.WebGLVersion, out.WebGLVersion)
	assert.Equal(t, rec.FingerprintHash, out.FingerprintHash)
}

func TestExport_YAML(t *testing.T) {
	rec, err := Parse(ft.JSON())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, rec, ExportYAML, nil))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rec.Platform, decoded["platform"])
	assert.Equal(t, 1920, decoded["screen_width"])
	assert.Nil(t, decoded["do_not_track"])
	assert.Equal(t, []any{"en-US", "fr"}, decoded["languages"])
}

func TestExport_UnknownFormat(t *testing.T) {
	rec, err := Parse(ft.JSON())
	require.NoError(t, err)
	assert.Error(t, Export(&bytes.Buffer{}, rec, "toml", nil))
}

func TestNewRedactor_InvalidPattern(t *testing.T) {
	_, err := NewRedactor("webgl_[")
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, ExportYAML, FormatForPath("out.yaml"))
	assert.Equal(t, ExportYAML, FormatForPath("OUT.YML"))
	assert.Equal(t, ExportJSON, FormatForPath("out.json"))
	assert.Equal(t, ExportJSON, FormatForPath("out"))
}
