package browser

import "time"

const (
	// DefaultViewportWidth is the default page width in pixels
	DefaultViewportWidth = 1280

	// DefaultViewportHeight is the default page height in pixels
	DefaultViewportHeight = 720

	// DefaultTimeout is the default Playwright operation timeout
	DefaultTimeout = 30 * time.Second

	// AudioContextAvailable is reported when the page exposes an AudioContext.
	AudioContextAvailable = "audio-context-available"

	// NotAvailable fills WebGL fields when no WebGL context can be created.
	NotAvailable = "Not available"

	// UnknownTimezone is reported when Intl cannot resolve the time zone.
	UnknownTimezone = "Unknown"
)

// Options configures the browser collector.
type Options struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the page size; zero values take the defaults
	Viewport Viewport

	// Locale emulates navigator.language, e.g. "en-US". Empty keeps the browser default.
	Locale string

	// TimezoneID emulates the time zone, e.g. "Europe/Paris". Empty keeps the host zone.
	TimezoneID string

	// Timeout bounds every Playwright operation
	Timeout time.Duration

	// SkipInstall assumes the driver and browsers are already present
	SkipInstall bool
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Viewport.Width <= 0 {
		o.Viewport.Width = DefaultViewportWidth
	}
	if o.Viewport.Height <= 0 {
		o.Viewport.Height = DefaultViewportHeight
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// probeResult is what the embedded probe script returns.
type probeResult struct {
	UserAgent           string      `json:"userAgent"`
	Language            string      `json:"language"`
	Languages           []string    `json:"languages"`
	Platform            string      `json:"platform"`
	CookieEnabled       bool        `json:"cookieEnabled"`
	DoNotTrack          *string     `json:"doNotTrack"`
	HardwareConcurrency *int        `json:"hardwareConcurrency"`
	DeviceMemory        *float64    `json:"deviceMemory"`
	MaxTouchPoints      int         `json:"maxTouchPoints"`
	ScreenWidth         int         `json:"screenWidth"`
	ScreenHeight        int         `json:"screenHeight"`
	ScreenColorDepth    int         `json:"screenColorDepth"`
	ScreenPixelDepth    int         `json:"screenPixelDepth"`
	ScreenAvailWidth    int         `json:"screenAvailWidth"`
	ScreenAvailHeight   int         `json:"screenAvailHeight"`
	DevicePixelRatio    float64     `json:"devicePixelRatio"`
	Timezone            string      `json:"timezone"`
	TimezoneOffset      int         `json:"timezoneOffset"`
	LocalStorage        bool        `json:"localStorage"`
	SessionStorage      bool        `json:"sessionStorage"`
	IndexedDB           bool        `json:"indexedDB"`
	CanvasDataURL       string      `json:"canvasDataURL"`
	WebGL               *webglProbe `json:"webgl"`
	AudioContext        bool        `json:"audioContext"`
	Plugins             []string    `json:"plugins"`
	MimeTypes           []string    `json:"mimeTypes"`
	Online              bool        `json:"online"`
}

type webglProbe struct {
	Vendor                 string   `json:"vendor"`
	Renderer               string   `json:"renderer"`
	Version                string   `json:"version"`
	ShadingLanguageVersion string   `json:"shadingLanguageVersion"`
	Extensions             []string `json:"extensions"`
}

// wireRecord is the record as emitted to the viewer. Field order is the
// order the JSON keys appear in, with the hash computed last.
type wireRecord struct {
	UserAgent                   string   `json:"user_agent"`
	Language                    string   `json:"language"`
	Languages                   []string `json:"languages"`
	Platform                    string   `json:"platform"`
	CookieEnabled               bool     `json:"cookie_enabled"`
	DoNotTrack                  *string  `json:"do_not_track"`
	HardwareConcurrency         *int     `json:"hardware_concurrency"`
	DeviceMemory                *float64 `json:"device_memory"`
	MaxTouchPoints              int      `json:"max_touch_points"`
	ScreenWidth                 int      `json:"screen_width"`
	ScreenHeight                int      `json:"screen_height"`
	ScreenColorDepth            int      `json:"screen_color_depth"`
	ScreenPixelDepth            int      `json:"screen_pixel_depth"`
	ScreenAvailWidth            int      `json:"screen_avail_width"`
	ScreenAvailHeight           int      `json:"screen_avail_height"`
	DevicePixelRatio            float64  `json:"device_pixel_ratio"`
	Timezone                    string   `json:"timezone"`
	TimezoneOffset              int      `json:"timezone_offset"`
	LocalStorage                bool     `json:"local_storage"`
	SessionStorage              bool     `json:"session_storage"`
	IndexedDB                   bool     `json:"indexed_db"`
	CanvasFingerprint           string   `json:"canvas_fingerprint"`
	WebGLVendor                 string   `json:"webgl_vendor"`
	WebGLRenderer               string   `json:"webgl_renderer"`
	WebGLVersion                string   `json:"webgl_version"`
	WebGLShadingLanguageVersion string   `json:"webgl_shading_language_version"`
	WebGLExtensions             []string `json:"webgl_extensions"`
	AudioFingerprint            *string  `json:"audio_fingerprint,omitempty"`
	Plugins                     []string `json:"plugins"`
	MimeTypes                   []string `json:"mime_types"`
	Online                      bool     `json:"online"`
	FingerprintHash             string   `json:"fingerprint_hash"`
}
