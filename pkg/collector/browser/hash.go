package browser

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// canvasHash returns the hex SHA-256 of a canvas data URL.
func canvasHash(dataURL string) string {
	sum := sha256.Sum256([]byte(dataURL))
	return hex.EncodeToString(sum[:])
}

// fingerprintHash digests the identifying subset of a record. Fields are fed
// to the hash back to back with no separator; numbers use their shortest
// decimal form and a missing core count counts as 0.
func fingerprintHash(r *wireRecord) string {
	cores := 0
	if r.HardwareConcurrency != nil {
		cores = *r.HardwareConcurrency
	}

	h := sha256.New()
	for _, part := range []string{
		r.UserAgent,
		r.Language,
		r.Platform,
		strconv.Itoa(cores),
		strconv.Itoa(r.ScreenWidth),
		strconv.Itoa(r.ScreenHeight),
		strconv.Itoa(r.ScreenColorDepth),
		strconv.FormatFloat(r.DevicePixelRatio, 'f', -1, 64),
		r.Timezone,
		strconv.Itoa(r.TimezoneOffset),
		r.CanvasFingerprint,
		r.WebGLVendor,
		r.WebGLRenderer,
	} {
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// buildRecord turns a probe result into the emitted record, hashing the
// canvas and then the whole fingerprint.
func buildRecord(p *probeResult) *wireRecord {
	r := &wireRecord{
		UserAgent:           p.UserAgent,
		Language:            p.Language,
		Languages:           nonNil(p.Languages),
		Platform:            p.Platform,
		CookieEnabled:       p.CookieEnabled,
		DoNotTrack:          p.DoNotTrack,
		HardwareConcurrency: p.HardwareConcurrency,
		DeviceMemory:        p.DeviceMemory,
		MaxTouchPoints:      p.MaxTouchPoints,
		ScreenWidth:         p.ScreenWidth,
		ScreenHeight:        p.ScreenHeight,
		ScreenColorDepth:    p.ScreenColorDepth,
		ScreenPixelDepth:    p.ScreenPixelDepth,
		ScreenAvailWidth:    p.ScreenAvailWidth,
		ScreenAvailHeight:   p.ScreenAvailHeight,
		DevicePixelRatio:    p.DevicePixelRatio,
		Timezone:            p.Timezone,
		TimezoneOffset:      p.TimezoneOffset,
		LocalStorage:        p.LocalStorage,
		SessionStorage:      p.SessionStorage,
		IndexedDB:           p.IndexedDB,
		CanvasFingerprint:   canvasHash(p.CanvasDataURL),
		Plugins:             nonNil(p.Plugins),
		MimeTypes:           nonNil(p.MimeTypes),
		Online:              p.Online,
	}
	if r.Timezone == "" {
		r.Timezone = UnknownTimezone
	}
	if p.WebGL != nil {
		r.WebGLVendor = p.WebGL.Vendor
		r.WebGLRenderer = p.WebGL.Renderer
		r.WebGLVersion = p.WebGL.Version
		r.WebGLShadingLanguageVersion = p.WebGL.ShadingLanguageVersion
		r.WebGLExtensions = nonNil(p.WebGL.Extensions)
	} else {
		r.WebGLVendor = NotAvailable
		r.WebGLRenderer = NotAvailable
		r.WebGLVersion = NotAvailable
		r.WebGLShadingLanguageVersion = NotAvailable
		r.WebGLExtensions = []string{}
	}
	if p.AudioContext {
		audio := AudioContextAvailable
		r.AudioFingerprint = &audio
	}
	r.FingerprintHash = fingerprintHash(r)
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
