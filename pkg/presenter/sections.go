package presenter

// Row is one labelled display slot.
type Row struct {
	// ID is the slot's element id in the host document
	ID    string
	Label string
	// Value and Title are escaped markup fragments
	Value string
	Title string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// Sections lays the scalar slots out in display order. The hash, plugin list
// and raw view are laid out separately by each front end.
func Sections(f DisplayFields) []Section {
	return []Section{
		{"Browser", []Row{
			{ID: "user-agent", Label: "User Agent", Value: f.UserAgent, Title: f.UserAgentTitle},
			{ID: "language", Label: "Language", Value: f.Language, Title: f.LanguageTitle},
			{ID: "platform", Label: "Platform", Value: f.Platform},
			{ID: "cookies", Label: "Cookies", Value: f.Cookies},
			{ID: "do-not-track", Label: "Do Not Track", Value: f.DoNotTrack},
			{ID: "online-status", Label: "Online", Value: f.Online},
		}},
		{"Hardware", []Row{
			{ID: "cpu-cores", Label: "CPU Cores", Value: f.CPUCores},
			{ID: "device-memory", Label: "Device Memory", Value: f.DeviceMemory},
			{ID: "touch-points", Label: "Touch Points", Value: f.TouchPoints},
		}},
		{"Screen", []Row{
			{ID: "screen-resolution", Label: "Resolution", Value: f.ScreenResolution},
			{ID: "available-resolution", Label: "Available", Value: f.AvailableResolution},
			{ID: "color-depth", Label: "Color Depth", Value: f.ColorDepth},
			{ID: "pixel-ratio", Label: "Pixel Ratio", Value: f.PixelRatio},
		}},
		{"Timezone", []Row{
			{ID: "timezone", Label: "Timezone", Value: f.Timezone},
			{ID: "timezone-offset", Label: "Offset", Value: f.TimezoneOffset},
		}},
		{"Storage", []Row{
			{ID: "local-storage", Label: "Local Storage", Value: f.LocalStorage},
			{ID: "session-storage", Label: "Session Storage", Value: f.SessionStorage},
			{ID: "indexed-db", Label: "IndexedDB", Value: f.IndexedDB},
		}},
		{"Rendering", []Row{
			{ID: "canvas-hash", Label: "Canvas Hash", Value: f.CanvasHash},
		}},
		{"WebGL", []Row{
			{ID: "webgl-vendor", Label: "Vendor", Value: f.WebGLVendor},
			{ID: "webgl-renderer", Label: "Renderer", Value: f.WebGLRenderer},
			{ID: "webgl-version", Label: "Version", Value: f.WebGLVersion},
			{ID: "webgl-shading-language", Label: "Shading Language", Value: f.WebGLShadingLanguage},
			{ID: "webgl-extensions", Label: "Extensions", Value: f.WebGLExtensions},
		}},
	}
}
