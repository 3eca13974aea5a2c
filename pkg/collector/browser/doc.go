// Package browser implements a fingerprint collector backed by a headless
// Chromium driven through Playwright.
//
// # Lifecycle
//
// Init installs the Playwright driver and browsers if needed, starts the
// driver, launches Chromium and opens a single page. The returned Session is
// the collector handle: each Collect evaluates the embedded probe script in
// that page, hashes the canvas rendering and the identifying signals, and
// returns the record as indented JSON. Close tears everything down.
//
// # Configuration
//
// Options mirror the collector section of the fpview config:
//
//   - Headless: run without a visible window (default true)
//   - Viewport: page size, which also drives the reported screen size
//   - Locale / TimezoneID: emulated navigator.language and time zone
//   - Timeout: default Playwright operation timeout
//
// # Example
//
//	c := browser.New(browser.Options{Headless: true})
//	binding := collector.NewBinding(c, logger)
//	if _, err := binding.Initialize(ctx); err != nil {
//	    return err
//	}
//	defer binding.Close()
//	text, err := binding.Collect(ctx)
package browser
