package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/fpview/pkg/collector"
	"github.com/entrhq/fpview/pkg/logging"
)

// probeOrigin is the synthetic origin the probe page is served from, so
// storage APIs behave as they would on a real site.
const probeOrigin = "https://fpview.localhost/"

const probeDocument = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>fpview probe</title></head><body></body></html>`

// Collector launches Chromium through Playwright. It implements
// collector.Collector.
type Collector struct {
	opts   Options
	logger *logging.Logger
}

// New creates a browser collector. A nil logger discards output.
func New(opts Options, logger *logging.Logger) *Collector {
	if logger == nil {
		logger = logging.Discard("browser")
	}
	return &Collector{opts: opts.withDefaults(), logger: logger}
}

// Options returns the effective options after defaults.
func (c *Collector) Options() Options {
	return c.opts
}

// Init installs and starts Playwright, then opens the probe page.
func (c *Collector) Init(ctx context.Context) (collector.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Keep driver output off the terminal; it would corrupt the TUI.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if !c.opts.SkipInstall {
		c.logger.Infof("Installing playwright driver")
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	headless := c.opts.Headless
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  c.opts.Viewport.Width,
			Height: c.opts.Viewport.Height,
		},
	}
	if c.opts.Locale != "" {
		contextOpts.Locale = playwright.String(c.opts.Locale)
	}
	if c.opts.TimezoneID != "" {
		contextOpts.TimezoneId = playwright.String(c.opts.TimezoneID)
	}
	bctx, err := browser.NewContext(contextOpts)
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(float64(c.opts.Timeout.Milliseconds()))

	s := &Session{
		playwright: pw,
		browser:    browser,
		context:    bctx,
		page:       page,
		logger:     c.logger,
	}
	if err := s.load(); err != nil {
		_ = s.Close()
		return nil, err
	}

	c.logger.Infof("Browser ready (headless=%t, viewport=%dx%d)", headless, c.opts.Viewport.Width, c.opts.Viewport.Height)
	return s, nil
}
