package browser

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
	"github.com/tidwall/pretty"

	"github.com/entrhq/fpview/pkg/logging"
)

//go:embed probe.js
var probeScript string

// Session is an open browser page ready to be probed.
type Session struct {
	mu         sync.Mutex
	playwright *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	page       playwright.Page
	logger     *logging.Logger
	closed     bool
}

// load serves the probe document on probeOrigin and navigates to it.
func (s *Session) load() error {
	err := s.page.Route(probeOrigin+"**", func(route playwright.Route) {
		_ = route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html; charset=utf-8"),
			Body:        probeDocument,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to route probe page: %w", err)
	}
	if _, err := s.page.Goto(probeOrigin); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// Collect runs the probe script and returns the record as indented JSON.
// Calls are serialized; the page is shared.
func (s *Session) Collect(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", fmt.Errorf("browser session is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type evalResult struct {
		value interface{}
		err   error
	}
	done := make(chan evalResult, 1)
	go func() {
		v, err := s.page.Evaluate(probeScript)
		done <- evalResult{v, err}
	}()

	var res evalResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		return "", fmt.Errorf("probe script failed: %w", res.err)
	}

	out, err := encodeProbe(res.value)
	if err != nil {
		return "", err
	}
	s.logger.Debugf("Collected %d bytes", len(out))
	return out, nil
}

// encodeProbe converts the value returned by Evaluate into record JSON.
func encodeProbe(value interface{}) (string, error) {
	// Evaluate hands back generic maps; a JSON round trip gives typed fields.
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to encode probe result: %w", err)
	}
	var probe probeResult
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("unexpected probe result: %w", err)
	}

	rec, err := json.Marshal(buildRecord(&probe))
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(pretty.PrettyOptions(rec, &pretty.Options{Width: 80, Indent: "  "})), nil
}

// Close shuts down the page, context, browser and driver. Safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	// Ignore errors, continue cleanup
	_ = s.page.Close()
	_ = s.context.Close()
	_ = s.browser.Close()
	if err := s.playwright.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}
