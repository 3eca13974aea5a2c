package main

import (
	"github.com/entrhq/fpview/pkg/clipboard"
	"github.com/entrhq/fpview/pkg/collector"
	"github.com/entrhq/fpview/pkg/collector/browser"
	appconfig "github.com/entrhq/fpview/pkg/config"
	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/panel"
	"github.com/entrhq/fpview/pkg/presenter"
)

// session is one wired result panel: collector binding, controller, clipboard
// and the intent dispatcher both executors drive.
type session struct {
	binding    *collector.Binding
	panel      *panel.Panel
	controller *controller.Controller
	clipboard  *clipboard.Service
	toggle     *controller.JSONToggle
	dispatcher *controller.Dispatcher
	viewer     appconfig.ViewerSettings
}

func newSession(c collector.Collector, viewer appconfig.ViewerSettings, logger *logging.Logger) *session {
	binding := collector.NewBinding(c, logger.With("collector"))
	p := panel.New()

	ctrl := controller.New(binding, p, controller.Config{
		MinScanLatency: viewer.MinScanLatency,
		Presenter:      presenter.New(presenter.WithUserAgentLength(viewer.UserAgentMaxLength)),
		Logger:         logger.With("controller"),
	})

	cb := clipboard.New(
		clipboard.WithConfirmationWindow(viewer.CopyConfirmationWindow),
		clipboard.WithLogger(logger.With("clipboard")),
	)
	toggle := controller.NewJSONToggle(p, viewer.RawViewVisible)

	return &session{
		binding:    binding,
		panel:      p,
		controller: ctrl,
		clipboard:  cb,
		toggle:     toggle,
		dispatcher: controller.NewStandardDispatcher(controller.Bindings{
			Controller:  ctrl,
			Clipboard:   cb,
			CopyControl: p.CopyButton(),
			Toggle:      toggle,
		}),
		viewer: viewer,
	}
}

// Close cancels pending copy confirmations and shuts the collector down.
func (s *session) Close() error {
	s.clipboard.Close()
	return s.binding.Close()
}

// buildCollector picks the collector named by the settings.
func buildCollector(settings appconfig.CollectorSettings, logger *logging.Logger) collector.Collector {
	if settings.Source == appconfig.SourceFile {
		return &collector.FileCollector{Path: settings.RecordPath}
	}
	return browser.New(browser.Options{
		Headless: settings.Headless,
		Viewport: browser.Viewport{
			Width:  settings.ViewportWidth,
			Height: settings.ViewportHeight,
		},
		Locale:     settings.Locale,
		TimezoneID: settings.TimezoneID,
		Timeout:    settings.Timeout,
	}, logger.With("browser"))
}
