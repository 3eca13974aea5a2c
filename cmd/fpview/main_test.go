package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/entrhq/fpview/pkg/collector"
	"github.com/entrhq/fpview/pkg/collector/browser"
	appconfig "github.com/entrhq/fpview/pkg/config"
	"github.com/entrhq/fpview/pkg/controller"
	"github.com/entrhq/fpview/pkg/executor/headless"
	"github.com/entrhq/fpview/pkg/fingerprint"
	ft "github.com/entrhq/fpview/pkg/fingerprint/fingerprinttest"
	"github.com/entrhq/fpview/pkg/logging"
	"github.com/entrhq/fpview/pkg/panel"
)

func writeRecord(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	config, err := parseFlags([]string{
		"-headless", "-export", "fp.yaml", "-redact", "canvas_*", "-min-latency", "0s", "-headed",
	}, &out)
	require.NoError(t, err)

	assert.True(t, config.Headless)
	assert.True(t, config.Headed)
	assert.Equal(t, "fp.yaml", config.ExportPath)
	assert.Equal(t, "canvas_*", config.Redact)
	assert.True(t, config.minLatencySet)
	assert.Zero(t, config.MinLatency)
}

func TestParseFlags_MinLatencyUnset(t *testing.T) {
	config, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, config.minLatencySet)
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage: fpview [options]")
	assert.Contains(t, out.String(), logging.LevelEnvVar)
}

func TestConfig_Validate(t *testing.T) {
	record := writeRecord(t, ft.JSON())

	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"defaults", Config{}, ""},
		{"record file", Config{RecordPath: record}, ""},
		{"headless artifacts", Config{Headless: true, ExportPath: "x.json", NoColor: true}, ""},
		{"negative latency", Config{MinLatency: -time.Second}, "-min-latency must not be negative"},
		{"missing record", Config{RecordPath: filepath.Join(t.TempDir(), "nope.json")}, "record file error"},
		{"record is directory", Config{RecordPath: t.TempDir()}, "is a directory"},
		{"artifact without headless", Config{HTMLPath: "a.html", ExportPath: "b.json"}, "-export, -html requires -headless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	settings, err := appconfig.Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	(&Config{RecordPath: "saved.json", Headed: true, MinLatency: 50 * time.Millisecond, minLatencySet: true}).applyOverrides(settings)

	c := settings.Collector().Settings()
	assert.Equal(t, appconfig.SourceFile, c.Source)
	assert.Equal(t, "saved.json", c.RecordPath)
	assert.False(t, c.Headless)
	assert.Equal(t, 50*time.Millisecond, settings.Viewer().Settings().MinScanLatency)
}

func TestApplyOverrides_HeadlessSkipsLatency(t *testing.T) {
	settings, err := appconfig.Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NotZero(t, settings.Viewer().Settings().MinScanLatency)

	(&Config{Headless: true}).applyOverrides(settings)
	assert.Zero(t, settings.Viewer().Settings().MinScanLatency)
}

func TestHeadlessConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("artifacts:\n  html: from-file.html\n  redact: [canvas_*]\nlogging:\n  verbosity: verbose\n"), 0600))

	config := &Config{
		HeadlessConfig: path,
		ExportPath:     "fp.json",
		Redact:         "webgl_vendor",
		Verbosity:      "quiet",
	}
	execConfig, err := config.headlessConfig()
	require.NoError(t, err)

	assert.Equal(t, "from-file.html", execConfig.Artifacts.HTML)
	assert.Equal(t, "fp.json", execConfig.Artifacts.Export)
	assert.Equal(t, []string{"canvas_*", "webgl_vendor"}, execConfig.Artifacts.Redact)
	assert.Equal(t, "quiet", execConfig.Logging.Verbosity)
}

func TestHeadlessConfig_Invalid(t *testing.T) {
	_, err := (&Config{Verbosity: "loud"}).headlessConfig()
	assert.ErrorContains(t, err, "invalid headless configuration")
}

func TestBuildCollector(t *testing.T) {
	logger := logging.Discard("test")

	file := buildCollector(appconfig.CollectorSettings{Source: appconfig.SourceFile, RecordPath: "r.json"}, logger)
	assert.Equal(t, &collector.FileCollector{Path: "r.json"}, file)

	c := buildCollector(appconfig.CollectorSettings{
		Source:         appconfig.SourceBrowser,
		Headless:       true,
		ViewportWidth:  800,
		ViewportHeight: 600,
		Locale:         "fr-FR",
		Timeout:        5 * time.Second,
	}, logger)
	b, ok := c.(*browser.Collector)
	require.True(t, ok)
	opts := b.Options()
	assert.True(t, opts.Headless)
	assert.Equal(t, browser.Viewport{Width: 800, Height: 600}, opts.Viewport)
	assert.Equal(t, "fr-FR", opts.Locale)
	assert.Equal(t, 5*time.Second, opts.Timeout)
}

func TestSession_WiresIntents(t *testing.T) {
	viewer := appconfig.NewViewerSection().Settings()
	viewer.MinScanLatency = 0
	viewer.RawViewVisible = true

	sess := newSession(&collector.FileCollector{Path: writeRecord(t, ft.JSON())}, viewer, logging.Discard("test"))
	defer sess.Close()

	ctx := context.Background()
	require.NoError(t, sess.controller.Initialize(ctx))
	require.NoError(t, sess.dispatcher.Dispatch(ctx, controller.IntentScan))

	snap := sess.panel.Snapshot()
	assert.True(t, snap.ResultsVisible)
	assert.True(t, snap.RawVisible)
	assert.Equal(t, controller.HideRawLabel, snap.ToggleLabel)

	require.NoError(t, sess.dispatcher.Dispatch(ctx, controller.IntentToggleJSON))
	assert.False(t, sess.panel.Snapshot().RawVisible)
	assert.Equal(t, panel.CopyLabel, sess.panel.Snapshot().Copy.Label)
}

func TestRun_HeadlessExport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	config := &Config{
		ConfigPath:  filepath.Join(dir, "config.json"),
		RecordPath:  writeRecord(t, ft.JSON()),
		Headless:    true,
		ExportPath:  filepath.Join(dir, "fp.yaml"),
		SummaryPath: filepath.Join(dir, "summary.json"),
		Redact:      "webgl_{vendor,renderer}",
		Verbosity:   "quiet",
		NoColor:     true,
	}
	require.NoError(t, config.validate())
	require.NoError(t, run(context.Background(), config))

	data, err := os.ReadFile(config.ExportPath)
	require.NoError(t, err)
	var exported map[string]any
	require.NoError(t, yaml.Unmarshal(data, &exported))
	assert.Equal(t, fingerprint.Redacted, exported["webgl_vendor"])
	assert.Equal(t, fingerprint.Redacted, exported["webgl_renderer"])
	assert.Equal(t, "Europe/Paris", exported["timezone"])

	_, err = os.Stat(config.SummaryPath)
	assert.NoError(t, err)
}

func TestRun_HeadlessScanFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	config := &Config{
		ConfigPath: filepath.Join(dir, "config.json"),
		RecordPath: writeRecord(t, "{not json"),
		Headless:   true,
		Verbosity:  "quiet",
		NoColor:    true,
	}
	err := run(context.Background(), config)
	assert.ErrorIs(t, err, headless.ErrScanFailed)
}
