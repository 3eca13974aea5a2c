package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	globalMu.Lock()
	globalManager = nil
	globalMu.Unlock()
	t.Cleanup(func() {
		globalMu.Lock()
		globalManager = nil
		globalMu.Unlock()
	})
}

func TestInitialize(t *testing.T) {
	t.Run("registers viewer and collector", func(t *testing.T) {
		resetGlobal(t)

		if err := Initialize(filepath.Join(t.TempDir(), "config.json")); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if !IsInitialized() {
			t.Fatal("Global manager should be initialized")
		}

		sections := Global().GetSections()
		if len(sections) != 2 || sections[0].ID() != SectionIDViewer || sections[1].ID() != SectionIDCollector {
			t.Errorf("Unexpected sections: %v", sections)
		}
		if GetViewer().Settings().MinScanLatency != 800*time.Millisecond {
			t.Error("Viewer defaults not applied")
		}
		if GetCollector().Settings().Source != SourceBrowser {
			t.Error("Collector defaults not applied")
		}
	})

	t.Run("fails on invalid stored values", func(t *testing.T) {
		resetGlobal(t)
		configPath := filepath.Join(t.TempDir(), "config.json")
		content := `{"version":"1","sections":{"viewer":{"min_scan_latency":"-1s"}}}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		if err := Initialize(configPath); err == nil {
			t.Error("Expected error for negative min_scan_latency")
		}
		if IsInitialized() {
			t.Error("Global manager should stay unset after a failed Initialize")
		}
	})
}

func TestGlobal_PanicsWhenUninitialized(t *testing.T) {
	resetGlobal(t)
	defer func() {
		if recover() == nil {
			t.Error("Global should panic before Initialize")
		}
	}()
	Global()
}

func TestGetters_Uninitialized(t *testing.T) {
	resetGlobal(t)
	if GetViewer() != nil || GetCollector() != nil {
		t.Error("Getters should return nil before Initialize")
	}
}

func TestPersistence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	manager, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	manager.Viewer().SetMinScanLatency(2 * time.Second)
	manager.Collector().UseRecordFile("/tmp/record.json")
	if err := manager.SaveAll(); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := reloaded.Viewer().Settings().MinScanLatency; got != 2*time.Second {
		t.Errorf("Expected min_scan_latency 2s, got %v", got)
	}
	c := reloaded.Collector().Settings()
	if c.Source != SourceFile || c.RecordPath != "/tmp/record.json" {
		t.Errorf("Collector settings not persisted: %+v", c)
	}
}
