package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("default version should be 1, got %d", config.Version)
	}
	if config.Audio.Volume != 1.0 {
		t.Errorf("default volume should be 1.0, got %f", config.Audio.Volume)
	}
	if config.Window.Width != 640 || config.Window.Height != 480 {
		t.Errorf("default window should be 640x480, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if config.Window.Fullscreen {
		t.Error("default should be windowed")
	}
	if config.Debug.OverlayVisible {
		t.Error("debug overlay should default to hidden")
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "test.json")

	data := map[string]int{"answer": 42}
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	// No leftover temp file
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not remain after write")
	}

	var readBack map[string]int
	if err := ReadJSON(path, &readBack); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if readBack["answer"] != 42 {
		t.Errorf("round trip mismatch: %v", readBack)
	}
}

func TestReadJSONInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte("{not valid"), 0644); err != nil {
		t.Fatal(err)
	}

	var data map[string]int
	if err := ReadJSON(path, &data); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestReadJSONNonexistentFile(t *testing.T) {
	var data map[string]int
	if err := ReadJSON("/nonexistent/path/file.json", &data); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	Init("enes-test")

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	baseDir, err := GetBaseDir()
	if err != nil {
		t.Fatal(err)
	}
	shotDir, err := GetScreenshotDir()
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{baseDir, shotDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s, err %v", dir, err)
		}
	}

	// The data dir holds only config.json and screenshots; nothing else
	// is created.
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "screenshots" {
		t.Errorf("unexpected data dir contents: %v", entries)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	Init("enes-test")

	// No file yet: defaults
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Audio.Volume != 1.0 {
		t.Errorf("expected default config, got volume %f", config.Audio.Volume)
	}

	config.Audio.Volume = 0.5
	config.Window.Fullscreen = true
	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig after save failed: %v", err)
	}
	if loaded.Audio.Volume != 0.5 {
		t.Errorf("volume not persisted, got %f", loaded.Audio.Volume)
	}
	if !loaded.Window.Fullscreen {
		t.Error("fullscreen not persisted")
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	Init("enes-test")

	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for corrupt config file")
	}
}
