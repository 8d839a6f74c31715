package storage

import (
	"encoding/json"
	"testing"
)

func TestDetectPresentKeys(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected map[string]bool
	}{
		{
			name: "all keys present",
			json: `{
				"version": 1,
				"audio": {"volume": 1.0},
				"window": {"width": 640, "height": 480}
			}`,
			expected: map[string]bool{
				"version": true, "audio.volume": true,
				"window.width": true, "window.height": true,
			},
		},
		{
			name:     "empty object",
			json:     `{}`,
			expected: map[string]bool{},
		},
		{
			name: "partial keys - missing window",
			json: `{
				"version": 1,
				"audio": {"volume": 0.5}
			}`,
			expected: map[string]bool{
				"version": true, "audio.volume": true,
			},
		},
		{
			name: "zero values are still present",
			json: `{
				"audio": {"volume": 0},
				"window": {"width": 0}
			}`,
			expected: map[string]bool{
				"audio.volume": true, "window.width": true,
			},
		},
		{
			name:     "invalid JSON",
			json:     `not json`,
			expected: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectPresentKeys([]byte(tt.json))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d keys, expected %d: %v vs %v", len(got), len(tt.expected), got, tt.expected)
			}
			for k := range tt.expected {
				if !got[k] {
					t.Errorf("expected key %q to be present", k)
				}
			}
		})
	}
}

func TestApplyMissingDefaults(t *testing.T) {
	// Config parsed from a file that only set the window size. Volume
	// parsed as the Go zero value because the key was absent.
	config := &Config{
		Window: WindowConfig{Width: 1024, Height: 768},
	}
	present := map[string]bool{
		"window.width":  true,
		"window.height": true,
	}

	ApplyMissingDefaults(config, present)

	if config.Version != 1 {
		t.Errorf("version should default to 1, got %d", config.Version)
	}
	if config.Audio.Volume != 1.0 {
		t.Errorf("missing volume should default to 1.0, got %f", config.Audio.Volume)
	}
	if config.Window.Width != 1024 || config.Window.Height != 768 {
		t.Errorf("present window size should be preserved, got %dx%d", config.Window.Width, config.Window.Height)
	}
}

func TestApplyMissingDefaultsPreservesZeroVolume(t *testing.T) {
	jsonBytes := []byte(`{"version": 1, "audio": {"volume": 0}}`)

	config := &Config{}
	if err := json.Unmarshal(jsonBytes, config); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	ApplyMissingDefaults(config, detectPresentKeys(jsonBytes))

	if config.Audio.Volume != 0 {
		t.Errorf("explicit zero volume should be preserved, got %f", config.Audio.Volume)
	}
	if config.Window.Width != 640 {
		t.Errorf("missing window width should default to 640, got %d", config.Window.Width)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		numErrors int
	}{
		{
			name:      "default config is valid",
			config:    DefaultConfig(),
			numErrors: 0,
		},
		{
			name: "bad version",
			config: &Config{
				Version: 2,
				Audio:   AudioConfig{Volume: 1.0},
				Window:  WindowConfig{Width: 640, Height: 480},
			},
			numErrors: 1,
		},
		{
			name: "volume out of range",
			config: &Config{
				Version: 1,
				Audio:   AudioConfig{Volume: 3.5},
				Window:  WindowConfig{Width: 640, Height: 480},
			},
			numErrors: 1,
		},
		{
			name: "window too small",
			config: &Config{
				Version: 1,
				Audio:   AudioConfig{Volume: 1.0},
				Window:  WindowConfig{Width: 100, Height: 100},
			},
			numErrors: 2,
		},
		{
			name:      "everything invalid",
			config:    &Config{Version: 0, Audio: AudioConfig{Volume: -1}},
			numErrors: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateConfig(tt.config)
			if len(errs) != tt.numErrors {
				t.Errorf("expected %d errors, got %d: %v", tt.numErrors, len(errs), errs)
			}
		})
	}
}

func TestCorrectConfig(t *testing.T) {
	config := &Config{
		Version: 7,
		Audio:   AudioConfig{Volume: -0.5, Muted: true},
		Window:  WindowConfig{Width: 1, Height: 900, Fullscreen: true},
	}

	CorrectConfig(config)

	if errs := ValidateConfig(config); len(errs) != 0 {
		t.Fatalf("corrected config should validate, got %v", errs)
	}
	if config.Version != 1 {
		t.Errorf("version not corrected: %d", config.Version)
	}
	if config.Audio.Volume != 1.0 {
		t.Errorf("volume not corrected: %f", config.Audio.Volume)
	}
	if config.Window.Width != 640 {
		t.Errorf("width not corrected: %d", config.Window.Width)
	}
	// Valid fields survive correction
	if config.Window.Height != 900 {
		t.Errorf("valid height should be preserved, got %d", config.Window.Height)
	}
	if !config.Audio.Muted || !config.Window.Fullscreen {
		t.Error("boolean fields should be untouched")
	}
}
