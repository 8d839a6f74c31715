package storage

// Config is the persisted application configuration stored in config.json
type Config struct {
	Version int          `json:"version"`
	Audio   AudioConfig  `json:"audio"`
	Window  WindowConfig `json:"window"`
	Debug   DebugConfig  `json:"debug"`
}

// AudioConfig contains audio-related settings
type AudioConfig struct {
	Volume float64 `json:"volume"`
	Muted  bool    `json:"muted"`
}

// WindowConfig contains window size and display mode
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// DebugConfig contains debug UI settings
type DebugConfig struct {
	OverlayVisible bool `json:"overlayVisible"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Audio: AudioConfig{
			Volume: 1.0,
			Muted:  false,
		},
		Window: WindowConfig{
			Width:      640,
			Height:     480,
			Fullscreen: false,
		},
		Debug: DebugConfig{
			OverlayVisible: false,
		},
	}
}
