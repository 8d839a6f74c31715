package emucore

// Screen dimensions of the emulated display in pixels. The frontend's
// frame handoff buffers and texture upload are fixed to this size.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// FrameRate is the nominal NTSC frame rate the emulation goroutine paces
// itself against. Audio-driven timing nudges the actual rate to keep the
// audio buffer level stable.
const FrameRate = 60.0988

// SampleRate is the audio output rate in Hz, mono 16-bit.
const SampleRate = 44100

// Standard d-pad button bit positions (always bits 0-3).
const (
	ButtonUp    = 0
	ButtonDown  = 1
	ButtonLeft  = 2
	ButtonRight = 3
)

// Console button bit positions (4+).
const (
	ButtonA      = 4
	ButtonB      = 5
	ButtonSelect = 6
	ButtonStart  = 7
)

// MaxPlayers is the number of controller ports the frontend polls.
const MaxPlayers = 2

// RunConfig carries frontend settings supplied by the embedding emulator.
type RunConfig struct {
	// Title is the window title.
	Title string

	// DataDirName is the per-OS data directory name used for config.json
	// and screenshots. Empty falls back to "enes".
	DataDirName string
}
