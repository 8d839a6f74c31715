package emucore

// Machine is the producer-side interface the frontend drives. The
// implementation runs on the dedicated emulation goroutine; the frontend
// never calls it from the Ebiten thread while that goroutine is running.
type Machine interface {
	// RunFrame executes one frame of emulation, writing the completed
	// video frame through v.
	RunFrame(v VideoOut)

	// AudioSamples returns the mono 16-bit PCM samples generated by the
	// last RunFrame call. The returned slice is only valid until the next
	// RunFrame call.
	AudioSamples() []int16

	// SetInput sets controller state as a button bitmask for the given
	// player. See the Button* bit constants.
	SetInput(player int, buttons uint32)

	// Close releases any resources held by the machine.
	Close()
}

// VideoOut is the pixel sink a Machine renders into. WritePixel stores one
// packed ARGB color at (x, y). Coordinates outside the 256x240 screen are a
// programming fault and panic.
type VideoOut interface {
	WritePixel(x, y int, color uint32)
}

// SampleSource supplies audio samples on demand. ReadSamples must fill the
// entire slice with exactly len(out) samples; how underrun is handled
// (blocking, silence, stretching) is the source's own policy.
type SampleSource interface {
	ReadSamples(out []int16)
}

// Hooks receives UI hotkey actions. All methods are called from the
// emulation goroutine, once per triggering hotkey evaluation, so
// implementations may touch machine state without extra locking.
type Hooks interface {
	// SaveState captures a save state. Called once per key press.
	SaveState()

	// LoadState restores the last save state. Called once per key press.
	LoadState()

	// Rewind is called every hotkey pass with the current held state of
	// the rewind key. Implementations rewind while held is true.
	Rewind(held bool)

	// SoftReset performs a console soft reset. Called once per externally
	// raised reset trigger.
	SoftReset()

	// AdjustCorruptChance shifts the corruption tuning value by delta and
	// returns the new value for on-screen feedback.
	AdjustCorruptChance(delta int32) uint32
}

// NopHooks is a Hooks implementation that ignores every action. Embed it
// to implement only the hooks a machine supports.
type NopHooks struct{}

func (NopHooks) SaveState()                             {}
func (NopHooks) LoadState()                             {}
func (NopHooks) Rewind(bool)                            {}
func (NopHooks) SoftReset()                             {}
func (NopHooks) AdjustCorruptChance(delta int32) uint32 { return 0 }
