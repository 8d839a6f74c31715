package ui

import (
	"sync"
	"time"

	emucore "github.com/user-none/enes/api"
)

// ADT (audio-driven timing) buffer thresholds in bytes. Mono 16-bit at
// 44.1kHz is ~1470 bytes per frame.
const (
	adtMinBuffer = 4400 // ~3 frames — speed up below this
	adtMaxBuffer = 8800 // ~6 frames — slow down above this
)

// FrameStage holds the latest presented frame as RGBA bytes, written by
// the presenter goroutine and read by Ebiten's Draw() method. Separate
// write and read buffers so the presenter can stage a new frame while
// Draw uses the read copy.
type FrameStage struct {
	mu          sync.Mutex
	writePixels []byte
	readPixels  []byte
	hasFrame    bool
}

// NewFrameStage creates a stage sized for the emulated screen.
func NewFrameStage() *FrameStage {
	size := emucore.ScreenWidth * emucore.ScreenHeight * 4
	return &FrameStage{
		writePixels: make([]byte, size),
		readPixels:  make([]byte, size),
	}
}

// Update converts a packed-ARGB frame into staged RGBA bytes. Presenter
// goroutine only.
func (fs *FrameStage) Update(argb []uint32) {
	fs.mu.Lock()
	n := len(argb)
	if max := len(fs.writePixels) / 4; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		c := argb[i]
		fs.writePixels[i*4+0] = byte(c >> 16)
		fs.writePixels[i*4+1] = byte(c >> 8)
		fs.writePixels[i*4+2] = byte(c)
		fs.writePixels[i*4+3] = byte(c >> 24)
	}
	fs.hasFrame = true
	fs.mu.Unlock()
}

// Read returns a snapshot of the staged frame, or nil if no frame has been
// staged yet. Copies the write buffer into the read buffer under the lock,
// then returns the read buffer which is safe to use without holding the lock.
func (fs *FrameStage) Read() []byte {
	fs.mu.Lock()
	if !fs.hasFrame {
		fs.mu.Unlock()
		return nil
	}
	copy(fs.readPixels, fs.writePixels)
	fs.mu.Unlock()
	return fs.readPixels
}

// EmuThread owns the two frontend goroutines: the emulation loop that
// produces frames and audio, and the presenter loop that consumes
// published frames into the stage for Draw.
type EmuThread struct {
	machine emucore.Machine
	frames  *FrameSync
	stage   *FrameStage
	keys    *SharedKeys
	input   *SharedInput
	hotkeys *Hotkeys
	audio   *AudioPlayer

	emuDone     chan struct{}
	presentDone chan struct{}
}

// NewEmuThread wires up the loops. audio may be nil (no audio device);
// pacing then runs on wall clock alone.
func NewEmuThread(machine emucore.Machine, frames *FrameSync, stage *FrameStage,
	keys *SharedKeys, input *SharedInput, hotkeys *Hotkeys, audio *AudioPlayer) *EmuThread {
	return &EmuThread{
		machine:     machine,
		frames:      frames,
		stage:       stage,
		keys:        keys,
		input:       input,
		hotkeys:     hotkeys,
		audio:       audio,
		emuDone:     make(chan struct{}),
		presentDone: make(chan struct{}),
	}
}

// Start launches both goroutines.
func (et *EmuThread) Start() {
	go et.emulationLoop()
	go et.presenterLoop()
}

// Wait blocks until both goroutines have exited. Call after the frame
// synchronizer's Shutdown has been requested.
func (et *EmuThread) Wait() {
	<-et.emuDone
	<-et.presentDone
}

// emulationLoop runs on a dedicated goroutine. It executes emulator
// frames, queues audio, publishes the completed frame, evaluates UI
// hotkeys, and paces itself using audio-driven timing (ADT).
func (et *EmuThread) emulationLoop() {
	defer close(et.emuDone)

	fps := float64(emucore.FrameRate)
	frameTime := time.Duration(float64(time.Second) / fps)
	lastFrameTime := time.Now()

	for !et.frames.ShutdownRequested() {
		// Read input from shared state
		buttons := et.input.Read()
		for player := 0; player < emucore.MaxPlayers; player++ {
			et.machine.SetInput(player, buttons[player])
		}

		// Run one frame; the machine renders into the back buffer.
		et.machine.RunFrame(et.frames)

		// Queue audio samples
		if et.audio != nil {
			et.audio.QueueSamples(et.machine.AudioSamples())
		}

		// Hand the frame to the presenter. Never blocks: a pending frame
		// is replaced, and a presenter busy outside WaitFrame drops it.
		et.frames.PublishFrame()

		// Evaluate hotkeys against the snapshot the Ebiten thread keeps
		// fresh. The snapshot lock is held for the whole pass.
		ks := et.keys.Lock()
		et.hotkeys.HandleUIKeys(ks)
		et.keys.Unlock()

		// ADT sleep: wall-clock baseline ± adjustment from audio buffer level
		elapsed := time.Since(lastFrameTime)
		sleepTime := frameTime - elapsed

		if et.audio != nil {
			bufferLevel := et.audio.GetBufferLevel()
			if bufferLevel < adtMinBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 0.9)
			} else if bufferLevel > adtMaxBuffer {
				sleepTime = time.Duration(float64(sleepTime) * 1.1)
			}
		}

		if sleepTime > time.Millisecond {
			time.Sleep(sleepTime)
		}

		lastFrameTime = time.Now()
	}
}

// presenterLoop consumes published frames into the stage until shutdown.
func (et *EmuThread) presenterLoop() {
	defer close(et.presentDone)

	for et.frames.WaitFrame() {
		et.stage.Update(et.frames.Front())
	}
}
