package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	emucore "github.com/user-none/enes/api"
)

// ringBufferCapacity is ~186ms of mono 16-bit audio at 44.1kHz.
const ringBufferCapacity = 16384

// AudioPlayer manages audio playback via oto. oto's player pulls bytes
// from an io.Reader at the device's pace; the reader must hand back
// exactly what it is asked for, reading from the upstream sample
// producer. Two producer models are supported: QueueSamples pushes
// per-frame samples into a ring buffer, or a SampleSource is pulled
// directly.
type AudioPlayer struct {
	player     *oto.Player
	ringBuffer *AudioRingBuffer
	audioBytes []byte // Pre-allocated buffer for int16-to-byte conversion
}

// oto context singleton — one audio device for the process.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureOtoContext initializes the oto audio context on first use.
func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   emucore.SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

// NewAudioPlayer creates push-model audio playback: the emulation loop
// queues each frame's samples and oto drains the ring buffer.
func NewAudioPlayer() (*AudioPlayer, error) {
	ctx, err := ensureOtoContext()
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	rb := NewAudioRingBuffer(ringBufferCapacity)
	player := ctx.NewPlayer(rb)
	player.Play()

	return &AudioPlayer{
		player:     player,
		ringBuffer: rb,
		audioBytes: make([]byte, 0, 4096),
	}, nil
}

// NewAudioPlayerFromSource creates pull-model audio playback: oto's
// requests are satisfied directly from src, which must fill every
// requested sample. Underrun and overrun handling belong to src.
func NewAudioPlayerFromSource(src emucore.SampleSource) (*AudioPlayer, error) {
	ctx, err := ensureOtoContext()
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	player := ctx.NewPlayer(&sourceReader{src: src})
	player.Play()

	return &AudioPlayer{player: player}, nil
}

// QueueSamples converts int16 samples to bytes and writes them to the
// ring buffer for oto to consume. No-op for pull-model players.
func (a *AudioPlayer) QueueSamples(samples []int16) {
	if a.ringBuffer == nil || len(samples) == 0 {
		return
	}

	needed := len(samples) * 2
	if cap(a.audioBytes) < needed {
		a.audioBytes = make([]byte, 0, needed)
	}
	a.audioBytes = a.audioBytes[:0]
	for _, sample := range samples {
		a.audioBytes = append(a.audioBytes, byte(sample), byte(sample>>8))
	}

	a.ringBuffer.Write(a.audioBytes)
}

// GetBufferLevel returns the total bytes of audio currently buffered
// (ring buffer + oto player internal buffer). Used for ADT pacing.
func (a *AudioPlayer) GetBufferLevel() int {
	level := a.player.BufferedSize()
	if a.ringBuffer != nil {
		level += a.ringBuffer.Buffered()
	}
	return level
}

// SetVolume sets the playback volume. Values are clamped to [0.0, 2.0].
func (a *AudioPlayer) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 2.0 {
		vol = 2.0
	}
	a.player.SetVolume(vol)
}

// Pause suspends playback without tearing down the device.
func (a *AudioPlayer) Pause() {
	a.player.Pause()
}

// Resume restarts playback after Pause.
func (a *AudioPlayer) Resume() {
	a.player.Play()
}

// Close cleans up audio resources.
func (a *AudioPlayer) Close() {
	if a.ringBuffer != nil {
		a.ringBuffer.Close()
	}
	if a.player != nil {
		a.player.Close()
	}
}

// sourceReader adapts a SampleSource to the io.Reader oto pulls from.
// Every Read supplies exactly len(p) bytes; a carry byte keeps sample
// alignment across odd-sized requests.
type sourceReader struct {
	src      emucore.SampleSource
	samples  []int16
	carry    byte
	hasCarry bool
}

func (r *sourceReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	if r.hasCarry {
		p[0] = r.carry
		r.hasCarry = false
		n = 1
	}

	need := len(p) - n
	count := (need + 1) / 2
	if count > 0 {
		if cap(r.samples) < count {
			r.samples = make([]int16, count)
		}
		buf := r.samples[:count]
		r.src.ReadSamples(buf)

		for _, s := range buf {
			if need >= 2 {
				p[n] = byte(s)
				p[n+1] = byte(s >> 8)
				n += 2
				need -= 2
			} else {
				// Odd request size: emit the low byte now, carry the
				// high byte into the next Read.
				p[n] = byte(s)
				n++
				r.carry = byte(s >> 8)
				r.hasCarry = true
			}
		}
	}

	return n, nil
}
