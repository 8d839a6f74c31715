package ui

import (
	"fmt"
	"sync"

	emucore "github.com/user-none/enes/api"
)

// syncState tracks the frame handoff slot. There is exactly one in-flight
// frame slot, so the whole protocol is a three-state machine:
//
//	syncIdle            consumer is busy, no frame pending; publishes drop
//	syncConsumerWaiting consumer is blocked in WaitFrame; next publish swaps
//	syncFrameReady      a swapped frame awaits pickup; another publish
//	                    swaps again, replacing the pending frame
type syncState int

const (
	syncIdle syncState = iota
	syncConsumerWaiting
	syncFrameReady
)

// FrameSync hands completed frames from the emulation goroutine to the
// presenter goroutine. The producer writes pixels into the back buffer and
// publishes; the consumer waits, then reads the front buffer. On publish the
// two buffer labels are swapped, never copied. A publish that lands before
// a pending frame is picked up replaces it, so the consumer always wakes to
// the most recent frame; a publish while the consumer is busy outside
// WaitFrame is dropped. The producer is never blocked for longer than the
// critical section, and the consumer only ever sees frames in publish order.
type FrameSync struct {
	mu       sync.Mutex
	cond     *sync.Cond
	state    syncState
	shutdown bool

	back  []uint32 // Written by the emulation goroutine between publishes
	front []uint32 // Read by the presenter goroutine after a successful wait
}

// NewFrameSync creates a frame synchronizer with both pixel buffers
// allocated at the fixed screen size.
func NewFrameSync() *FrameSync {
	fs := &FrameSync{
		back:  make([]uint32, emucore.ScreenWidth*emucore.ScreenHeight),
		front: make([]uint32, emucore.ScreenWidth*emucore.ScreenHeight),
	}
	fs.cond = sync.NewCond(&fs.mu)
	return fs
}

// WritePixel stores one packed ARGB color into the back buffer. Producer
// only. Out-of-range coordinates indicate a defective producer, not an
// environment condition, and panic.
func (fs *FrameSync) WritePixel(x, y int, color uint32) {
	if x < 0 || x >= emucore.ScreenWidth || y < 0 || y >= emucore.ScreenHeight {
		panic(fmt.Sprintf("pixel write out of bounds: (%d, %d)", x, y))
	}
	fs.back[y*emucore.ScreenWidth+x] = color
}

// PublishFrame signals that the back buffer holds a completed frame. If the
// consumer is waiting, the buffer labels swap and the consumer is woken. If
// a frame is already pending because the consumer has not woken yet, the
// labels swap again: the pending frame is replaced, so the consumer always
// picks up the most recent publish. Only a consumer that is busy outside
// WaitFrame causes a drop, and then subsequent pixel writes overwrite the
// back buffer in place — a slow consumer costs frames, never producer
// progress. Nothing is allocated or queued on any path.
func (fs *FrameSync) PublishFrame() {
	fs.mu.Lock()
	if fs.state == syncConsumerWaiting || fs.state == syncFrameReady {
		fs.back, fs.front = fs.front, fs.back
		fs.state = syncFrameReady
		fs.cond.Signal()
	}
	fs.mu.Unlock()
}

// WaitFrame blocks until a frame is published or shutdown is requested.
// Consumer only. Returns true when a frame is available through Front,
// false when the consumer loop must terminate. No timeout: a producer that
// stops publishing starves the consumer until Shutdown.
func (fs *FrameSync) WaitFrame() bool {
	fs.mu.Lock()
	fs.state = syncConsumerWaiting
	for fs.state != syncFrameReady && !fs.shutdown {
		fs.cond.Wait()
	}
	if fs.shutdown {
		fs.mu.Unlock()
		return false
	}
	fs.state = syncIdle
	fs.mu.Unlock()
	return true
}

// Front returns the front buffer. Only valid on the consumer between a
// successful WaitFrame and the next WaitFrame call; the labels cannot swap
// again until the consumer comes back to wait.
func (fs *FrameSync) Front() []uint32 {
	fs.mu.Lock()
	f := fs.front
	fs.mu.Unlock()
	return f
}

// Shutdown requests termination and wakes a blocked consumer. Safe from any
// goroutine, idempotent.
func (fs *FrameSync) Shutdown() {
	fs.mu.Lock()
	fs.shutdown = true
	fs.cond.Broadcast()
	fs.mu.Unlock()
}

// ShutdownRequested reports whether Shutdown has been called. The emulation
// goroutine checks this between frames to exit its loop.
func (fs *FrameSync) ShutdownRequested() bool {
	fs.mu.Lock()
	s := fs.shutdown
	fs.mu.Unlock()
	return s
}
