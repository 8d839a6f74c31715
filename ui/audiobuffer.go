package ui

import (
	"io"
	"sync"
)

// AudioRingBuffer is a fixed-capacity byte ring between the emulation
// goroutine (Write) and oto's playback reader (Read). Overflow drops the
// oldest data so a stalled reader cannot block emulation; Read blocks
// while the buffer is open and empty, so underrun policy stays with the
// writer. After Close, Read drains the remaining data and then returns
// io.EOF.
type AudioRingBuffer struct {
	mu       sync.Mutex
	cond     *sync.Cond
	buf      []byte
	readPos  int
	writePos int
	count    int
	closed   bool
}

// NewAudioRingBuffer creates a ring buffer holding capacity bytes.
func NewAudioRingBuffer(capacity int) *AudioRingBuffer {
	rb := &AudioRingBuffer{
		buf: make([]byte, capacity),
	}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// Write appends data, dropping the oldest buffered bytes on overflow.
// Writes to a closed buffer are silently ignored.
func (rb *AudioRingBuffer) Write(data []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.closed {
		return
	}

	// Larger than the whole ring: only the tail can survive.
	if len(data) > len(rb.buf) {
		data = data[len(data)-len(rb.buf):]
	}

	// Drop oldest to make room.
	if overflow := rb.count + len(data) - len(rb.buf); overflow > 0 {
		rb.readPos = (rb.readPos + overflow) % len(rb.buf)
		rb.count -= overflow
	}

	for _, b := range data {
		rb.buf[rb.writePos] = b
		rb.writePos = (rb.writePos + 1) % len(rb.buf)
	}
	rb.count += len(data)

	rb.cond.Signal()
}

// Read implements io.Reader. Blocks while the buffer is open and empty.
func (rb *AudioRingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 && !rb.closed {
		rb.cond.Wait()
	}
	if rb.count == 0 && rb.closed {
		return 0, io.EOF
	}

	n := len(p)
	if n > rb.count {
		n = rb.count
	}
	for i := 0; i < n; i++ {
		p[i] = rb.buf[rb.readPos]
		rb.readPos = (rb.readPos + 1) % len(rb.buf)
	}
	rb.count -= n

	return n, nil
}

// Buffered returns the number of bytes currently buffered.
func (rb *AudioRingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Clear flushes all buffered data.
func (rb *AudioRingBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.readPos = 0
	rb.writePos = 0
	rb.count = 0
}

// Close marks the buffer closed and unblocks any waiting reader.
func (rb *AudioRingBuffer) Close() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.cond.Broadcast()
}
