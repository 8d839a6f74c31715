package ui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyState is a full keyboard snapshot indexed by ebiten.Key. The frontend
// never consumes individual key events; the Ebiten thread refreshes a whole
// snapshot once per Update and the emulation goroutine polls it.
type KeyState []bool

// NewKeyState allocates a snapshot covering every ebiten key code.
func NewKeyState() KeyState {
	return make(KeyState, int(ebiten.KeyMax)+1)
}

// Down reports whether the key is held in this snapshot. Keys outside the
// snapshot (after a size change) read as up.
func (ks KeyState) Down(key ebiten.Key) bool {
	i := int(key)
	return i >= 0 && i < len(ks) && ks[i]
}

// keyPressed reports a down edge: held now, not held in the last pass.
// Pure function of the two snapshots; the caller serializes access.
func keyPressed(cur, last KeyState, key ebiten.Key) bool {
	return cur.Down(key) && !last.Down(key)
}

// keyReleased reports an up edge: not held now, held in the last pass.
func keyReleased(cur, last KeyState, key ebiten.Key) bool {
	return !cur.Down(key) && last.Down(key)
}

// EdgeDetector derives per-pass press/release events from consecutive
// keyboard snapshots. It holds the snapshot from exactly one prior
// evaluation pass; Advance must be called once at the end of each pass.
// The detector itself does no locking — the caller holds the snapshot
// still for the duration of a pass.
type EdgeDetector struct {
	last KeyState
}

// Pressed reports whether key went down since the last pass.
func (d *EdgeDetector) Pressed(cur KeyState, key ebiten.Key) bool {
	if len(d.last) != len(cur) {
		// Snapshot was re-sized; all keys count as newly tracked and
		// produce no edges this pass.
		return false
	}
	return keyPressed(cur, d.last, key)
}

// Released reports whether key came up since the last pass.
func (d *EdgeDetector) Released(cur KeyState, key ebiten.Key) bool {
	if len(d.last) != len(cur) {
		return false
	}
	return keyReleased(cur, d.last, key)
}

// Advance records cur as the last-pass snapshot. Reallocates on size
// change so a backend that re-enumerates keys cannot produce spurious
// edges from a size mismatch.
func (d *EdgeDetector) Advance(cur KeyState) {
	if len(d.last) != len(cur) {
		d.last = make(KeyState, len(cur))
	}
	copy(d.last, cur)
}

// SharedKeys holds the current keyboard snapshot, written by the Ebiten
// thread each Update and read by the emulation goroutine during hotkey
// evaluation. Guarded by its own mutex, separate from the frame-sync lock:
// key refresh and key-driven UI actions are independent of frame delivery.
type SharedKeys struct {
	mu   sync.Mutex
	keys KeyState
}

// Refresh polls the whole keyboard into the snapshot. Ebiten thread only.
func (sk *SharedKeys) Refresh() {
	sk.mu.Lock()
	if sk.keys == nil {
		sk.keys = NewKeyState()
	}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		sk.keys[int(k)] = ebiten.IsKeyPressed(k)
	}
	sk.mu.Unlock()
}

// Lock takes the snapshot lock and returns the live snapshot. The caller
// must not retain it past the matching Unlock.
func (sk *SharedKeys) Lock() KeyState {
	sk.mu.Lock()
	if sk.keys == nil {
		sk.keys = NewKeyState()
	}
	return sk.keys
}

// Unlock releases the snapshot lock.
func (sk *SharedKeys) Unlock() {
	sk.mu.Unlock()
}
