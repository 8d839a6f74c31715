package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	emucore "github.com/user-none/enes/api"
)

// corruptChanceStep is how much F3/F4 move the memory corruption chance
// per press.
const corruptChanceStep = 0x1000

// Hotkeys evaluates UI key bindings on the emulation goroutine, once per
// emulated frame. All edge detection happens here against the key snapshot
// taken on the Ebiten thread, so a tap shorter than one emulated frame is
// never lost and a held key never repeats an edge action.
type Hotkeys struct {
	hooks   emucore.Hooks
	console *Console
	sync    *FrameSync
	edge    *EdgeDetector

	// Injected so the emulation goroutine never touches Ebiten or OS
	// clipboard state directly.
	notify        func(msg string)
	toggleOverlay func()
	copyText      func(text string)

	softReset atomic.Bool
}

// NewHotkeys creates the hotkey handler. notify, toggleOverlay and copyText
// may be nil, in which case the corresponding feedback is skipped.
func NewHotkeys(hooks emucore.Hooks, console *Console, fs *FrameSync,
	notify func(string), toggleOverlay func(), copyText func(string)) *Hotkeys {
	if hooks == nil {
		hooks = emucore.NopHooks{}
	}
	return &Hotkeys{
		hooks:         hooks,
		console:       console,
		sync:          fs,
		edge:          &EdgeDetector{},
		notify:        notify,
		toggleOverlay: toggleOverlay,
		copyText:      copyText,
	}
}

// RequestSoftReset arms a one-shot soft reset. The reset fires on the next
// HandleUIKeys pass and the trigger clears itself. Safe to call from any
// goroutine.
func (h *Hotkeys) RequestSoftReset() {
	h.softReset.Store(true)
}

// HandleUIKeys runs one hotkey pass over the current key snapshot and then
// advances the edge detector so the next pass sees this snapshot as
// "last frame". The caller holds the snapshot lock for the duration.
func (h *Hotkeys) HandleUIKeys(keys KeyState) {
	if keys.Down(ebiten.KeyEscape) {
		h.sync.Shutdown()
	}

	if h.edge.Pressed(keys, ebiten.KeyF3) {
		h.reportCorruptChance(h.hooks.AdjustCorruptChance(corruptChanceStep))
	}
	if h.edge.Pressed(keys, ebiten.KeyF4) {
		h.reportCorruptChance(h.hooks.AdjustCorruptChance(-corruptChanceStep))
	}

	if h.edge.Pressed(keys, ebiten.KeyF5) {
		h.hooks.SaveState()
		h.notifyf("State saved")
	}
	if h.edge.Pressed(keys, ebiten.KeyF8) {
		h.hooks.LoadState()
		h.notifyf("State loaded")
	}

	// Rewind runs while the key is held, not on the edge.
	h.hooks.Rewind(keys.Down(ebiten.KeyBackspace))

	if keys.Down(ebiten.KeyAltLeft) {
		if h.edge.Pressed(keys, ebiten.KeyD) && h.toggleOverlay != nil {
			h.toggleOverlay()
		}
		if h.edge.Pressed(keys, ebiten.KeyC) && h.copyText != nil && h.console != nil {
			h.copyText(h.console.String())
			h.notifyf("Console copied to clipboard")
		}
	}

	if h.softReset.Swap(false) {
		h.hooks.SoftReset()
		h.notifyf("Reset")
	}

	h.edge.Advance(keys)
}

func (h *Hotkeys) reportCorruptChance(chance uint32) {
	msg := fmt.Sprintf("Corrupt chance: 0x%05X", chance)
	if h.console != nil {
		h.console.Printf("%s\n", msg)
	}
	h.notifyf(msg)
}

func (h *Hotkeys) notifyf(msg string) {
	if h.notify != nil {
		h.notify(msg)
	}
}
