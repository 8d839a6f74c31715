package ui

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	emucore "github.com/user-none/enes/api"
)

// InputMapping maps pad button bit positions to keyboard keys for one
// player. Buttons without an entry never read as held.
type InputMapping struct {
	Keys map[int]ebiten.Key
}

// DefaultMappings returns the keyboard layout for both controller ports.
// Player 1 uses arrows + Z/X/RShift/Enter; player 2 is unmapped.
func DefaultMappings() [emucore.MaxPlayers]InputMapping {
	return [emucore.MaxPlayers]InputMapping{
		{Keys: map[int]ebiten.Key{
			emucore.ButtonUp:     ebiten.KeyArrowUp,
			emucore.ButtonDown:   ebiten.KeyArrowDown,
			emucore.ButtonLeft:   ebiten.KeyArrowLeft,
			emucore.ButtonRight:  ebiten.KeyArrowRight,
			emucore.ButtonA:      ebiten.KeyX,
			emucore.ButtonB:      ebiten.KeyZ,
			emucore.ButtonSelect: ebiten.KeyShiftRight,
			emucore.ButtonStart:  ebiten.KeyEnter,
		}},
		{},
	}
}

// Buttons derives the pad bitmask from a keyboard snapshot. Opposing
// d-pad directions held together cancel out: many games misbehave on
// simultaneous left+right or up+down, which a keyboard can produce but
// a real d-pad cannot.
func (m InputMapping) Buttons(keys KeyState) uint32 {
	var buttons uint32
	for bit, key := range m.Keys {
		if keys.Down(key) {
			buttons |= 1 << bit
		}
	}
	return eliminateOpposingDirections(buttons)
}

func eliminateOpposingDirections(buttons uint32) uint32 {
	const upDown = 1<<emucore.ButtonUp | 1<<emucore.ButtonDown
	const leftRight = 1<<emucore.ButtonLeft | 1<<emucore.ButtonRight

	if buttons&upDown == upDown {
		buttons &^= upDown
	}
	if buttons&leftRight == leftRight {
		buttons &^= leftRight
	}
	return buttons
}

// SharedInput holds controller state as button bitmasks written by the
// Ebiten thread and read by the emulation goroutine.
type SharedInput struct {
	mu      sync.Mutex
	buttons [emucore.MaxPlayers]uint32
}

// Set updates the button bitmask for a player from the Ebiten thread.
func (si *SharedInput) Set(player int, buttons uint32) {
	if player < 0 || player >= emucore.MaxPlayers {
		return
	}
	si.mu.Lock()
	si.buttons[player] = buttons
	si.mu.Unlock()
}

// Read returns the current button bitmasks for all players.
func (si *SharedInput) Read() [emucore.MaxPlayers]uint32 {
	si.mu.Lock()
	result := si.buttons
	si.mu.Unlock()
	return result
}
