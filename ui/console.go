package ui

import (
	"fmt"
	"strings"
	"sync"
)

// Console grid dimensions in cells.
const (
	ConsoleCols = 128
	ConsoleRows = 60
)

// Console byte protocol constants. Bytes at or above colorCodeBase select
// the color register (value minus the base) instead of storing a glyph;
// 128..239 are silently ignored. The thresholds are load-bearing for
// callers that embed color codes in strings, so they are kept exactly.
const (
	printableMin  = 32
	printableMax  = 127
	colorCodeBase = 240
)

// Console is a fixed-size character/color grid with a cursor, used for
// on-screen diagnostics. Writes are append-oriented: the cursor wraps at
// the right edge and the grid scrolls up one row when the cursor runs off
// the bottom. Scrolling is terminal-style; the newly exposed bottom row
// keeps its stale content until overwritten.
//
// The grid is written by the emulation goroutine and read by the Ebiten
// draw thread through Snapshot, so all access goes through an internal
// mutex.
type Console struct {
	mu     sync.Mutex
	chars  [ConsoleCols * ConsoleRows]byte
	colors [ConsoleCols * ConsoleRows]byte
	curX   int
	curY   int
	color  byte
}

// NewConsole returns an empty console with the cursor at the origin.
func NewConsole() *Console {
	return &Console{}
}

// Print runs the byte protocol over s. Printable bytes (32..127) store the
// character and the current color at the cursor and advance it; LF and CR
// move the cursor to the start of the next row; bytes >= 240 set the color
// register; everything else is ignored. Wrap and scroll checks run after
// every byte so the cursor is always back in range before the next store.
func (c *Console) Print(s string) {
	c.mu.Lock()
	for i := 0; i < len(s); i++ {
		b := s[i]

		switch {
		case b >= printableMin && b <= printableMax:
			c.chars[c.curY*ConsoleCols+c.curX] = b
			c.colors[c.curY*ConsoleCols+c.curX] = c.color
			c.curX++
		case b == '\n' || b == '\r':
			c.curX = 0
			c.curY++
		case b >= colorCodeBase:
			c.color = b - colorCodeBase
		}

		if c.curX >= ConsoleCols {
			c.curX = 0
			c.curY++
		}
		if c.curY >= ConsoleRows {
			c.scroll()
			c.curY = ConsoleRows - 1
		}
	}
	c.mu.Unlock()
}

// Printf formats like fmt.Sprintf and runs the byte protocol over the
// result.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// MovePrintf positions the cursor, then formats and prints. Used for
// fixed-location status lines. Coordinates are clamped into the grid.
func (c *Console) MovePrintf(x, y int, format string, args ...any) {
	c.SetCursor(x, y)
	c.Printf(format, args...)
}

// SetCursor moves the cursor, clamping into the grid.
func (c *Console) SetCursor(x, y int) {
	c.mu.Lock()
	c.curX = clampInt(x, 0, ConsoleCols-1)
	c.curY = clampInt(y, 0, ConsoleRows-1)
	c.mu.Unlock()
}

// Cursor returns the current cursor position.
func (c *Console) Cursor() (x, y int) {
	c.mu.Lock()
	x, y = c.curX, c.curY
	c.mu.Unlock()
	return
}

// scroll shifts both planes up one row, discarding row 0. Row 59 retains
// its old content. Caller holds the mutex.
func (c *Console) scroll() {
	copy(c.chars[:], c.chars[ConsoleCols:])
	copy(c.colors[:], c.colors[ConsoleCols:])
}

// Clear empties the grid and resets the cursor and color register.
func (c *Console) Clear() {
	c.mu.Lock()
	for i := range c.chars {
		c.chars[i] = 0
		c.colors[i] = 0
	}
	c.curX, c.curY = 0, 0
	c.color = 0
	c.mu.Unlock()
}

// Snapshot copies both planes into the destination slices, which must each
// hold ConsoleCols*ConsoleRows bytes. The draw thread renders from its own
// copy so it never holds the lock while drawing.
func (c *Console) Snapshot(dstChars, dstColors []byte) {
	c.mu.Lock()
	copy(dstChars, c.chars[:])
	copy(dstColors, c.colors[:])
	c.mu.Unlock()
}

// String renders the grid as text, one line per row with trailing blanks
// trimmed and empty trailing rows dropped. Used for clipboard export.
func (c *Console) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	lastRow := -1
	lines := make([]string, ConsoleRows)
	for y := 0; y < ConsoleRows; y++ {
		row := c.chars[y*ConsoleCols : (y+1)*ConsoleCols]
		end := len(row)
		for end > 0 && (row[end-1] == 0 || row[end-1] == ' ') {
			end--
		}
		line := make([]byte, end)
		for i := 0; i < end; i++ {
			if row[i] < printableMin || row[i] > printableMax {
				line[i] = ' '
			} else {
				line[i] = row[i]
			}
		}
		lines[y] = string(line)
		if end > 0 {
			lastRow = y
		}
	}
	for y := 0; y <= lastRow; y++ {
		sb.WriteString(lines[y])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
