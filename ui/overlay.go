package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/enes/style"
)

// ConsoleOverlay renders the debug console grid as a translucent panel
// centered over the game view. It owns snapshot buffers so Draw never
// allocates and never holds the console lock while rasterizing.
type ConsoleOverlay struct {
	console *Console
	chars   []byte
	colors  []byte
	bg      *ebiten.Image
}

// NewConsoleOverlay creates an overlay bound to console.
func NewConsoleOverlay(console *Console) *ConsoleOverlay {
	return &ConsoleOverlay{
		console: console,
		chars:   make([]byte, ConsoleCols*ConsoleRows),
		colors:  make([]byte, ConsoleCols*ConsoleRows),
	}
}

// Draw renders the overlay panel onto screen. Ebiten thread only.
func (o *ConsoleOverlay) Draw(screen *ebiten.Image) {
	o.console.Snapshot(o.chars, o.colors)

	bounds := screen.Bounds()
	x0 := float64(bounds.Dx()-style.OverlayWidth) / 2
	y0 := float64(bounds.Dy()-style.OverlayHeight) / 2

	if o.bg == nil {
		o.bg = ebiten.NewImage(style.OverlayWidth, style.OverlayHeight)
		o.bg.Fill(style.DimOverlay)
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x0, y0)
	screen.DrawImage(o.bg, opts)

	face := style.ConsoleFontFace()
	if face == nil {
		return
	}

	// Cells are positioned individually so the glyph grid stays aligned
	// with the fixed cell size regardless of the face's natural advance.
	var cell [1]byte
	for row := 0; row < ConsoleRows; row++ {
		base := row * ConsoleCols
		for col := 0; col < ConsoleCols; col++ {
			ch := o.chars[base+col]
			if ch <= ' ' {
				// Untouched cells read as zero; nothing to rasterize
				// for those or for blanks.
				continue
			}
			cell[0] = ch

			textOpts := &text.DrawOptions{}
			textOpts.GeoM.Translate(x0+float64(col*style.CellWidth), y0+float64(row*style.CellHeight))
			textOpts.ColorScale.ScaleWithColor(style.ConsolePalette[o.colors[base+col]&0x0f])
			text.Draw(screen, string(cell[:]), face, textOpts)
		}
	}
}
