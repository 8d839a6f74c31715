package style

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// UI colors.
var (
	Text       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	Surface    = color.NRGBA{0x25, 0x25, 0x3a, 0xff}
	DimOverlay = color.NRGBA{0x00, 0x00, 0x00, 0x80} // Translucent console backdrop
)

// ConsolePalette maps console color indices 0-15 to display colors.
// Index 0 is the default text color. The remaining entries follow the
// classic 16-color text-mode palette so existing color-code strings keep
// their expected hues.
var ConsolePalette = [16]color.NRGBA{
	{0xff, 0xff, 0xff, 0xff}, // 0: white (default)
	{0x00, 0x00, 0xaa, 0xff}, // 1: blue
	{0x00, 0xaa, 0x00, 0xff}, // 2: green
	{0x00, 0xaa, 0xaa, 0xff}, // 3: cyan
	{0xaa, 0x00, 0x00, 0xff}, // 4: red
	{0xaa, 0x00, 0xaa, 0xff}, // 5: magenta
	{0xaa, 0x55, 0x00, 0xff}, // 6: brown
	{0xaa, 0xaa, 0xaa, 0xff}, // 7: light gray
	{0x55, 0x55, 0x55, 0xff}, // 8: dark gray
	{0x55, 0x55, 0xff, 0xff}, // 9: light blue
	{0x55, 0xff, 0x55, 0xff}, // 10: light green
	{0x55, 0xff, 0xff, 0xff}, // 11: light cyan
	{0xff, 0x55, 0x55, 0xff}, // 12: light red
	{0xff, 0x55, 0xff, 0xff}, // 13: light magenta
	{0xff, 0xff, 0x55, 0xff}, // 14: yellow
	{0xff, 0xff, 0xff, 0xff}, // 15: bright white
}

var (
	regularOnce   sync.Once
	regularSource *text.GoTextFaceSource
	regularFace   text.Face

	monoOnce   sync.Once
	monoSource *text.GoTextFaceSource
	monoFace   text.Face
)

// FontFace returns the proportional face used for notifications.
func FontFace() text.Face {
	regularOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return
		}
		regularSource = source
		regularFace = &text.GoTextFace{
			Source: regularSource,
			Size:   FontSize,
		}
	})
	return regularFace
}

// ConsoleFontFace returns the monospace face used for the debug console
// overlay, sized so a full 128-column row fits the overlay box.
func ConsoleFontFace() text.Face {
	monoOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
		if err != nil {
			log.Printf("Failed to load console font source: %v", err)
			return
		}
		monoSource = source
		monoFace = &text.GoTextFace{
			Source: monoSource,
			Size:   ConsoleFontSize,
		}
	})
	return monoFace
}
