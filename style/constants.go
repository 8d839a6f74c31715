package style

import "time"

// Font sizes in points.
const (
	FontSize        = 14
	ConsoleFontSize = 8
)

// Console overlay geometry. The box is a fixed 640x480 panel centered in
// the window; each of the 128x60 cells is 5x8 pixels, matching the bitmap
// font of the overlay this replaces.
const (
	OverlayWidth  = 640
	OverlayHeight = 480
	CellWidth     = 5
	CellHeight    = 8
)

// Notification box layout.
const (
	OverlayPadding = 10
	OverlayMargin  = 16
)

// Timing.
const (
	NotificationDuration = 2 * time.Second
)
