package ui

// Viewport is the window sub-region the frame is stretched into.
type Viewport struct {
	X, Y, W, H int
}

// Boxify computes the largest 4:3 rectangle centered in a window of the
// given size. The frame texture is stretched into it, so the emulated
// 256x240 picture always presents at the console's display aspect ratio
// regardless of window shape.
func Boxify(winW, winH int) Viewport {
	ratio := (float64(winW) * 0.75) / float64(winH)

	var w, h int
	if ratio >= 1 {
		// Window is relatively wide: fit height.
		h = winH
		w = int(float64(winH) / 0.75)
	} else {
		w = winW
		h = int(float64(winW) * 0.75)
	}

	return Viewport{
		X: (winW - w) / 2,
		Y: (winH - h) / 2,
		W: w,
		H: h,
	}
}
