package ui

import (
	"image"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/user-none/enes/style"
)

// Notification displays temporary messages on screen. Show is called from
// the emulation goroutine (hotkey feedback) and Draw from the Ebiten
// thread, so the fields are mutex-guarded.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Pre-allocated background image (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with the standard duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NotificationDuration)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// notificationRect computes the background box for a message in the
// bottom-right corner. ok is false when no face is available, in which
// case nothing can be rendered.
func notificationRect(face text.Face, message string, screenWidth, screenHeight int) (bgX, bgY, bgWidth, bgHeight int, ok bool) {
	if face == nil {
		return 0, 0, 0, 0, false
	}

	textWidth, textHeight := text.Measure(message, face, 0)

	padding := style.OverlayPadding
	bgWidth = int(textWidth) + padding*2
	bgHeight = int(textHeight) + padding*2

	margin := style.OverlayMargin
	bgX = screenWidth - bgWidth - margin
	bgY = screenHeight - bgHeight - margin
	return bgX, bgY, bgWidth, bgHeight, true
}

// Draw renders the notification in the bottom-right corner
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	face := style.FontFace()
	bgX, bgY, bgWidth, bgHeight, ok := notificationRect(face, message, bounds.Dx(), bounds.Dy())
	if !ok {
		return
	}
	padding := style.OverlayPadding

	// Reuse or create background image
	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	bgColor := style.Surface
	bgColor.A = 153 // 60% opacity
	n.bg.Fill(bgColor)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, face, textOpts)
}
