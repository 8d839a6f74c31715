package ui

import (
	"image"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	emucore "github.com/user-none/enes/api"
	"github.com/user-none/enes/storage"
)

// Game implements ebiten.Game for the emulator frontend. The Ebiten thread
// only refreshes shared input state and presents staged frames; all
// emulation runs on the goroutines owned by EmuThread.
type Game struct {
	machine emucore.Machine
	frames  *FrameSync
	stage   *FrameStage
	keys    *SharedKeys
	input   *SharedInput
	hotkeys *Hotkeys

	mappings     [emucore.MaxPlayers]InputMapping
	console      *Console
	overlay      *ConsoleOverlay
	notification *Notification
	audio        *AudioPlayer
	emuThread    *EmuThread
	config       *storage.Config

	overlayVisible atomic.Bool

	// Reusable upload target for the staged frame
	frameImage *ebiten.Image
}

// RequestSoftReset arms a one-shot console soft reset, applied on the next
// hotkey pass of the emulation goroutine.
func (g *Game) RequestSoftReset() {
	g.hotkeys.RequestSoftReset()
}

// Console returns the debug console for host-side diagnostics output.
func (g *Game) Console() *Console {
	return g.console
}

// Update implements ebiten.Game. Ebiten thread.
func (g *Game) Update() error {
	if g.frames.ShutdownRequested() {
		return ebiten.Termination
	}

	// Whole-keyboard snapshot for the emulation goroutine's hotkey pass.
	g.keys.Refresh()

	// Controller state
	g.pollInputToShared()

	// Keys the Ebiten thread owns: display and host-side capture.
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.takeScreenshot()
	}

	// Track window geometry for saving at exit.
	if !ebiten.IsFullscreen() {
		g.config.Window.Width, g.config.Window.Height = ebiten.WindowSize()
	}

	return nil
}

// Draw implements ebiten.Game. Ebiten thread.
func (g *Game) Draw(screen *ebiten.Image) {
	pixels := g.stage.Read()
	if pixels != nil {
		if g.frameImage == nil {
			g.frameImage = ebiten.NewImage(emucore.ScreenWidth, emucore.ScreenHeight)
		}
		g.frameImage.WritePixels(pixels)

		bounds := screen.Bounds()
		vp := Boxify(bounds.Dx(), bounds.Dy())

		opts := &ebiten.DrawImageOptions{}
		opts.Filter = ebiten.FilterNearest
		opts.GeoM.Scale(
			float64(vp.W)/float64(emucore.ScreenWidth),
			float64(vp.H)/float64(emucore.ScreenHeight),
		)
		opts.GeoM.Translate(float64(vp.X), float64(vp.Y))
		screen.DrawImage(g.frameImage, opts)
	}

	if g.overlayVisible.Load() {
		g.overlay.Draw(screen)
	}
	g.notification.Draw(screen)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// pollInputToShared reads keyboard input and writes button bitmasks to
// shared state for the emulation goroutine.
func (g *Game) pollInputToShared() {
	ks := g.keys.Lock()
	for player := 0; player < emucore.MaxPlayers; player++ {
		g.input.Set(player, g.mappings[player].Buttons(ks))
	}
	g.keys.Unlock()
}

func (g *Game) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	g.config.Window.Fullscreen = ebiten.IsFullscreen()
}

// takeScreenshot saves the staged emulator frame, not the composited
// window, so overlays and notifications never end up in captures.
func (g *Game) takeScreenshot() {
	pixels := g.stage.Read()
	if pixels == nil {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, emucore.ScreenWidth, emucore.ScreenHeight))
	copy(img.Pix, pixels)

	if _, err := SaveScreenshot(img); err != nil {
		log.Printf("Screenshot failed: %v", err)
		g.notification.ShowDefault("Screenshot failed")
		return
	}
	g.notification.ShowDefault("Screenshot saved")
}

// Close shuts both goroutines down and releases machine and audio
// resources. Called after ebiten.RunGame returns.
func (g *Game) Close() {
	g.frames.Shutdown()
	g.emuThread.Wait()

	if g.audio != nil {
		g.audio.Close()
	}
	g.machine.Close()
}

// saveConfig writes the current window and UI state to config.json.
func (g *Game) saveConfig() {
	g.config.Debug.OverlayVisible = g.overlayVisible.Load()
	if err := storage.SaveConfig(g.config); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
}

// NewGame builds the full frontend around a machine: storage, window,
// audio, console overlay, hotkeys and the emulation goroutines. The
// goroutines are not started; call Run (or start and drive the Game
// yourself) afterwards. Embedders that need the soft reset trigger or the
// debug console keep the returned Game.
func NewGame(machine emucore.Machine, hooks emucore.Hooks, cfg emucore.RunConfig) *Game {
	if cfg.DataDirName == "" {
		cfg.DataDirName = "enes"
	}
	storage.Init(cfg.DataDirName)
	if err := storage.EnsureDirectories(); err != nil {
		Fatal("Failed to create data directory: %v", err)
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: config unreadable, using defaults: %v", err)
		config = storage.DefaultConfig()
	}
	storage.CorrectConfig(config)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(emucore.ScreenWidth, emucore.ScreenHeight, -1, -1)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetTPS(60)
	if config.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	audioPlayer, err := NewAudioPlayer()
	if err != nil {
		log.Printf("Warning: audio initialization failed: %v", err)
		audioPlayer = nil
	} else {
		audioPlayer.SetVolume(config.Audio.Volume)
		if config.Audio.Muted {
			audioPlayer.SetVolume(0)
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("Warning: clipboard not available: %v", err)
		clipboardOK = false
	}

	console := NewConsole()
	notification := NewNotification()
	frames := NewFrameSync()

	g := &Game{
		machine:      machine,
		frames:       frames,
		stage:        NewFrameStage(),
		keys:         &SharedKeys{},
		input:        &SharedInput{},
		mappings:     DefaultMappings(),
		console:      console,
		overlay:      NewConsoleOverlay(console),
		notification: notification,
		audio:        audioPlayer,
		config:       config,
	}
	g.overlayVisible.Store(config.Debug.OverlayVisible)

	var copyText func(string)
	if clipboardOK {
		copyText = func(text string) {
			clipboard.Write(clipboard.FmtText, []byte(text))
		}
	}

	g.hotkeys = NewHotkeys(hooks, console, frames,
		notification.ShowDefault,
		func() { g.overlayVisible.Store(!g.overlayVisible.Load()) },
		copyText)

	g.emuThread = NewEmuThread(machine, frames, g.stage, g.keys, g.input, g.hotkeys, audioPlayer)

	return g
}

// Run starts the emulation goroutines and blocks inside Ebiten's loop
// until the window closes or a hotkey requests shutdown, then tears
// everything down and persists the config.
func (g *Game) Run() error {
	g.emuThread.Start()

	err := ebiten.RunGame(g)

	g.Close()
	g.saveConfig()

	return err
}

// Run drives a machine with the standard frontend: window, audio, debug
// console overlay and UI hotkeys. It blocks until the window closes or a
// hotkey requests shutdown.
func Run(machine emucore.Machine, hooks emucore.Hooks, cfg emucore.RunConfig) error {
	return NewGame(machine, hooks, cfg).Run()
}
