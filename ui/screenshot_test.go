package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/user-none/enes/storage"
)

func TestSaveScreenshot(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	storage.Init("enes-test")

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(3, 3, color.RGBA{0xff, 0, 0, 0xff})

	path, err := SaveScreenshot(img)
	if err != nil {
		t.Fatalf("SaveScreenshot failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot file missing: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("screenshot is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 8 {
		t.Errorf("unexpected screenshot size %v", decoded.Bounds())
	}
}
