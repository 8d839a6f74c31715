package ui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/user-none/enes/storage"
)

// SaveScreenshot writes img to the screenshots directory with a Unix
// timestamp filename and returns the full path written.
func SaveScreenshot(img image.Image) (string, error) {
	screenshotDir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%d.png", time.Now().Unix())
	fullPath := filepath.Join(screenshotDir, filename)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	return fullPath, nil
}
