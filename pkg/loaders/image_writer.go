package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when no encoder matches an output file extension
var ErrUnsupportedFormat = errors.New("unsupported image format")

// EncodeImage writes img to w in the named format: "png", "tiff" or "bmp"
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatFromPath picks the output format from a file extension
func FormatFromPath(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return "png", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".bmp":
		return "bmp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// SaveImage writes img to filename, choosing the encoder from the extension
func SaveImage(filename string, img image.Image) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := EncodeImage(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}

	logger.Debugf("saved %s image %s", format, filename)
	return nil
}
