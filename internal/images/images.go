// Package images handles shelf photo discovery and preparation: listing
// supported files in a folder, normalizing color space before upload,
// and fetching remote images for the web surface.
package images

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// supportedExtensions lists the image formats accepted as scan input.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".bmp":  true,
}

// mimeByExtension maps supported extensions to the MIME type sent to the
// vision provider.
var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// IsSupported reports whether the file has a supported image extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtensions returns the accepted extensions for user-facing messages.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"}
}

// ListFolder returns the full paths of all supported images in dir,
// sorted by filename.
func ListFolder(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("input folder not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a folder: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	slog.Info("Found images", "count", len(paths), "folder", dir)
	return paths, nil
}

// Load reads an image file and normalizes its color space for upload,
// returning the image bytes and their MIME type.
func Load(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return Normalize(data, strings.ToLower(filepath.Ext(path)))
}

// Normalize flattens PNG images (which may carry an alpha channel) onto
// an opaque RGB JPEG; other formats pass through unchanged. Vision
// providers reject or mishandle alpha in some pipelines.
func Normalize(data []byte, ext string) ([]byte, string, error) {
	mimeType, ok := mimeByExtension[ext]
	if !ok {
		return nil, "", fmt.Errorf("unsupported image extension: %s", ext)
	}

	if ext != ".png" {
		return data, mimeType, nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode PNG: %w", err)
	}

	bounds := img.Bounds()
	flattened := image.NewRGBA(bounds)
	draw.Draw(flattened, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flattened, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flattened, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}
