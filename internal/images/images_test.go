package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"shelf.jpg", true},
		{"shelf.JPEG", true},
		{"shelf.png", true},
		{"shelf.webp", true},
		{"shelf.bmp", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSupported(tt.path); got != tt.expected {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestListFolder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "notes.txt", "c.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir.jpg"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListFolder(dir)
	if err != nil {
		t.Fatalf("ListFolder failed: %v", err)
	}

	expected := []string{"a.png", "b.jpg", "c.webp"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d images, got %v", len(expected), paths)
	}
	for i, name := range expected {
		if filepath.Base(paths[i]) != name {
			t.Errorf("path %d: expected %q, got %q", i, name, paths[i])
		}
	}
}

func TestListFolderMissing(t *testing.T) {
	if _, err := ListFolder("/nonexistent/folder"); err == nil {
		t.Error("expected error for missing folder")
	}
}

func TestListFolderNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.jpg")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ListFolder(file); err == nil {
		t.Error("expected error for non-directory path")
	}
}

func TestNormalizePassThrough(t *testing.T) {
	data := []byte("jpeg-bytes")

	out, mimeType, err := Normalize(data, ".jpg")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", mimeType)
	}
	if !bytes.Equal(out, data) {
		t.Error("non-PNG data must pass through unchanged")
	}
}

func TestNormalizeFlattensPNG(t *testing.T) {
	// PNG with an alpha channel.
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0
	}
	src.Set(1, 1, color.NRGBA{R: 200, G: 10, B: 10, A: 128})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	out, mimeType, err := Normalize(buf.Bytes(), ".png")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("expected image/jpeg after flattening, got %q", mimeType)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("flattened output is not valid JPEG: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Errorf("dimensions changed: %v -> %v", src.Bounds(), decoded.Bounds())
	}
}

func TestNormalizeUnsupportedExtension(t *testing.T) {
	if _, _, err := Normalize([]byte("x"), ".gif"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestNormalizeCorruptPNG(t *testing.T) {
	if _, _, err := Normalize([]byte("not a png"), ".png"); err == nil {
		t.Error("expected error for corrupt PNG")
	}
}
