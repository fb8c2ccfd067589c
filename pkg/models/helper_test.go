package models

import (
	"os"
	"path/filepath"
	"testing"
)

// Minimal PNG header, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetectMIMEText(t *testing.T) {
	path := writeTemp(t, "note.txt", []byte("plain text content"))
	if got := DetectMIME(path); got != "text/plain" {
		t.Fatalf("DetectMIME = %q, want text/plain", got)
	}
}

func TestDetectMIMEPNG(t *testing.T) {
	path := writeTemp(t, "img.png", pngHeader)
	if got := DetectMIME(path); got != "image/png" {
		t.Fatalf("DetectMIME = %q, want image/png", got)
	}
}

func TestDetectMIMEMissingFileFallsBackToExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jpg")
	if got := DetectMIME(path); got != "image/jpeg" {
		t.Fatalf("DetectMIME = %q, want image/jpeg", got)
	}
}

func TestNormalizeMIME(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"a.txt", "text/plain; charset=utf-8", "text/plain"},
		{"a.jpg", "image/jpg", "image/jpeg"},
		{"a.mov", "video/mov", "video/quicktime"},
		{"a.png", "", "image/png"},
		{"a.png", "image/", "image/png"},
		{"a.bin", "application/octet-stream", "application/octet-stream"},
	}
	for _, c := range cases {
		if got := normalizeMIME(c.name, c.in); got != c.want {
			t.Fatalf("normalizeMIME(%q, %q) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}
