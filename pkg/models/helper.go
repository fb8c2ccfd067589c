package models

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Extension fallbacks for when content sniffing is inconclusive.
var (
	mimeExtMap = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".heic": "image/heic",
		".mp4":  "video/mp4",
		".mov":  "video/quicktime",
		".webm": "video/webm",
		".pdf":  "application/pdf",
		".txt":  "text/plain",
		".md":   "text/markdown",
		".json": "application/json",
	}

	mimeAliasMap = map[string]string{
		"image/jpg":   "image/jpeg",
		"image/pjpeg": "image/jpeg",
		"image/x-png": "image/png",
		"video/mov":   "video/quicktime",
	}
)

// DetectMIME sniffs a local file's content and falls back to its extension.
// Returns "" when nothing sensible can be determined; the provider will then
// detect the type itself.
func DetectMIME(path string) string {
	if mt, err := mimetype.DetectFile(path); err == nil {
		return normalizeMIME(path, mt.String())
	}
	return normalizeMIME(path, "")
}

// normalizeMIME strips parameters, fixes common aliases, and falls back to the
// file extension for empty or malformed values.
func normalizeMIME(name, m string) string {
	strip := func(s string) string {
		if i := strings.IndexByte(s, ';'); i >= 0 {
			return strings.TrimSpace(s[:i])
		}
		return strings.TrimSpace(s)
	}

	fromExt := func() string {
		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			return ""
		}
		if mt, ok := mimeExtMap[ext]; ok {
			return mt
		}
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strip(mt)
		}
		return ""
	}

	raw := strip(strings.ToLower(strings.TrimSpace(m)))
	if raw == "" {
		return fromExt()
	}
	if alias, ok := mimeAliasMap[raw]; ok {
		return alias
	}
	// Malformed values like "png" or "image/" fall back to the extension.
	if !strings.Contains(raw, "/") || strings.HasSuffix(raw, "/") {
		if via := fromExt(); via != "" {
			return via
		}
	}
	return raw
}
