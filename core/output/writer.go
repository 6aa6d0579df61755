// Package output handles destination path resolution and file writing.
// The destination is either an explicit path, or a name derived from the
// source (URL or local file) under the output directory. Every write is a
// full overwrite of the destination.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write persists rendered data. An explicit path wins; otherwise the
// filename is derived from the source origin (e.g. the live guide URL
// becomes www_betterspecs_org.md). Returns the path written.
func (w *Writer) Write(explicitPath, origin string, data []byte, ext string) (string, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(w.OutputDir, nameFromOrigin(origin)+ext)
	}

	// Ensure parent directories exist for explicit paths outside OutputDir.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// nameFromOrigin converts a source origin into a flat filename.
// URLs flatten host and path segments (https://example.com/docs →
// example_com_docs); local paths keep their base name minus extension.
func nameFromOrigin(origin string) string {
	parsed, err := url.Parse(origin)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		parts := []string{sanitize(parsed.Host)}
		path := strings.Trim(parsed.Path, "/")
		if path != "" {
			for _, seg := range strings.Split(path, "/") {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(origin)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "guide"
	}
	return sanitize(base)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
