// Package fs provides file-based storage for captured pages.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Reject paths that could escape the base directory.
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", fmt.Errorf("path traversal in URL %q", rawURL)
		}
	}

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatCapture formats a capture with YAML frontmatter.
func FormatCapture(capture *browseruse.Capture) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(capture.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(capture.Title)
	b.WriteString("\ncaptured: ")
	b.WriteString(capture.CapturedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(capture.Content)
	return b.String()
}

// Ensure Writer implements browseruse.CaptureWriter at compile time.
var _ browseruse.CaptureWriter = (*Writer)(nil)

// Writer writes captures as markdown files to a directory.
// When a capture carries a serialized DOM snapshot, it is written as a
// .json file next to the markdown file.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// SaveCapture writes a capture to disk as a markdown file.
func (w *Writer) SaveCapture(ctx context.Context, capture *browseruse.Capture) error {
	if err := capture.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(capture.URL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatCapture(capture)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return err
	}

	if capture.Snapshot != "" {
		snapshotPath := strings.TrimSuffix(fullPath, ".md") + ".json"
		if err := os.WriteFile(snapshotPath, []byte(capture.Snapshot), 0644); err != nil {
			return err
		}
	}

	return nil
}
