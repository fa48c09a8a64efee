// Package fs provides file-based storage for page text captures.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/fbmarket"
)

// NameToPath converts a capture name to a relative file path.
// Example: "wide neck Fermenter" → wide-neck-fermenter.txt
func NameToPath(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "dump"
	}
	return slug + ".txt"
}

// FormatDump formats a capture with YAML frontmatter.
func FormatDump(dump *fbmarket.Dump) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(dump.URL)
	b.WriteString("\nsaved: ")
	b.WriteString(dump.SavedAt.Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	b.WriteString(dump.Text)
	return b.String()
}

// Ensure DumpWriter implements fbmarket.DumpWriter at compile time.
var _ fbmarket.DumpWriter = (*DumpWriter)(nil)

// DumpWriter writes page text captures to a directory. Each capture is
// written to a temporary file and renamed into place, so readers never
// see a partially written capture.
type DumpWriter struct {
	baseDir string

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewDumpWriter creates a new DumpWriter that writes to the given base directory.
func NewDumpWriter(baseDir string) *DumpWriter {
	return &DumpWriter{baseDir: baseDir, Now: time.Now}
}

// SaveDump writes a capture to disk.
func (w *DumpWriter) SaveDump(ctx context.Context, dump *fbmarket.Dump) error {
	if err := dump.Validate(); err != nil {
		return err
	}

	if dump.SavedAt.IsZero() {
		dump.SavedAt = w.Now().UTC()
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, NameToPath(dump.Name))
	tempPath := fullPath + ".tmp"

	content := FormatDump(dump)
	if err := os.WriteFile(tempPath, []byte(content), 0644); err != nil {
		return err
	}

	return os.Rename(tempPath, fullPath)
}
