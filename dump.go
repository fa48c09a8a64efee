package fbmarket

import (
	"context"
	"time"
)

// Dump is a capture of the rendered text of one page, kept for
// troubleshooting extraction heuristics against real pages.
type Dump struct {
	// Name identifies the capture, typically a listing ID or search query.
	Name string
	// URL is the page the text was rendered from.
	URL string
	// Text is the rendered visible text of the page.
	Text string
	// SavedAt is when the capture was taken.
	SavedAt time.Time
}

// Validate returns an error if the dump contains invalid fields.
func (d *Dump) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "dump name required")
	}
	return nil
}

// DumpWriter persists page text captures.
type DumpWriter interface {
	SaveDump(ctx context.Context, dump *Dump) error
}
