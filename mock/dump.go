package mock

import (
	"context"

	"github.com/fwojciec/fbmarket"
)

var _ fbmarket.DumpWriter = (*DumpWriter)(nil)

// DumpWriter is a mock implementation of fbmarket.DumpWriter.
type DumpWriter struct {
	SaveDumpFn func(ctx context.Context, dump *fbmarket.Dump) error
}

func (w *DumpWriter) SaveDump(ctx context.Context, dump *fbmarket.Dump) error {
	return w.SaveDumpFn(ctx, dump)
}
