package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all of its writers. A failing writer does
// not stop the others; the failures are combined into the returned error.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w == nil {
			continue
		}
		cw.Writers = append(cw.Writers, w)
	}
	return cw
}

// Write reports len(p) when every writer succeeds. Otherwise n is the most any
// single writer took, and err combines all the failures.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		n = max(n, written)
		if werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	if err == nil {
		n = len(p)
	}
	return n, err
}
