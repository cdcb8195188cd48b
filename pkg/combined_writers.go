package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter copies every write to all of its writers. A failing writer
// does not stop the others; the write only fails when no writer took the
// whole buffer.
type CombinedWriter struct {
	writers []io.Writer
}

var _ io.Writer = (*CombinedWriter)(nil)

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	delivered := false
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}

	if !delivered && errs != nil {
		return 0, errs
	}
	return len(p), nil
}

// WriterErrors splits the error of a failed Write into the per writer failures.
func WriterErrors(err error) []error {
	return multierr.Errors(err)
}
