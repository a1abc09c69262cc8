// internal/appcore/core.go
package appcore

import (
	"context"
	"fmt"
	"io"

	"abnum/internal/cli"
	"abnum/internal/cmdutil"
	"abnum/internal/writers"
)

// WriterFactory starts a format-specific writer goroutine. The error
// channel yields one value after the input channel is closed.
type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Emit streams items to path ("-" = stdout) through wf. Broken pipes count
// as success. Failures come back tagged with the matching exit code.
func Emit[T any](ctx context.Context, stdout io.Writer, path string, items []T, wf WriterFactory[T]) error {
	out, err := cmdutil.OpenOutput(path, stdout)
	if err != nil {
		return cli.IO(err)
	}

	inCh, writeErr := wf.Start(out, 256)
	var sendErr error
	for _, it := range items {
		select {
		case inCh <- it:
			continue
		case <-ctx.Done():
			sendErr = ctx.Err()
		}
		break
	}
	close(inCh)

	werr := <-writeErr
	cerr := out.Close()

	if sendErr != nil {
		return sendErr
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		return cli.IO(fmt.Errorf("write %s: %w", out.Path, werr))
	}
	if cerr != nil && !writers.IsBrokenPipe(cerr) {
		return cli.IO(fmt.Errorf("write %s: %w", out.Path, cerr))
	}
	return nil
}
