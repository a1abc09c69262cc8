// internal/writers/rows.go
package writers

import (
	"io"

	"abnum/internal/jsonlutil"
	"abnum/internal/output"
	"abnum/internal/record"
	"abnum/pkg/api"
)

func init() {
	RegisterRows(output.FormatTSV, output.StreamTSV)
	RegisterRows(output.FormatJSONL, streamJSONL)
}

// StartRowWriter spins up a writer goroutine for regions rows in format.
// The error channel yields one value after the input channel is closed.
// An unknown format is reported there too; the input is drained so
// senders never block.
func StartRowWriter(out io.Writer, format string, l output.Layout, header bool, bufSize int) (chan<- record.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan record.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookupRows(format)
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		err = fn(out, l, header, in)
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

// streamJSONL emits one v1 JSON object per row; JSONL has no header line.
func streamJSONL(w io.Writer, l output.Layout, _ bool, in <-chan record.Row) error {
	sink, done := jsonlutil.Start[record.Row, api.RegionRowV1](w, cap(in), l.ToAPIRow, IsBrokenPipe)
	for row := range in {
		sink <- row
	}
	close(sink)
	return <-done
}
