// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"abnum/internal/output"
	"abnum/internal/record"
)

// RowWriterFunc consumes rows until in is closed and renders them to w.
type RowWriterFunc func(w io.Writer, l output.Layout, header bool, in <-chan record.Row) error

// Row writer registry (format → handler). Stream formats register in init();
// file-backed sinks such as SQLite are handled by the caller.
var rowWriters = map[string]RowWriterFunc{}

// RegisterRows installs fn for format (idempotent last-wins).
func RegisterRows(format string, fn RowWriterFunc) { rowWriters[format] = fn }

// RowFormats returns the registered stream formats, sorted.
func RowFormats() []string {
	out := make([]string, 0, len(rowWriters))
	for f := range rowWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func lookupRows(format string) (RowWriterFunc, error) {
	fn, ok := rowWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown row format %q (no writer registered)", format)
	}
	return fn, nil
}
