// internal/output/tsv.go
package output

import (
	"encoding/csv"
	"io"

	"abnum/internal/record"
)

func newTSV(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

// StreamTSV writes the header (optional) and then one line per row received.
func StreamTSV(w io.Writer, l Layout, header bool, in <-chan record.Row) error {
	cw := newTSV(w)
	if header {
		if err := cw.Write(l.Header()); err != nil {
			return err
		}
	}
	for row := range in {
		if err := cw.Write(l.Values(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTSV writes rows as a tab-delimited table.
func WriteTSV(w io.Writer, l Layout, header bool, rows []record.Row) error {
	cw := newTSV(w)
	if header {
		if err := cw.Write(l.Header()); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(l.Values(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
