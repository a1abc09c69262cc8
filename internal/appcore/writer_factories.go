package appcore

import (
	"io"

	"abnum/internal/output"
	"abnum/internal/record"
	"abnum/internal/writers"
)

// ---------------- Regions row writer ----------------

type RowWriterFactory struct {
	Format string
	Layout output.Layout
	Header bool
}

func NewRowWriterFactory(format string, l output.Layout, header bool) RowWriterFactory {
	return RowWriterFactory{Format: format, Layout: l, Header: header}
}

func (w RowWriterFactory) Start(out io.Writer, bufSize int) (chan<- record.Row, <-chan error) {
	return writers.StartRowWriter(out, w.Format, w.Layout, w.Header, bufSize)
}

// ---------------- FASTA writer ----------------

type FASTAWriterFactory struct{}

func (FASTAWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.FASTARecord, <-chan error) {
	return writers.StartFASTAWriter(out, bufSize)
}
