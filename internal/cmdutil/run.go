package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Output is a buffered destination: stdout for "" or "-", else a created file.
type Output struct {
	*bufio.Writer
	file *os.File
	Path string
}

// OpenOutput opens path for writing, falling back to stdout for "" and "-".
func OpenOutput(path string, stdout io.Writer) (*Output, error) {
	if path == "" || path == "-" {
		return &Output{Writer: bufio.NewWriter(stdout), Path: "-"}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return &Output{Writer: bufio.NewWriter(fh), file: fh, Path: path}, nil
}

// Close flushes buffered data and closes the file (stdout is left open).
// The first error wins.
func (o *Output) Close() error {
	err := o.Flush()
	if o.file != nil {
		if cerr := o.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
