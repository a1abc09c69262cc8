package jsonlutil

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wire struct {
	N    int    `json:"n"`
	Note string `json:"note,omitempty"`
}

func toWire(n int) wire { return wire{N: n} }

func TestStartWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int, wire](&buf, 2, toWire, nil)
	for i := 1; i <= 3; i++ {
		in <- i
	}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n", buf.String())
}

func TestStartNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[string, wire](&buf, 1, func(s string) wire { return wire{Note: s} }, nil)
	in <- "a<b>&c"
	close(in)
	require.NoError(t, <-done)
	assert.True(t, strings.Contains(buf.String(), "a<b>&c"))
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStartBrokenPipeSwallowed(t *testing.T) {
	isBroken := func(err error) bool { return errors.Is(err, syscall.EPIPE) }
	in, done := Start[int, wire](failWriter{syscall.EPIPE}, 1, toWire, isBroken)
	in <- 1
	close(in)
	assert.NoError(t, <-done)
}

func TestStartWriteErrorReported(t *testing.T) {
	boom := errors.New("disk full")
	in, done := Start[int, wire](failWriter{boom}, 1, toWire, nil)
	for i := 0; i < 10; i++ {
		in <- i // drained after the error
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}
