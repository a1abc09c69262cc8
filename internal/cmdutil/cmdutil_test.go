package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false, false)
	log.Debug("hidden")
	log.Info("shown")
	log.Warn("careful")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "WARN")

	buf.Reset()
	log = NewLogger(&buf, true, false)
	log.Debug("dbg")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	log = NewLogger(&buf, true, true)
	log.Warn("quiet wins")
	log.Error("still shown")
	assert.NotContains(t, buf.String(), "quiet wins")
	assert.Contains(t, buf.String(), "still shown")
}

func TestOpenOutputStdout(t *testing.T) {
	var buf bytes.Buffer
	o, err := OpenOutput("-", &buf)
	require.NoError(t, err)
	_, _ = o.WriteString("hello\n")
	assert.Empty(t, buf.String())
	require.NoError(t, o.Close())
	assert.Equal(t, "hello\n", buf.String())
}

func TestOpenOutputFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	o, err := OpenOutput(p, nil)
	require.NoError(t, err)
	_, _ = o.WriteString("abc")
	require.NoError(t, o.Close())
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))

	_, err = OpenOutput(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), nil)
	require.Error(t, err)
}
