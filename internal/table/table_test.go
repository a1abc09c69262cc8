package table

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = "clonotypeKey\tvdjRegion_aa_H\nk1\tEVQL\nk2\n"

func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.tsv.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestParseShortRows(t *testing.T) {
	tbl, err := Parse(strings.NewReader(plain), TSV)
	require.NoError(t, err)
	assert.Equal(t, []string{"clonotypeKey", "vdjRegion_aa_H"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)

	col := tbl.Col("vdjRegion_aa_H")
	assert.Equal(t, "EVQL", Cell(tbl.Rows[0], col))
	assert.Equal(t, "", Cell(tbl.Rows[1], col), "missing cell reads as empty")
	assert.Equal(t, -1, tbl.Col("nope"))
	assert.False(t, tbl.Has("nope"))
	assert.Equal(t, "", Cell(tbl.Rows[0], -1))
}

func TestParseEmpty(t *testing.T) {
	tbl, err := Parse(strings.NewReader(""), CSV)
	require.NoError(t, err)
	assert.Empty(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestParseStripsBOM(t *testing.T) {
	tbl, err := Parse(strings.NewReader("\ufeffId,1\nx,A\n"), CSV)
	require.NoError(t, err)
	assert.True(t, tbl.Has("Id"))
}

func TestReadFileGzip(t *testing.T) {
	path := writeGz(t, plain)
	tbl, err := ReadFile(path, TSV)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestReadFileStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	tbl, err := ReadFile("-", TSV)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.tsv"), TSV)
	assert.Error(t, err)
}
