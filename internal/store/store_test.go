package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, s *Store, q string) [][]string {
	t.Helper()
	rows, err := s.DB().Query(q)
	require.NoError(t, err)
	defer rows.Close()
	cols, err := rows.Columns()
	require.NoError(t, err)
	var out [][]string
	for rows.Next() {
		vals := make([]string, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		require.NoError(t, rows.Scan(ptrs...))
		out = append(out, vals)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestWriteTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.db")
	cols := []string{"clonotypeKey", "imgt_FR1_aa_H", `odd"name`}
	rows := [][]string{{"k1", "EVQ", "x"}, {"k2"}}

	require.NoError(t, WriteTable(context.Background(), path, RegionsTable, cols, rows))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	got := readAll(t, s, `SELECT * FROM regions ORDER BY rowid`)
	assert.Equal(t, [][]string{{"k1", "EVQ", "x"}, {"k2", "", ""}}, got)
}

func TestWriteTableReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	ctx := context.Background()
	require.NoError(t, WriteTable(ctx, path, RegionsTable, []string{"a", "b"}, [][]string{{"1", "2"}, {"3", "4"}}))
	require.NoError(t, WriteTable(ctx, path, RegionsTable, []string{"c"}, [][]string{{"z"}}))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, [][]string{{"z"}}, readAll(t, s, `SELECT * FROM regions`))
}

func TestOpenRejectsStdout(t *testing.T) {
	_, err := Open("-")
	require.Error(t, err)
	_, err = Open("")
	require.Error(t, err)
}

func TestReplaceTableNoColumns(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer s.Close()
	require.Error(t, s.ReplaceTable(context.Background(), "t", nil, nil))
}

func TestCancelledContext(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.ReplaceTable(ctx, "t", []string{"a"}, [][]string{{"1"}}))
}
