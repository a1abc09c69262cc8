// Package assemble turns a key + sequence-columns TSV into FASTA records.
package assemble

import (
	"errors"
	"fmt"
	"strings"

	"abnum/internal/output"
	"abnum/internal/table"
)

// ErrNoKeyColumn is returned when the requested key column is absent.
var ErrNoKeyColumn = errors.New("key column not found in TSV")

// Records emits one record per (row, sequence column) with a non-empty
// trimmed value, in row then header order. The record ID is "{key}|{column}".
// Rows with an empty key, or a key outside allow (when allow is non-nil),
// are skipped.
func Records(t *table.Table, keyColumn string, allow *KeySet) ([]output.FASTARecord, error) {
	keyCol := t.Col(keyColumn)
	if keyCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoKeyColumn, keyColumn)
	}

	var seqCols []int
	for i, h := range t.Header {
		if h != keyColumn {
			seqCols = append(seqCols, i)
		}
	}

	var out []output.FASTARecord
	for _, row := range t.Rows {
		key := strings.TrimSpace(table.Cell(row, keyCol))
		if key == "" || !allow.Allows(key) {
			continue
		}
		for _, c := range seqCols {
			seq := strings.TrimSpace(table.Cell(row, c))
			if seq == "" {
				continue
			}
			out = append(out, output.FASTARecord{ID: key + "|" + t.Header[c], Seq: seq})
		}
	}
	return out, nil
}
