// internal/alignment/alignment.go
package alignment

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"abnum/internal/position"
	"abnum/internal/table"
)

// IDColumn names the record identifier column of the annotator CSV.
const IDColumn = "Id"

// Set is one chain's numbering output: the position labels in column order
// and, per logical key, the residue vector aligned 1:1 with Positions.
type Set struct {
	Positions []string
	Residues  map[string][]string
}

// Usable reports whether the set can contribute regions for any key.
func (s Set) Usable() bool { return len(s.Positions) > 0 && len(s.Residues) > 0 }

// Get returns the residue vector for key, or nil.
func (s Set) Get(key string) ([]string, bool) {
	if len(s.Positions) == 0 {
		return nil, false
	}
	r, ok := s.Residues[key]
	return r, ok
}

// KeyOf reduces a raw record identifier to its logical key: the trimmed text
// before the first '|'.
func KeyOf(id string) string {
	key, _, _ := strings.Cut(strings.TrimSpace(id), "|")
	return key
}

// FromTable builds a Set from an annotator table. Records whose key was
// already seen are dropped, so the first record per key wins. A table with no
// Id column or no position columns yields an empty residue map.
func FromTable(t *table.Table) Set {
	s := Set{Residues: map[string][]string{}}
	if t == nil {
		return s
	}
	s.Positions = position.Labels(t.Header)
	idCol := t.Col(IDColumn)
	if idCol < 0 || len(s.Positions) == 0 {
		return s
	}
	first := len(t.Header) - len(s.Positions)

	for _, row := range t.Rows {
		key := KeyOf(table.Cell(row, idCol))
		if key == "" {
			continue
		}
		if _, seen := s.Residues[key]; seen {
			continue
		}
		res := make([]string, len(s.Positions))
		for i := range s.Positions {
			res[i] = strings.TrimSpace(table.Cell(row, first+i))
		}
		s.Residues[key] = res
	}
	return s
}

// Load reads an annotator CSV. An empty path or a file that does not exist
// yields an empty Set: that chain simply has no numbering.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{Residues: map[string][]string{}}, nil
	}
	if path != "-" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return Set{Residues: map[string][]string{}}, nil
		}
	}
	t, err := table.ReadFile(path, table.CSV)
	if err != nil {
		return Set{}, err
	}
	return FromTable(t), nil
}
