package assemble

import "abnum/internal/table"

// Candidate key columns of a final-clonotypes CSV, in preference order.
// When none is present the first column is used.
var keyColumns = []string{"clonotypeKey", "scClonotypeKey"}

// KeySet restricts which keys are assembled. A nil *KeySet allows all.
type KeySet struct {
	keys map[string]struct{}
}

// Allows reports whether key passes the filter.
func (s *KeySet) Allows(key string) bool {
	if s == nil {
		return true
	}
	_, ok := s.keys[key]
	return ok
}

// Len is the number of distinct allowed keys.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// KeySetFromTable collects the key column's values verbatim. A table with
// no header yields an empty set, which allows nothing.
func KeySetFromTable(t *table.Table) *KeySet {
	s := &KeySet{keys: map[string]struct{}{}}
	col := -1
	for _, name := range keyColumns {
		if col = t.Col(name); col >= 0 {
			break
		}
	}
	if col < 0 && len(t.Header) > 0 {
		col = 0
	}
	if col < 0 {
		return s
	}
	for _, row := range t.Rows {
		s.keys[table.Cell(row, col)] = struct{}{}
	}
	return s
}

// LoadKeySet reads the allowed-keys CSV at path.
func LoadKeySet(path string) (*KeySet, error) {
	t, err := table.ReadFile(path, table.CSV)
	if err != nil {
		return nil, err
	}
	return KeySetFromTable(t), nil
}
