// internal/clonotype/clonotype.go
package clonotype

import (
	"errors"
	"fmt"
	"strings"

	"abnum/internal/scheme"
	"abnum/internal/table"
)

// KeyColumn is the clonotype identifier column of the input TSV.
const KeyColumn = "clonotypeKey"

// AAColumn and NTColumn name the per-chain full variable-region columns.
func AAColumn(c scheme.Chain) string { return "vdjRegion_aa_" + c.String() }
func NTColumn(c scheme.Chain) string { return "vdjRegion_nt_" + c.String() }

// ErrNoKeyColumn is returned when the input lacks clonotypeKey.
var ErrNoKeyColumn = errors.New("input TSV has no " + KeyColumn + " column")

// Seq is one chain's raw sequences for a clonotype.
type Seq struct {
	AA string
	NT string
}

// Inputs is the parsed clonotype TSV.
type Inputs struct {
	// Keys in row order; a key repeated in the input appears repeatedly.
	Keys []string
	// Chains that have an amino-acid column, in H, KL order.
	Chains []scheme.Chain

	seqs map[string]map[scheme.Chain]Seq
}

// Seq returns the sequences for (key, chain); zero Seq when absent.
func (in Inputs) Seq(key string, c scheme.Chain) Seq {
	return in.seqs[key][c]
}

// FromTable extracts keys and chain sequences. Rows with an empty key are
// skipped. When a key repeats, the later row's sequences replace the earlier.
func FromTable(t *table.Table) (Inputs, error) {
	keyCol := t.Col(KeyColumn)
	if keyCol < 0 {
		return Inputs{}, ErrNoKeyColumn
	}
	in := Inputs{seqs: map[string]map[scheme.Chain]Seq{}}
	for _, c := range scheme.Chains {
		if t.Has(AAColumn(c)) {
			in.Chains = append(in.Chains, c)
		}
	}
	for _, row := range t.Rows {
		key := strings.TrimSpace(table.Cell(row, keyCol))
		if key == "" {
			continue
		}
		in.Keys = append(in.Keys, key)
		bySeq := in.seqs[key]
		if bySeq == nil {
			bySeq = map[scheme.Chain]Seq{}
			in.seqs[key] = bySeq
		}
		for _, c := range scheme.Chains {
			aaCol, ntCol := t.Col(AAColumn(c)), t.Col(NTColumn(c))
			if aaCol < 0 && ntCol < 0 {
				continue
			}
			s := bySeq[c]
			if aaCol >= 0 {
				s.AA = strings.TrimSpace(table.Cell(row, aaCol))
			}
			if ntCol >= 0 {
				s.NT = strings.TrimSpace(table.Cell(row, ntCol))
			}
			bySeq[c] = s
		}
	}
	return in, nil
}

// Load reads the clonotype TSV at path.
func Load(path string) (Inputs, error) {
	t, err := table.ReadFile(path, table.TSV)
	if err != nil {
		return Inputs{}, err
	}
	in, err := FromTable(t)
	if err != nil {
		return Inputs{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}
