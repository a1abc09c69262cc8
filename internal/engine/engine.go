// internal/engine/engine.go
package engine

import (
	"strings"
	"unicode"

	"abnum/internal/position"
	"abnum/internal/scheme"
)

// Config selects the boundary table the engine classifies positions with.
type Config struct {
	Table scheme.Table
}

type Engine struct{ cfg Config }

func New(c Config) *Engine { return &Engine{cfg: c} }

// IsGap reports whether an aligned residue denotes "no residue".
func IsGap(residue string) bool {
	r := strings.TrimSpace(residue)
	return r == "" || r == "-" || r == "."
}

// NormalizeNT uppercases seq and drops all whitespace.
func NormalizeNT(seq string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, seq)
}

/* -------------------------------------------------------------------------- */
/*                                 Extract                                    */
/* -------------------------------------------------------------------------- */

// Extract splits one aligned residue vector into the seven regions.
//
// labels and residues are walked once, in column order. Every non-gap residue
// consumes the next codon of nt, whether or not its position maps to a
// region: the nucleotide sequence is one reading frame over the whole chain.
// A codon that would run past the end of nt is recorded as "".
func (e *Engine) Extract(labels, residues []string, nt string) (Regions, Stats) {
	nt = NormalizeNT(nt)

	var (
		aa, na [scheme.NumRegions]strings.Builder
		st     Stats
		cursor int
	)
	n := len(labels)
	if len(residues) < n {
		n = len(residues)
	}
	for i := 0; i < n; i++ {
		res := strings.TrimSpace(residues[i])
		if IsGap(res) {
			continue
		}

		codon := ""
		if cursor+3 <= len(nt) {
			codon = nt[cursor : cursor+3]
		} else {
			st.Truncated++
		}
		cursor += 3
		st.Codons++

		num, ok := position.LeadingInt(labels[i])
		if !ok {
			st.Unparsable++
			continue
		}
		region, ok := e.cfg.Table.RegionFor(num)
		if !ok {
			st.OutOfRange++
			continue
		}
		aa[region].WriteString(res)
		na[region].WriteString(codon)
	}

	var out Regions
	for _, r := range scheme.Regions {
		out.AA[r] = aa[r].String()
		out.NT[r] = na[r].String()
	}
	return out, st
}

// Stats counts the non-fatal conditions met during one Extract call.
type Stats struct {
	Codons     int // non-gap residues; one codon slot each
	Truncated  int // codon slots past the end of the nucleotide sequence
	Unparsable int // residues whose label has no leading integer
	OutOfRange int // residues whose position lies in no region
}

/* -------------------------------------------------------------------------- */
/*                               CDR bounds                                   */
/* -------------------------------------------------------------------------- */

// CDRBounds locates each CDR as the half-open span from the first to the last
// label whose leading integer falls in that CDR's range. Gap columns count.
func (e *Engine) CDRBounds(labels []string) Bounds {
	var b Bounds
	for i, r := range scheme.CDRs {
		rng := e.cfg.Table[r]
		first, last := -1, -1
		for idx, label := range labels {
			num, ok := position.LeadingInt(label)
			if !ok || !rng.Contains(num) {
				continue
			}
			if first < 0 {
				first = idx
			}
			last = idx
		}
		if first >= 0 {
			b[i] = Span{Start: first, End: last + 1, OK: true}
		}
	}
	return b
}

// Aligned joins residues into one string with every gap symbol written as '-'.
func Aligned(residues []string) string {
	var sb strings.Builder
	for _, r := range residues {
		if IsGap(r) {
			sb.WriteByte('-')
			continue
		}
		sb.WriteString(strings.TrimSpace(r))
	}
	return sb.String()
}
