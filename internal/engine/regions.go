// internal/engine/regions.go
package engine

import "abnum/internal/scheme"

// Regions holds the per-region amino-acid and nucleotide strings for one
// key and chain, indexed by scheme.Region. Empty string = no residues.
type Regions struct {
	AA [scheme.NumRegions]string
	NT [scheme.NumRegions]string
}

// Span is a half-open [Start, End) range in alignment coordinates
// (gap columns included). OK is false when the region is absent.
type Span struct {
	Start int
	End   int
	OK    bool
}

// Bounds holds one Span per CDR, indexed CDR1, CDR2, CDR3.
type Bounds [3]Span

// Of returns the span for a CDR region; non-CDR regions report !OK.
func (b Bounds) Of(r scheme.Region) Span {
	switch r {
	case scheme.CDR1:
		return b[0]
	case scheme.CDR2:
		return b[1]
	case scheme.CDR3:
		return b[2]
	}
	return Span{}
}
