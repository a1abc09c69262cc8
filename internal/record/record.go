// Package record holds the per-key result rows shared by the pipeline and
// the output writers.
package record

import (
	"abnum/internal/cdrcode"
	"abnum/internal/engine"
	"abnum/internal/scheme"
)

// ChainResult is one chain's contribution to a row.
type ChainResult struct {
	Chain scheme.Chain
	// Found is false when the chain has no alignment for this key; all
	// region values are then blank.
	Found    bool
	Regions  engine.Regions
	Stats    engine.Stats
	Annotate bool
	Segments []cdrcode.Segment
}

// Annotation returns the formatted CDR annotation ("" when none).
func (c ChainResult) Annotation() string { return cdrcode.Format(c.Segments) }

// Row is the output for one clonotype key.
type Row struct {
	Key    string
	Chains []ChainResult
}
