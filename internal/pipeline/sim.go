// internal/pipeline/sim.go
package pipeline

import (
	"abnum/internal/engine"
	"abnum/internal/scheme"
)

// Extractor is the minimal capability the pipeline needs from one chain's
// engine. Any engine (including fakes in tests) can satisfy this.
type Extractor interface {
	Extract(labels, residues []string, nt string) (engine.Regions, engine.Stats)
	CDRBounds(labels []string) engine.Bounds
}

// NewExtractor returns the engine for one (scheme, chain) table.
func NewExtractor(s scheme.Scheme, c scheme.Chain) Extractor {
	return engine.New(engine.Config{Table: scheme.Lookup(s, c)})
}
