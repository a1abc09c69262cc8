// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"abnum/internal/alignment"
	"abnum/internal/cdrcode"
	"abnum/internal/clonotype"
	"abnum/internal/engine"
	"abnum/internal/record"
	"abnum/internal/scheme"
)

// Config controls the per-key fan-out.
type Config struct {
	Threads int // worker goroutines; 0 = all CPUs
}

// Chain bundles everything needed to process one chain for every key.
type Chain struct {
	Chain     scheme.Chain
	Alignment alignment.Set
	Extractor Extractor

	// Annotate is true when a CDR mapping was supplied for this chain.
	// The annotation column then exists even if Mapping names no CDR.
	Annotate bool
	Mapping  cdrcode.Mapping
}

// Build computes one Row per input key. Keys are independent and are spread
// over cfg.Threads workers; the returned rows keep input key order.
// It returns ctx.Err() if the context is cancelled before all keys finish.
func Build(ctx context.Context, cfg Config, in clonotype.Inputs, chains []Chain) ([]record.Row, error) {
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	rows := make([]record.Row, len(in.Keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)

	for i, key := range in.Keys {
		if gctx.Err() != nil {
			break
		}
		i, key := i, key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = buildRow(key, in, chains)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func buildRow(key string, in clonotype.Inputs, chains []Chain) record.Row {
	row := record.Row{Key: key, Chains: make([]record.ChainResult, len(chains))}
	for j, ch := range chains {
		res := record.ChainResult{Chain: ch.Chain, Annotate: ch.Annotate}
		residues, ok := ch.Alignment.Get(key)
		if ok {
			labels := ch.Alignment.Positions
			res.Found = true
			res.Regions, res.Stats = ch.Extractor.Extract(labels, residues, in.Seq(key, ch.Chain).NT)
			if ch.Annotate {
				res.Segments = cdrcode.Encode(engine.Aligned(residues), ch.Extractor.CDRBounds(labels), ch.Mapping)
			}
		}
		row.Chains[j] = res
	}
	return row
}
