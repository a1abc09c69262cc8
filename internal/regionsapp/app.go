// Package regionsapp runs `abnum regions`: load inputs, build rows, write.
package regionsapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"abnum/internal/alignment"
	"abnum/internal/appcore"
	"abnum/internal/cdrcode"
	"abnum/internal/cli"
	"abnum/internal/clonotype"
	"abnum/internal/output"
	"abnum/internal/pipeline"
	"abnum/internal/record"
	"abnum/internal/scheme"
	"abnum/internal/store"
)

// Run executes a validated regions invocation.
func Run(ctx context.Context, o cli.RegionsOptions, stdout io.Writer, log *zap.Logger) error {
	sch, err := scheme.ParseScheme(o.Scheme)
	if err != nil {
		return cli.Usage(err)
	}

	in, err := clonotype.Load(o.InputTSV)
	if errors.Is(err, clonotype.ErrNoKeyColumn) {
		return cli.Usage(err)
	}
	if err != nil {
		return cli.IO(fmt.Errorf("read input: %w", err))
	}
	log.Debug("loaded clonotypes", zap.String("path", o.InputTSV), zap.Int("keys", len(in.Keys)), zap.Int("chains", len(in.Chains)))

	chains, layout, err := prepareChains(o, sch, in.Chains, log)
	if err != nil {
		return err
	}

	rows, err := pipeline.Build(ctx, pipeline.Config{Threads: o.Threads}, in, chains)
	if err != nil {
		return err
	}
	logStats(log, rows)

	if o.Output == output.FormatSQLite {
		if err := writeSQLite(ctx, o.Out, layout, rows); err != nil {
			return cli.IO(err)
		}
		log.Debug("wrote sqlite", zap.String("path", o.Out), zap.String("table", store.RegionsTable), zap.Int("rows", len(rows)))
		return nil
	}
	return appcore.Emit(ctx, stdout, o.Out, rows, appcore.NewRowWriterFactory(o.Output, layout, !o.NoHeader))
}

// prepareChains loads the numbering CSV and CDR mapping for every chain
// present in the input and fixes the output column layout.
func prepareChains(o cli.RegionsOptions, sch scheme.Scheme, present []scheme.Chain, log *zap.Logger) ([]pipeline.Chain, output.Layout, error) {
	layout := output.Layout{Scheme: sch}
	var chains []pipeline.Chain
	for _, c := range present {
		path := o.AlignmentCSV(c)
		set, err := alignment.Load(path)
		if err != nil {
			return nil, layout, cli.IO(fmt.Errorf("read numbering for chain %s: %w", c, err))
		}
		if !set.Usable() {
			log.Warn("no usable numbering; chain columns will be blank",
				zap.String("chain", c.String()), zap.String("path", path))
		} else {
			log.Debug("loaded numbering", zap.String("chain", c.String()),
				zap.Int("positions", len(set.Positions)), zap.Int("keys", len(set.Residues)))
		}

		raw, err := o.Mapping(c)
		if err != nil {
			return nil, layout, cli.IO(fmt.Errorf("read CDR mapping for chain %s: %w", c, err))
		}
		var (
			m        cdrcode.Mapping
			annotate bool
		)
		if raw != nil {
			m, annotate = cdrcode.ParseMapping(raw)
			if !annotate {
				log.Warn("invalid CDR mapping ignored", zap.String("chain", c.String()))
			}
		}

		chains = append(chains, pipeline.Chain{
			Chain:     c,
			Alignment: set,
			Extractor: pipeline.NewExtractor(sch, c),
			Annotate:  annotate,
			Mapping:   m,
		})
		layout.Chains = append(layout.Chains, output.ChainColumns{Chain: c, Annotate: annotate})
	}
	return chains, layout, nil
}

func writeSQLite(ctx context.Context, path string, l output.Layout, rows []record.Row) error {
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = l.Values(r)
	}
	return store.WriteTable(ctx, path, store.RegionsTable, l.Header(), values)
}

func logStats(log *zap.Logger, rows []record.Row) {
	if ce := log.Check(zap.DebugLevel, "regions built"); ce != nil {
		var found, truncated, unparsable, outOfRange int
		for _, r := range rows {
			for _, c := range r.Chains {
				if !c.Found {
					continue
				}
				found++
				truncated += c.Stats.Truncated
				unparsable += c.Stats.Unparsable
				outOfRange += c.Stats.OutOfRange
			}
		}
		ce.Write(zap.Int("rows", len(rows)), zap.Int("aligned_chains", found),
			zap.Int("truncated_codons", truncated), zap.Int("unparsable_positions", unparsable),
			zap.Int("out_of_range_positions", outOfRange))
	}
}
