// Package fastaapp runs `abnum fasta`: TSV sequence columns to FASTA.
package fastaapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"abnum/internal/appcore"
	"abnum/internal/assemble"
	"abnum/internal/cli"
	"abnum/internal/table"
)

// Run executes a validated fasta invocation.
func Run(ctx context.Context, o cli.FastaOptions, stdout io.Writer, log *zap.Logger) error {
	var allow *assemble.KeySet
	if o.FinalCSV != "" {
		ks, err := assemble.LoadKeySet(o.FinalCSV)
		if err != nil {
			return cli.IO(fmt.Errorf("read allowed keys: %w", err))
		}
		log.Debug("loaded allowed keys", zap.String("path", o.FinalCSV), zap.Int("keys", ks.Len()))
		allow = ks
	}

	t, err := table.ReadFile(o.InputTSV, table.TSV)
	if err != nil {
		return cli.IO(fmt.Errorf("read input: %w", err))
	}

	recs, err := assemble.Records(t, o.KeyColumn, allow)
	if errors.Is(err, assemble.ErrNoKeyColumn) {
		return cli.Usage(err)
	}
	if err != nil {
		return err
	}
	log.Debug("assembled records", zap.Int("rows", len(t.Rows)), zap.Int("records", len(recs)))

	return appcore.Emit(ctx, stdout, o.Out, recs, appcore.FASTAWriterFactory{})
}
