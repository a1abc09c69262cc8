// internal/cli/commands.go
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"abnum/internal/output"
	"abnum/internal/scheme"
)

// RegionsRunner executes a validated regions invocation.
type RegionsRunner func(cmd *cobra.Command, o RegionsOptions) error

// FastaRunner executes a validated fasta invocation.
type FastaRunner func(cmd *cobra.Command, o FastaOptions) error

// NewRegionsCommand builds `abnum regions`. Validation failures are returned
// as usage errors before run is called.
func NewRegionsCommand(run RegionsRunner) *cobra.Command {
	var o RegionsOptions
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Split numbered antibody chains into FR/CDR region sequences",
		Long: `Reads a clonotype TSV (clonotypeKey + vdjRegion_{aa,nt}_{H,KL}) and per-chain
numbering CSVs, and writes FR1..FR4 / CDR1..CDR3 amino-acid and nucleotide
fragments for the chosen numbering scheme. With --cdr-mapping-{h,kl} a compact
CDR annotation column (code:start+length, base 36) is added per chain.`,
		Example: `  abnum regions --input-tsv clones.tsv --scheme imgt \
      --h-csv heavy_H.csv --kl-csv light_KL.csv \
      --cdr-mapping-h '{"1":"CDR1","2":"CDR2","3":"CDR3"}' --out regions.tsv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return Usage(err)
			}
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.InputTSV, "input-tsv", "", "clonotype TSV ('-' for stdin, .gz ok)")
	f.StringVar(&o.Scheme, "scheme", "", "numbering scheme: "+strings.Join(scheme.SchemeNames(), " | "))
	f.StringVar(&o.HeavyCSV, "h-csv", "", "numbering CSV for the heavy chain")
	f.StringVar(&o.LightCSV, "kl-csv", "", "numbering CSV for the kappa/lambda chain")
	f.StringVar(&o.MappingH, "cdr-mapping-h", "", "heavy-chain CDR code mapping (JSON/YAML object or @file)")
	f.StringVar(&o.MappingKL, "cdr-mapping-kl", "", "light-chain CDR code mapping (JSON/YAML object or @file)")
	f.StringVarP(&o.Out, "out", "o", "-", "output path ('-' for stdout)")
	f.StringVar(&o.Output, "output", output.FormatTSV, "output format: "+strings.Join(output.RegionFormats, " | "))
	f.IntVar(&o.Threads, "threads", 0, "number of worker goroutines (0 = all CPUs)")
	f.BoolVar(&o.NoHeader, "no-header", false, "suppress the TSV header line")
	_ = cmd.MarkFlagRequired("input-tsv")
	_ = cmd.MarkFlagRequired("scheme")
	return cmd
}

// NewFastaCommand builds `abnum fasta`.
func NewFastaCommand(run FastaRunner) *cobra.Command {
	var o FastaOptions
	cmd := &cobra.Command{
		Use:   "fasta",
		Short: "Convert a key + sequence-columns TSV to FASTA",
		Long: `Writes one FASTA record per non-empty sequence cell, with ID "{key}|{column}".
--final-clonotypes-csv restricts output to keys listed in its clonotypeKey,
scClonotypeKey, or first column.`,
		Example: `  abnum fasta --input-tsv features.tsv --key-column clonotypeKey --out features.fasta`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return Usage(err)
			}
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.InputTSV, "input-tsv", "", "input TSV ('-' for stdin, .gz ok)")
	f.StringVar(&o.KeyColumn, "key-column", "", "name of the key column (e.g. clonotypeKey)")
	f.StringVarP(&o.Out, "out", "o", "-", "output FASTA path ('-' for stdout)")
	f.StringVar(&o.FinalCSV, "final-clonotypes-csv", "", "optional CSV of allowed keys")
	_ = cmd.MarkFlagRequired("input-tsv")
	_ = cmd.MarkFlagRequired("key-column")
	return cmd
}
