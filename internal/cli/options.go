// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"abnum/internal/output"
	"abnum/internal/scheme"
)

// GlobalOptions are the persistent flags of the root command.
type GlobalOptions struct {
	Verbose bool
	Quiet   bool
}

// RegionsOptions holds the flags of `abnum regions`.
type RegionsOptions struct {
	InputTSV string
	Scheme   string

	// Numbering-annotator CSVs; an empty path leaves the chain unaligned.
	HeavyCSV string
	LightCSV string

	// CDR mappings: inline JSON/YAML text, or @path to read it from a file.
	MappingH  string
	MappingKL string

	Out      string
	Output   string
	Threads  int
	NoHeader bool
}

// Validate checks flag values after parsing.
func (o RegionsOptions) Validate() error {
	if o.InputTSV == "" {
		return errors.New("--input-tsv is required")
	}
	if o.Scheme == "" {
		return errors.New("--scheme is required")
	}
	if _, err := scheme.ParseScheme(o.Scheme); err != nil {
		return err
	}
	if !slices.Contains(output.RegionFormats, o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(output.RegionFormats, " | "))
	}
	if o.Output == output.FormatSQLite && (o.Out == "" || o.Out == "-") {
		return errors.New("--output sqlite needs a file path in --out")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	return nil
}

// Mapping returns the raw mapping text for chain c: nil when the flag was not
// given, the file contents for "@path", otherwise the flag value itself.
func (o RegionsOptions) Mapping(c scheme.Chain) ([]byte, error) {
	arg := o.MappingH
	if c == scheme.Light {
		arg = o.MappingKL
	}
	return ReadTextArg(arg)
}

// AlignmentCSV returns the numbering CSV path for chain c.
func (o RegionsOptions) AlignmentCSV(c scheme.Chain) string {
	if c == scheme.Light {
		return o.LightCSV
	}
	return o.HeavyCSV
}

// ReadTextArg resolves a flag value that is either literal text or @path.
func ReadTextArg(arg string) ([]byte, error) {
	if arg == "" {
		return nil, nil
	}
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return []byte(arg), nil
}

// FastaOptions holds the flags of `abnum fasta`.
type FastaOptions struct {
	InputTSV  string
	KeyColumn string
	Out       string
	FinalCSV  string
}

// Validate checks flag values after parsing.
func (o FastaOptions) Validate() error {
	if o.InputTSV == "" {
		return errors.New("--input-tsv is required")
	}
	if strings.TrimSpace(o.KeyColumn) == "" {
		return errors.New("--key-column is required")
	}
	return nil
}
