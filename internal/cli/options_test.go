package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abnum/internal/scheme"
)

func execRegions(t *testing.T, args ...string) (RegionsOptions, bool, error) {
	t.Helper()
	var got RegionsOptions
	called := false
	cmd := NewRegionsCommand(func(_ *cobra.Command, o RegionsOptions) error {
		got, called = o, true
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return got, called, err
}

func TestRegionsDefaults(t *testing.T) {
	o, called, err := execRegions(t, "--input-tsv", "in.tsv", "--scheme", "IMGT")
	require.NoError(t, err)
	require.True(t, called)
	assert.Equal(t, "in.tsv", o.InputTSV)
	assert.Equal(t, "-", o.Out)
	assert.Equal(t, "tsv", o.Output)
	assert.Equal(t, 0, o.Threads)
	assert.False(t, o.NoHeader)
}

func TestRegionsAllFlags(t *testing.T) {
	o, _, err := execRegions(t,
		"--input-tsv", "in.tsv", "--scheme", "kabat",
		"--h-csv", "h.csv", "--kl-csv", "kl.csv",
		"--cdr-mapping-h", `{"1":"CDR1"}`, "--cdr-mapping-kl", "@m.yaml",
		"-o", "out.db", "--output", "sqlite", "--threads", "4", "--no-header",
	)
	require.NoError(t, err)
	assert.Equal(t, "h.csv", o.AlignmentCSV(scheme.Heavy))
	assert.Equal(t, "kl.csv", o.AlignmentCSV(scheme.Light))
	assert.Equal(t, "@m.yaml", o.MappingKL)
	assert.Equal(t, "out.db", o.Out)
	assert.Equal(t, 4, o.Threads)
	assert.True(t, o.NoHeader)
}

func TestRegionsValidation(t *testing.T) {
	cases := [][]string{
		{"--scheme", "imgt"},                                           // missing input
		{"--input-tsv", "x"},                                           // missing scheme
		{"--input-tsv", "x", "--scheme", "aho"},                        // unknown scheme
		{"--input-tsv", "x", "--scheme", "imgt", "--output", "xml"},    // bad format
		{"--input-tsv", "x", "--scheme", "imgt", "--output", "sqlite"}, // sqlite to stdout
		{"--input-tsv", "x", "--scheme", "imgt", "--threads", "-1"},
		{"--input-tsv", "x", "--scheme", "imgt", "extra-positional"},
		{"--input-tsv", "x", "--scheme", "imgt", "--bogus"},
	}
	for _, args := range cases {
		t.Run(fmt.Sprint(args), func(t *testing.T) {
			_, called, err := execRegions(t, args...)
			require.Error(t, err)
			assert.False(t, called)
			assert.Equal(t, ExitUsage, ExitCode(err))
		})
	}
}

func TestFastaCommand(t *testing.T) {
	var got FastaOptions
	cmd := NewFastaCommand(func(_ *cobra.Command, o FastaOptions) error { got = o; return nil })
	cmd.SetArgs([]string{"--input-tsv", "a.tsv", "--key-column", "clonotypeKey", "--final-clonotypes-csv", "f.csv"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, FastaOptions{InputTSV: "a.tsv", KeyColumn: "clonotypeKey", Out: "-", FinalCSV: "f.csv"}, got)

	assert.Error(t, FastaOptions{InputTSV: "a.tsv", KeyColumn: "  "}.Validate())
}

func TestReadTextArg(t *testing.T) {
	b, err := ReadTextArg("")
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = ReadTextArg(`{"1":"CDR3"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"1":"CDR3"}`, string(b))

	p := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(p, []byte("A: CDR1\n"), 0o644))
	b, err = ReadTextArg("@" + p)
	require.NoError(t, err)
	assert.Equal(t, "A: CDR1\n", string(b))

	_, err = ReadTextArg("@" + filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(errors.New("unknown flag")))
	assert.Equal(t, ExitUsage, ExitCode(Usagef("bad %d", 1)))
	assert.Equal(t, ExitIO, ExitCode(fmt.Errorf("wrap: %w", IO(os.ErrNotExist))))
	assert.Equal(t, ExitCanceled, ExitCode(IO(context.Canceled)))
	assert.Nil(t, IO(nil))
	assert.True(t, errors.Is(IO(os.ErrNotExist), os.ErrNotExist))
}
