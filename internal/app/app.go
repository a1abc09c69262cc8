// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"abnum/internal/cli"
	"abnum/internal/cmdutil"
	"abnum/internal/fastaapp"
	"abnum/internal/regionsapp"
	"abnum/internal/version"
	"abnum/internal/writers"
)

// NewRootCommand assembles `abnum` and its subcommands. The logger is built
// from the global flags before any subcommand runs.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		g      cli.GlobalOptions
		logger = zap.NewNop()
	)

	root := &cobra.Command{
		Use:   "abnum",
		Short: "Antibody numbering region extraction",
		Long: `abnum converts numbering-annotator output into per-region FR/CDR sequences
and assembles sequence tables into FASTA.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger = cmdutil.NewLogger(stderr, g.Verbose, g.Quiet)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("abnum version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.Verbose, "verbose", "v", false, "debug logging on stderr")
	pf.BoolVarP(&g.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		cli.NewRegionsCommand(func(cmd *cobra.Command, o cli.RegionsOptions) error {
			return regionsapp.Run(cmd.Context(), o, stdout, logger)
		}),
		cli.NewFastaCommand(func(cmd *cobra.Command, o cli.FastaOptions) error {
			return fastaapp.Run(cmd.Context(), o, stdout, logger)
		}),
	)
	return root
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	if err == nil || writers.IsBrokenPipe(err) {
		return cli.ExitOK
	}
	code := cli.ExitCode(err)
	if code != cli.ExitCanceled {
		_, _ = fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
