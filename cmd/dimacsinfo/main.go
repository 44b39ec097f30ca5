// Command dimacsinfo imports DIMACS edge files into core graphs and prints
// a one-line summary per file.
//
//	dimacsinfo [--weighted] [--directed] [--strict] [--dialects f.yaml] FILE...
//
// Files are imported concurrently, each into its own graph. The exit status
// is non-zero if any file fails to import.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-dimacs/dimacs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts         inspectOptions
		dialectsPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:          "dimacsinfo FILE...",
		Short:        "Import DIMACS edge files and summarize the resulting graphs",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if dialectsPath != "" {
				d, err := loadDialectsFile(dialectsPath)
				if err != nil {
					return err
				}
				opts.dialects = d
			}

			results := inspectFiles(cmd.Context(), args, opts)
			failed := printResults(cmd.OutOrStdout(), results)
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to import", failed, len(results))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.weighted, "weighted", "w", false, "edge lines carry a weight token")
	f.BoolVarP(&opts.directed, "directed", "d", false, "build directed graphs")
	f.BoolVar(&opts.strict, "strict", false, "fail when the edge count differs from the header")
	f.StringVar(&dialectsPath, "dialects", "", "YAML file listing accepted problem formats")
	f.IntVarP(&opts.workers, "jobs", "j", runtime.NumCPU(), "files imported in parallel")
	f.BoolVarP(&verbose, "verbose", "v", false, "log import diagnostics to stderr")

	return cmd
}

func loadDialectsFile(path string) (dimacs.Dialects, error) {
	f, err := os.Open(path)
	if err != nil {
		return dimacs.Dialects{}, err
	}
	defer f.Close()

	return dimacs.LoadDialects(f)
}
