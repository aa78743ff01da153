package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ream/internal/diagfmt"
	"ream/internal/driver"
)

var parseFormat string

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "tree", "output format (tree|pretty|json)")
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ream...",
	Short: "Parse ream source files",
	Long: `Parse builds the expression tree of one or more ream source files
and prints them. Multiple files are parsed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "tree", "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be tree, pretty, or json)", parseFormat)
	}

	fileSet, results, err := driver.ParseFiles(cmd.Context(), args, maxDiagnostics(cmd), 0)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, result := range results {
		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   1,
				ShowNotes: true,
			})
		}
		if result.Program == nil {
			failed = true
			continue
		}

		if len(results) > 1 {
			fmt.Fprintf(os.Stdout, "== %s ==\n", result.Path)
		}
		var ferr error
		if parseFormat == "json" {
			ferr = diagfmt.FormatProgramJSON(os.Stdout, result.Program, fileSet)
		} else {
			ferr = diagfmt.FormatProgramPretty(os.Stdout, result.Program, fileSet)
		}
		if ferr != nil {
			return ferr
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
