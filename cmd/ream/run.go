package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ream/internal/diagfmt"
	"ream/internal/driver"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [file.ream]",
	Short: "Evaluate a ream program",
	Long: `Run evaluates a ream source file against a fresh global scope.
Without an argument, the entry point comes from [run].main in ream.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func runProgram(cmd *cobra.Command, args []string) error {
	var filePath string
	if len(args) == 1 {
		filePath = args[0]
	} else {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noReamTomlMessage)
		}
		filePath, err = resolveProjectRunTarget(manifest)
		if err != nil {
			return err
		}
	}

	if filepath.Ext(filePath) != ".ream" {
		return fmt.Errorf("%s is not a .ream file", filePath)
	}

	result, err := driver.Run(filePath, os.Stdout, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   1,
			ShowNotes: true,
		})
	}
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}
