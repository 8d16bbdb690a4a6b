package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pact/internal/diag"
	"pact/internal/diagfmt"
	"pact/internal/driver"
	"pact/internal/project"
	"pact/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.pact|directory>",
	Short: "Check pact source files for structural issues",
	Long: `Check runs the lexer, parser and structural validators over a single pact file or every *.pact file within a directory.
When the target belongs to a project whose pact.toml declares an entry file, a directory check is narrowed to that entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "enable persistent per-file result cache")
}

// runCheck executes the "check" command: it runs the full pipeline over the
// given path, renders the collected diagnostics in the chosen format and exits
// with a non-zero status when any of them is an error.
func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}

	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	enableDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	// Корень проекта задаёт базу для относительных путей и каталог кэша.
	startDir := path
	if !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	manifest, hasManifest, err := project.Locate(startDir)
	if err != nil {
		return err
	}
	rootDir := startDir
	if hasManifest {
		rootDir = manifest.Dir
	}

	// Манифест с точкой входа сводит проверку каталога к одному файлу.
	checkPath := path
	checkIsDir := info.IsDir()
	if checkIsDir && hasManifest && manifest.Entry != "" {
		checkPath = manifest.EntryPath()
		checkIsDir = false
	}

	var cache *driver.DiskCache
	if enableDiskCache {
		cache, err = driver.NewDiskCache(filepath.Join(rootDir, ".pact-cache"))
		if err != nil {
			return fmt.Errorf("failed to initialize disk cache: %w", err)
		}
	}

	var (
		fs      *source.FileSet
		results []driver.CheckResult
	)
	if checkIsDir {
		fs, results, err = driver.CheckDir(context.Background(), checkPath, driver.CheckDirOptions{
			MaxDiagnostics: maxDiagnostics,
			Jobs:           jobs,
			Cache:          cache,
		})
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		fs = source.NewFileSetWithBase(rootDir)
		res, err := driver.CheckFile(fs, checkPath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		results = []driver.CheckResult{res}
	}

	bag := driver.MergeBags(results)

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              maxDiagnostics,
			IncludeNotes:     withNotes,
		}
		if err := diagfmt.JSON(os.Stdout, bag, fs, jsonOpts); err != nil {
			return fmt.Errorf("failed to encode diagnostics: %w", err)
		}
	default:
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		diagfmt.Pretty(os.Stderr, bag, fs, prettyOpts)
		if !quiet {
			printCheckSummary(os.Stderr, bag, len(results))
		}
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printCheckSummary(out *os.File, bag *diag.Bag, fileCount int) {
	errors, warnings := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		}
	}
	if errors == 0 && warnings == 0 {
		fmt.Fprintf(out, "checked %d file(s), no issues found\n", fileCount)
		return
	}
	fmt.Fprintf(out, "checked %d file(s): %d error(s), %d warning(s)\n", fileCount, errors, warnings)
}
