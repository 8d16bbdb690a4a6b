package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pact/internal/ast"
	"pact/internal/diagfmt"
	"pact/internal/driver"
	"pact/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.pact",
	Short: "Parse a pact source file and dump its syntax tree",
	Long:  `Parse builds the syntax tree of a pact source file and prints it together with any diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs := source.NewFileSet()
	result, err := driver.CheckFile(fs, filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, fs, opts)
	}

	if result.Unit == ast.NoUnitID {
		return fmt.Errorf("no syntax tree produced for %s", filePath)
	}

	// Выводим дерево в выбранном формате
	switch format {
	case "pretty":
		return diagfmt.FormatUnitPretty(os.Stdout, result.Builder, result.Unit, fs)
	case "json":
		return diagfmt.FormatUnitJSON(os.Stdout, result.Builder, result.Unit)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
