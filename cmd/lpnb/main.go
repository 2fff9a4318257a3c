// Command lpnb reads, normalises and converts literate programming notebooks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riverfjs/lpnb-go"
	"github.com/riverfjs/lpnb-go/internal/config"
)

var (
	configPath string
	outputPath string
	write      bool
	stats      bool
	language   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lpnb",
		Short:        "Work with literate programming notebooks (.lpnb)",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")

	cellsCmd := &cobra.Command{
		Use:   "cells [notebook.lpnb]",
		Short: "Print the notebook cells as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runCells,
	}
	cellsCmd.Flags().BoolVar(&stats, "stats", false, "Print cell statistics instead of cells")

	fmtCmd := &cobra.Command{
		Use:   "fmt [notebook.lpnb]",
		Short: "Rewrite a notebook in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  runFmt,
	}
	fmtCmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to the source file instead of stdout")

	tangleCmd := &cobra.Command{
		Use:   "tangle [notebook.lpnb]",
		Short: "Extract all code cells into one source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTangle,
	}
	tangleCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	tangleCmd.Flags().BoolVarP(&write, "write", "w", false, "Write next to the notebook using the language extension")
	tangleCmd.Flags().StringVar(&language, "language", "", "Only include code cells with this language id")

	weaveCmd := &cobra.Command{
		Use:   "weave [notebook.lpnb]",
		Short: "Render a notebook as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runWeave,
	}
	weaveCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	importCmd := &cobra.Command{
		Use:   "import [document.md]",
		Short: "Convert a Markdown document with fenced code blocks into a notebook",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")

	outlineCmd := &cobra.Command{
		Use:   "outline [notebook.lpnb]",
		Short: "List the headings of the documentation cells",
		Args:  cobra.ExactArgs(1),
		RunE:  runOutline,
	}

	rootCmd.AddCommand(cellsCmd, fmtCmd, tangleCmd, weaveCmd, importCmd, outlineCmd)
	return rootCmd
}

// setup loads the config, installs the logger and returns serializer options.
func setup(cmd *cobra.Command) ([]lpnb.Option, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	lpnb.SetLogger(logger)

	stderr := cmd.ErrOrStderr()
	return []lpnb.Option{
		lpnb.WithDefaultLanguage(cfg.DefaultLanguage),
		lpnb.WithMarkupLanguage(cfg.MarkupLanguage),
		lpnb.WithNotifier(lpnb.NotifierFunc(func(message string) {
			fmt.Fprintln(stderr, "warning:", message)
		})),
	}, nil
}

func loadNotebook(cmd *cobra.Command, path string) (*lpnb.NotebookData, error) {
	opts, err := setup(cmd)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook: %w", err)
	}
	return lpnb.Deserialize(ctxOf(cmd), content, opts...)
}

func runCells(cmd *cobra.Command, args []string) error {
	data, err := loadNotebook(cmd, args[0])
	if err != nil {
		return err
	}

	var v any = data
	if stats {
		v = lpnb.CountCells(data.Cells)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func runFmt(cmd *cobra.Command, args []string) error {
	opts, err := setup(cmd)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read notebook: %w", err)
	}
	out, err := lpnb.Format(ctxOf(cmd), content, opts...)
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}

	if write {
		return writeOutput(cmd, args[0], out)
	}
	return writeOutput(cmd, "", out)
}

func runTangle(cmd *cobra.Command, args []string) error {
	data, err := loadNotebook(cmd, args[0])
	if err != nil {
		return err
	}

	result := lpnb.Tangle(data.Cells, language)
	target := outputPath
	if target == "" && write {
		target = result.Filename(args[0])
	}
	return writeOutput(cmd, target, []byte(result.Source))
}

func runWeave(cmd *cobra.Command, args []string) error {
	data, err := loadNotebook(cmd, args[0])
	if err != nil {
		return err
	}

	out, err := lpnb.Weave(data.Cells)
	if err != nil {
		return fmt.Errorf("weave failed: %w", err)
	}
	return writeOutput(cmd, outputPath, out)
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := setup(cmd)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}
	data, err := lpnb.ImportMarkdown(source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	out, err := lpnb.Serialize(ctxOf(cmd), data, opts...)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, outputPath, out)
}

func runOutline(cmd *cobra.Command, args []string) error {
	data, err := loadNotebook(cmd, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, h := range lpnb.Outline(data.Cells) {
		indent := strings.Repeat("  ", max(0, h.Level-1))
		if _, err := fmt.Fprintf(w, "%s%s (cell %d)\n", indent, h.Text, h.Cell+1); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
