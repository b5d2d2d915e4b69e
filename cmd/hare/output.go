package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spboyer/hare/internal/dataset"
	"github.com/spboyer/hare/internal/hare"
	"github.com/spboyer/hare/internal/projectconfig"
	"github.com/spboyer/hare/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	ruleWidth = 70
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format: table or json (default: table on a terminal, json otherwise)")
}

func loadProjectConfig() (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return projectconfig.Load(wd)
}

// resolveFormat picks the output format: the --format flag, then the
// project config, then table when writing to a terminal and json otherwise.
func resolveFormat(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	if format == "" {
		format = cfg.Defaults.Format
	}
	if format == "" {
		format = formatJSON
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = formatTable
		}
	}
	if format != formatTable && format != formatJSON {
		return "", fmt.Errorf("unsupported format %q: must be table or json", format)
	}
	return format, nil
}

// datasetPaths returns args, or every dataset file in the configured
// datasets directory when no args are given.
func datasetPaths(args []string, cfg *projectconfig.ProjectConfig) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	dir := cfg.DatasetsDir()
	paths, err := utils.ListFiles(dir, dataset.Supported)
	if err != nil {
		return nil, fmt.Errorf("no datasets given: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files in %s", dir)
	}
	slog.Debug("found datasets", "dir", dir, "count", len(paths))
	return paths, nil
}

// loadEvaluator loads one dataset and builds its evaluator with the
// configured decision threshold. A threshold in the dataset itself wins.
func loadEvaluator(path string, cfg *projectconfig.ProjectConfig) (*hare.Hare, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		var invalid *dataset.InvalidError
		if errors.As(err, &invalid) {
			return nil, &ValidationFailedError{Message: err.Error()}
		}
		return nil, err
	}

	var opts []hare.Option
	if th := cfg.Defaults.DecisionThreshold; th != nil {
		opts = append(opts, hare.WithThreshold(*th))
	}
	h, err := hare.FromDataset(ds, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("loaded dataset", "path", path, "name", h.Name(), "conversations", len(ds.Conversations), "threshold", h.Threshold())
	return h, nil
}

func loadEvaluators(paths []string, cfg *projectconfig.ProjectConfig) ([]aggregate.Evaluator, error) {
	evaluators := make([]aggregate.Evaluator, 0, len(paths))
	for _, p := range paths {
		h, err := loadEvaluator(p, cfg)
		if err != nil {
			return nil, err
		}
		evaluators = append(evaluators, h)
	}
	return evaluators, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth)) //nolint:errcheck
	fmt.Fprintf(w, " %s\n", title)                  //nolint:errcheck
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth)) //nolint:errcheck
	fmt.Fprintln(w)                                 //nolint:errcheck
}

// printTable writes a header row, a rule and the rows, padding every column
// to the display width of its widest cell.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	total := 0
	for _, width := range widths {
		total += width + 2
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		b.WriteString("  ")
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(padRight(cell, widths[i]+2))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " ")) //nolint:errcheck
	}

	writeRow(header)
	fmt.Fprintf(w, "  %s\n", strings.Repeat("─", total-2)) //nolint:errcheck
	for _, row := range rows {
		writeRow(row)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
