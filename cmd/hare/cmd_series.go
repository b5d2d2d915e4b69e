package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spboyer/hare/internal/models"
	"github.com/spboyer/hare/internal/reporting"
	"github.com/spf13/cobra"
)

func newSeriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series [dataset ...]",
		Short: "Compute a metric at every turn for one or more evaluators",
		Long: `Compute a metric at every turn index for each dataset.

Each dataset becomes one evaluator. At turn t every conversation contributes
its speakers' toxicity status after t utterances; conversations that already
ended keep their final status. The series of an evaluator runs up to its own
longest conversation.

With no arguments every dataset in the configured datasets directory is used.`,
		RunE: seriesCommandE,
	}

	cmd.Flags().StringP("metric", "m", "", "Metric: accuracy, auc, precision, recall or fscore (default from .hare.yaml, else accuracy)")
	addFormatFlag(cmd)

	return cmd
}

// seriesReport is the JSON document produced by the series command.
type seriesReport struct {
	Metric models.Metric      `json:"metric"`
	Label  string             `json:"label"`
	YMin   float64            `json:"y_min"`
	Series []aggregate.Series `json:"series"`
}

func seriesCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("metric")
	if err != nil {
		return err
	}
	if name == "" {
		name = cfg.Defaults.Metric
	}
	metric, err := models.ParseMetric(name)
	if err != nil {
		return err
	}

	paths, err := datasetPaths(args, cfg)
	if err != nil {
		return err
	}
	evaluators, err := loadEvaluators(paths, cfg)
	if err != nil {
		return err
	}

	series, err := aggregate.MetricSeries(evaluators, metric)
	if err != nil {
		return err
	}

	report := seriesReport{
		Metric: metric,
		Label:  metric.Label(),
		YMin:   metric.Floor(),
		Series: series,
	}

	if format == formatJSON {
		return writeJSON(cmd, report)
	}
	printSeriesTable(cmd.OutOrStdout(), report)
	return nil
}

func printSeriesTable(w io.Writer, r seriesReport) {
	printBanner(w, strings.ToUpper(r.Label)+" BY TURN")

	header := []string{"Turn"}
	turns := 0
	for _, s := range r.Series {
		header = append(header, s.Label)
		turns = max(turns, s.Start+len(s.Values))
	}

	rows := make([][]string, 0, turns)
	for t := 0; t < turns; t++ {
		row := []string{strconv.Itoa(t)}
		for _, s := range r.Series {
			i := t - s.Start
			if i < 0 || i >= len(s.Values) {
				row = append(row, "-")
				continue
			}
			row = append(row, formatValue(s.Values[i]))
		}
		rows = append(rows, row)
	}
	printTable(w, header, rows)

	fmt.Fprintln(w)                                                 //nolint:errcheck
	fmt.Fprint(w, reporting.FormatSeriesReport(r.Metric, r.Series)) //nolint:errcheck
}
