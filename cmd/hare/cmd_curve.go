package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spboyer/hare/internal/models"
	"github.com/spboyer/hare/internal/reporting"
	"github.com/spf13/cobra"
)

func newCurveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve [dataset ...]",
		Short: "Sweep the decision threshold over each speaker's peak status",
		Long: `Build a retrospective curve per dataset.

A speaker's retrospective score is the highest status they reached in their
conversation. The precision-recall curve classifies speakers at every
threshold of the sweep; the ROC curve uses every distinct score as a cut-off.

With no arguments every dataset in the configured datasets directory is used.`,
		RunE: curveCommandE,
	}

	cmd.Flags().StringP("kind", "k", "", "Curve kind: precision-recall (pr) or roc (default from .hare.yaml, else precision-recall)")
	cmd.Flags().Float64Slice("thresholds", nil, "Decision thresholds for precision-recall curves (default from .hare.yaml, else 0.1,0.2,...,0.9)")
	addFormatFlag(cmd)

	return cmd
}

// curveReport is the JSON document produced by the curve command.
type curveReport struct {
	Kind       models.CurveKind  `json:"kind"`
	XLabel     string            `json:"x_label"`
	YLabel     string            `json:"y_label"`
	Thresholds []float64         `json:"thresholds,omitempty"`
	Curves     []aggregate.Curve `json:"curves"`
}

func curveCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("kind")
	if err != nil {
		return err
	}
	if name == "" {
		name = cfg.Defaults.Curve
	}
	kind, err := models.ParseCurveKind(name)
	if err != nil {
		return err
	}

	thresholds, err := cmd.Flags().GetFloat64Slice("thresholds")
	if err != nil {
		return err
	}
	if len(thresholds) == 0 {
		thresholds = cfg.Curves.Thresholds
	}
	if kind == models.CurveROC {
		if cmd.Flags().Changed("thresholds") {
			slog.Debug("ignoring --thresholds for roc curves")
		}
		thresholds = nil
	}

	paths, err := datasetPaths(args, cfg)
	if err != nil {
		return err
	}
	evaluators, err := loadEvaluators(paths, cfg)
	if err != nil {
		return err
	}

	curves, err := aggregate.RetrospectiveCurve(evaluators, thresholds, kind)
	if err != nil {
		return err
	}

	report := curveReport{
		Kind:       kind,
		Thresholds: thresholds,
		Curves:     curves,
	}
	report.XLabel, report.YLabel = kind.AxisLabels()

	if format == formatJSON {
		return writeJSON(cmd, report)
	}
	printCurveTable(cmd.OutOrStdout(), report)
	return nil
}

func printCurveTable(w io.Writer, r curveReport) {
	printBanner(w, strings.ToUpper(string(r.Kind))+" CURVE")

	for _, c := range r.Curves {
		fmt.Fprintf(w, "  %s\n", c.Label) //nolint:errcheck

		header := []string{"Point", r.XLabel, r.YLabel}
		if len(r.Thresholds) == len(c.X) {
			header[0] = "Threshold"
		}

		rows := make([][]string, 0, len(c.X))
		for i := range c.X {
			first := strconv.Itoa(i)
			if len(r.Thresholds) == len(c.X) {
				first = strconv.FormatFloat(r.Thresholds[i], 'g', -1, 64)
			}
			rows = append(rows, []string{first, formatValue(c.X[i]), formatValue(c.Y[i])})
		}
		printTable(w, header, rows)
		fmt.Fprintln(w) //nolint:errcheck
	}

	fmt.Fprint(w, reporting.FormatCurveReport(r.Curves)) //nolint:errcheck
}
