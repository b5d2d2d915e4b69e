package aggregate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spboyer/hare/internal/models"
)

var (
	// ErrEmptyInput is returned when an aggregate needs at least one input
	// and got none.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch is returned when paired sweep results differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// DefaultThresholds is the sweep used for precision-recall curves when the
// caller has no preference.
var DefaultThresholds = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// Series is one evaluator's metric value per turn. Values[i] is the value
// at turn Start+i; every series carries its own index range because
// evaluators may cover different numbers of turns.
type Series struct {
	Label  string    `json:"label"`
	Start  int       `json:"start"`
	Values []float64 `json:"values"`
}

// Indices returns the turn index of every value.
func (s Series) Indices() []int {
	idx := make([]int, len(s.Values))
	for i := range idx {
		idx[i] = s.Start + i
	}
	return idx
}

// Curve is one evaluator's threshold sweep.
type Curve struct {
	Label string           `json:"label"`
	Kind  models.CurveKind `json:"kind"`
	X     []float64        `json:"x"`
	Y     []float64        `json:"y"`
}

type metricQuery func(UtteranceMetrics, int) (float64, error)

var metricQueries = map[models.Metric]metricQuery{
	models.MetricAccuracy:  UtteranceMetrics.AccuracyAtUtterance,
	models.MetricAUC:       UtteranceMetrics.AUCAtUtterance,
	models.MetricPrecision: UtteranceMetrics.PrecisionAtUtterance,
	models.MetricRecall:    UtteranceMetrics.RecallAtUtterance,
	models.MetricFScore:    UtteranceMetrics.FScoreAtUtterance,
}

// TurnSeries computes metricName at every turn for each evaluator. The
// metric name is checked before any evaluator is touched. Each evaluator is
// refreshed, then queried for turns 0 up to its own longest conversation.
func TurnSeries(evaluators []Evaluator, metricName string) ([]Series, error) {
	metric, err := models.ParseMetric(metricName)
	if err != nil {
		return nil, err
	}
	return MetricSeries(evaluators, metric)
}

// MetricSeries is TurnSeries for an already parsed metric.
func MetricSeries(evaluators []Evaluator, metric models.Metric) ([]Series, error) {
	query, ok := metricQueries[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedMetric, metric)
	}
	if len(evaluators) == 0 {
		return nil, fmt.Errorf("%s series: %w: no evaluators", metric, ErrEmptyInput)
	}

	for _, e := range evaluators {
		e.RefreshAllStatusHistories()
	}

	out := make([]Series, 0, len(evaluators))
	for _, e := range evaluators {
		turns := LongestConversation(e)
		slog.Debug("Building turn series", "evaluator", e.Name(), "metric", metric, "turns", turns)

		values := make([]float64, 0, turns)
		for t := 0; t < turns; t++ {
			v, err := query(e, t)
			if err != nil {
				return nil, fmt.Errorf("%s: %s at turn %d: %w", e.Name(), metric, t, err)
			}
			values = append(values, v)
		}
		out = append(out, Series{Label: e.Name(), Values: values})
	}
	return out, nil
}

// LongestConversation returns the turn count of the evaluator's longest
// conversation, 0 when it has none.
func LongestConversation(s Subject) int {
	longest := 0
	for _, c := range s.Conversations() {
		longest = max(longest, c.Len())
	}
	return longest
}

// RetrospectiveCurve sweeps each evaluator over a decision threshold.
//
// For precision-recall the evaluator is asked once for precision and once
// for recall at thresholds, giving X=recall and Y=precision in threshold
// order. For ROC the evaluator picks its own sweep, giving X=fpr and Y=tpr.
func RetrospectiveCurve(evaluators []Evaluator, thresholds []float64, kind models.CurveKind) ([]Curve, error) {
	switch kind {
	case models.CurvePrecisionRecall:
		if len(thresholds) == 0 {
			return nil, fmt.Errorf("%s curve: %w: no thresholds", kind, ErrEmptyInput)
		}
	case models.CurveROC:
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedCurve, kind)
	}

	out := make([]Curve, 0, len(evaluators))
	for _, e := range evaluators {
		e.RefreshAllStatusHistories()

		c, err := sweep(e, thresholds, kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %s curve: %w", e.Name(), kind, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func sweep(e Evaluator, thresholds []float64, kind models.CurveKind) (Curve, error) {
	c := Curve{Label: e.Name(), Kind: kind}

	if kind == models.CurveROC {
		fpr, tpr, err := e.RetrospectiveROCCurve()
		if err != nil {
			return Curve{}, err
		}
		if len(fpr) != len(tpr) {
			return Curve{}, fmt.Errorf("%w: %d false positive rates, %d true positive rates", ErrLengthMismatch, len(fpr), len(tpr))
		}
		c.X, c.Y = fpr, tpr
		return c, nil
	}

	precision, err := e.RetrospectivePrecision(thresholds)
	if err != nil {
		return Curve{}, err
	}
	recall, err := e.RetrospectiveRecall(thresholds)
	if err != nil {
		return Curve{}, err
	}
	if len(precision) != len(thresholds) || len(recall) != len(thresholds) {
		return Curve{}, fmt.Errorf("%w: %d thresholds, %d precisions, %d recalls",
			ErrLengthMismatch, len(thresholds), len(precision), len(recall))
	}
	c.X, c.Y = recall, precision
	return c, nil
}
