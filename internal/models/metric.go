package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedMetric is returned for a metric name outside the recognized set.
	ErrUnsupportedMetric = errors.New("unsupported metric")

	// ErrUnsupportedCurve is returned for a curve kind outside the recognized set.
	ErrUnsupportedCurve = errors.New("unsupported curve kind")
)

// Metric identifies a per-turn evaluation metric.
type Metric string

const (
	MetricAccuracy  Metric = "accuracy"
	MetricAUC       Metric = "auc"
	MetricPrecision Metric = "precision"
	MetricRecall    Metric = "recall"
	MetricFScore    Metric = "fscore"
)

// Metrics lists every recognized metric in display order.
var Metrics = []Metric{MetricAccuracy, MetricAUC, MetricPrecision, MetricRecall, MetricFScore}

// ParseMetric maps a metric name to its Metric. Matching ignores case and
// surrounding whitespace.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Metrics {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnsupportedMetric, name, metricNames())
}

// Label is the axis label a renderer should use for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricAccuracy:
		return "Accuracy"
	case MetricAUC:
		return "AUC"
	case MetricPrecision:
		return "Precision"
	case MetricRecall:
		return "Recall"
	case MetricFScore:
		return "F1-score"
	default:
		return string(m)
	}
}

// Floor is the lower y-axis bound a renderer should use. AUC below 0.5 is
// worse than chance so its plots start at 0.5.
func (m Metric) Floor() float64 {
	if m == MetricAUC {
		return 0.5
	}
	return 0
}

func metricNames() string {
	names := make([]string, len(Metrics))
	for i, m := range Metrics {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// CurveKind identifies a threshold-swept curve.
type CurveKind string

const (
	CurvePrecisionRecall CurveKind = "precision-recall"
	CurveROC             CurveKind = "roc"
)

// ParseCurveKind maps a curve name to its CurveKind. "pr" is accepted as
// shorthand for precision-recall.
func ParseCurveKind(name string) (CurveKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "precision-recall", "pr":
		return CurvePrecisionRecall, nil
	case "roc":
		return CurveROC, nil
	default:
		return "", fmt.Errorf("%w: %q (must be precision-recall or roc)", ErrUnsupportedCurve, name)
	}
}

// AxisLabels returns the x and y axis labels for the curve.
func (k CurveKind) AxisLabels() (x, y string) {
	if k == CurveROC {
		return "False positive rate", "True positive rate"
	}
	return "Recall", "Precision"
}
