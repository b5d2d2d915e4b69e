package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/hare/internal/aggregate"
	"github.com/spboyer/hare/internal/models"
	"gonum.org/v1/gonum/integrate"
)

// trendEpsilon is the smallest change between the first and last value of a
// series that counts as movement.
const trendEpsilon = 0.01

// InterpretScore returns a plain-language label for a numeric score (0–1).
func InterpretScore(score float64) string {
	pct := score * 100
	switch {
	case pct > 90:
		return "Excellent (>90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretAUC labels an area under the ROC curve. Anything near 0.5 is no
// better than chance.
func InterpretAUC(auc float64) string {
	switch {
	case auc >= 0.9:
		return "Excellent separation"
	case auc >= 0.75:
		return "Good separation"
	case auc > 0.55:
		return "Weak separation"
	case auc >= 0.45:
		return "No better than chance"
	default:
		return "Inverted ranking"
	}
}

// InterpretTrend describes how a series moved from its first turn to its last.
func InterpretTrend(values []float64) string {
	if len(values) < 2 {
		return "single turn"
	}
	delta := values[len(values)-1] - values[0]
	switch {
	case delta > trendEpsilon:
		return fmt.Sprintf("improves by %.2f over %d turns", delta, len(values))
	case delta < -trendEpsilon:
		return fmt.Sprintf("drops by %.2f over %d turns", -delta, len(values))
	default:
		return fmt.Sprintf("flat over %d turns", len(values))
	}
}

// FormatSeriesReport summarizes the final value and trend of each series.
func FormatSeriesReport(metric models.Metric, series []aggregate.Series) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	fmt.Fprintf(&b, "Metric: %s\n", metric.Label())

	for _, s := range series {
		if len(s.Values) == 0 {
			fmt.Fprintf(&b, "  %s: no conversations\n", s.Label)
			continue
		}
		last := s.Values[len(s.Values)-1]
		label := InterpretScore(last)
		if metric == models.MetricAUC {
			label = InterpretAUC(last)
		}
		fmt.Fprintf(&b, "  %s: final %.3f — %s, %s\n", s.Label, last, label, InterpretTrend(s.Values))
	}

	return b.String()
}

// FormatCurveReport summarizes each curve: the area under ROC curves, and the
// best F-score operating point of precision-recall curves.
func FormatCurveReport(curves []aggregate.Curve) string {
	var b strings.Builder

	b.WriteString("=== Interpretation ===\n\n")
	for _, c := range curves {
		switch c.Kind {
		case models.CurveROC:
			if len(c.X) < 2 {
				fmt.Fprintf(&b, "  %s: not enough points\n", c.Label)
				continue
			}
			auc := integrate.Trapezoidal(c.X, c.Y)
			fmt.Fprintf(&b, "  %s: AUC %.3f — %s\n", c.Label, auc, InterpretAUC(auc))
		default:
			i, f := bestFScore(c)
			if i < 0 {
				fmt.Fprintf(&b, "  %s: no operating point with non-zero precision and recall\n", c.Label)
				continue
			}
			fmt.Fprintf(&b, "  %s: best F-score %.3f at recall %.3f, precision %.3f — %s\n",
				c.Label, f, c.X[i], c.Y[i], InterpretScore(f))
		}
	}

	return b.String()
}

// bestFScore returns the index and value of the point with the highest
// harmonic mean of recall (X) and precision (Y), or -1 if none is positive.
func bestFScore(c aggregate.Curve) (int, float64) {
	best, bestF := -1, 0.0
	for i := range c.X {
		p, r := c.Y[i], c.X[i]
		if p+r == 0 {
			continue
		}
		if f := 2 * p * r / (p + r); f > bestF {
			best, bestF = i, f
		}
	}
	return best, bestF
}
