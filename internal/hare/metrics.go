package hare

import (
	"fmt"

	"github.com/spboyer/hare/internal/models"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// sample is one speaker of one conversation: a score and its label.
type sample struct {
	score float64
	toxic bool
}

// samplesAt returns every speaker's status at turn. Conversations that
// ended before turn contribute their final status; empty conversations
// contribute nothing.
func (h *Hare) samplesAt(turn int) ([]sample, error) {
	if turn < 0 {
		return nil, fmt.Errorf("turn %d is negative", turn)
	}

	var samples []sample
	for i, c := range h.conversations {
		if c.Len() == 0 {
			continue
		}
		if !h.fresh[i] {
			return nil, fmt.Errorf("conversation %d: %w", i, ErrStaleStatus)
		}

		snap := h.status[i][min(turn, c.Len()-1)]
		for _, speaker := range c.Speakers() {
			samples = append(samples, sample{score: snap[speaker], toxic: c.IsToxic(speaker)})
		}
	}
	return samples, nil
}

// retrospectiveSamples returns, for every speaker, the highest status they
// reached over the whole conversation.
func (h *Hare) retrospectiveSamples() ([]sample, error) {
	var samples []sample
	for i, c := range h.conversations {
		if c.Len() == 0 {
			continue
		}
		if !h.fresh[i] {
			return nil, fmt.Errorf("conversation %d: %w", i, ErrStaleStatus)
		}

		peak := make(map[string]float64)
		for _, snap := range h.status[i] {
			for speaker, v := range snap {
				peak[speaker] = max(peak[speaker], v)
			}
		}
		for _, speaker := range c.Speakers() {
			samples = append(samples, sample{score: peak[speaker], toxic: c.IsToxic(speaker)})
		}
	}
	return samples, nil
}

func classify(samples []sample, threshold float64) models.Confusion {
	var c models.Confusion
	for _, s := range samples {
		c.Add(s.toxic, s.score >= threshold)
	}
	return c
}

func (h *Hare) confusionAt(turn int) (models.Confusion, error) {
	samples, err := h.samplesAt(turn)
	if err != nil {
		return models.Confusion{}, err
	}
	return classify(samples, h.threshold), nil
}

func (h *Hare) AccuracyAtUtterance(turn int) (float64, error) {
	c, err := h.confusionAt(turn)
	return c.Accuracy(), err
}

func (h *Hare) PrecisionAtUtterance(turn int) (float64, error) {
	c, err := h.confusionAt(turn)
	return c.Precision(), err
}

func (h *Hare) RecallAtUtterance(turn int) (float64, error) {
	c, err := h.confusionAt(turn)
	return c.Recall(), err
}

func (h *Hare) FScoreAtUtterance(turn int) (float64, error) {
	c, err := h.confusionAt(turn)
	return c.FScore(), err
}

// AUCAtUtterance is the area under the ROC curve of the statuses at turn.
// With only one class present it is 0.5.
func (h *Hare) AUCAtUtterance(turn int) (float64, error) {
	samples, err := h.samplesAt(turn)
	if err != nil {
		return 0, err
	}

	fpr, tpr, err := roc(samples)
	if err != nil {
		return 0.5, nil
	}
	return integrate.Trapezoidal(fpr, tpr), nil
}

// RetrospectivePrecision returns, per threshold, the precision of flagging
// every speaker whose status ever reached that threshold.
func (h *Hare) RetrospectivePrecision(thresholds []float64) ([]float64, error) {
	return h.sweep(thresholds, models.Confusion.Precision)
}

// RetrospectiveRecall is RetrospectivePrecision for recall.
func (h *Hare) RetrospectiveRecall(thresholds []float64) ([]float64, error) {
	return h.sweep(thresholds, models.Confusion.Recall)
}

func (h *Hare) sweep(thresholds []float64, measure func(models.Confusion) float64) ([]float64, error) {
	samples, err := h.retrospectiveSamples()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(thresholds))
	for i, th := range thresholds {
		out[i] = measure(classify(samples, th))
	}
	return out, nil
}

// RetrospectiveROCCurve returns the ROC curve of the speakers' peak
// statuses, with one point per distinct peak plus the origin.
func (h *Hare) RetrospectiveROCCurve() (fpr, tpr []float64, err error) {
	samples, err := h.retrospectiveSamples()
	if err != nil {
		return nil, nil, err
	}
	return roc(samples)
}

// roc returns false and true positive rates in increasing order, starting
// at (0, 0) and ending at (1, 1).
func roc(samples []sample) (fpr, tpr []float64, err error) {
	scores := make([]float64, len(samples))
	labels := make([]bool, len(samples))
	var pos, neg int
	for i, s := range samples {
		scores[i], labels[i] = s.score, s.toxic
		if s.toxic {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, nil, fmt.Errorf("%w: %d toxic, %d non-toxic", ErrSingleClass, pos, neg)
	}

	stat.SortWeightedLabeled(scores, labels, nil)
	tpr, fpr, _ = stat.ROC(nil, scores, labels, nil)
	return fpr, tpr, nil
}
