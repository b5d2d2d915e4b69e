package models

// Confusion holds the binary classification counts for one evaluation
// pass. Counts are float64 so weighted samples can be accumulated.
type Confusion struct {
	TP float64 `json:"true_positives"`
	FP float64 `json:"false_positives"`
	TN float64 `json:"true_negatives"`
	FN float64 `json:"false_negatives"`
}

// Add records one sample.
func (c *Confusion) Add(actual, predicted bool) {
	switch {
	case actual && predicted:
		c.TP++
	case !actual && predicted:
		c.FP++
	case !actual && !predicted:
		c.TN++
	case actual && !predicted:
		c.FN++
	}
}

// Total is the number of recorded samples.
func (c Confusion) Total() float64 {
	return c.TP + c.FP + c.TN + c.FN
}

func (c Confusion) Precision() float64 {
	return safeDivide(c.TP, c.TP+c.FP)
}

func (c Confusion) Recall() float64 {
	return safeDivide(c.TP, c.TP+c.FN)
}

// FScore is the harmonic mean of precision and recall, 0 when both are 0.
func (c Confusion) FScore() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func (c Confusion) Accuracy() float64 {
	return safeDivide(c.TP+c.TN, c.Total())
}

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}
