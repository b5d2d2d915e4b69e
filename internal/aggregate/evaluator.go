// Package aggregate turns evaluator output into plain numeric series for
// plotting: per-speaker stacked status series for one conversation,
// turn-indexed metric series, and threshold-swept curves.
package aggregate

import "github.com/spboyer/hare/internal/models"

//go:generate go tool mockgen -source=evaluator.go -destination=mock_evaluator_test.go -package=aggregate

// Subject is the identity of an evaluation run.
type Subject interface {
	// Name is the display label used in legends.
	Name() string

	// Conversations returns the evaluated conversations, in order.
	Conversations() []*models.Conversation
}

// StatusHistory exposes per-turn status snapshots. Snapshots are only
// current after a refresh.
type StatusHistory interface {
	RefreshStatusHistory(conversation int) error
	RefreshAllStatusHistories()
	StatusSnapshots(conversation int) ([]models.StatusSnapshot, error)
}

// UtteranceMetrics answers point queries for each metric at a turn index.
// Implementations must accept any turn below the longest conversation's
// length, even for conversations that ended earlier.
type UtteranceMetrics interface {
	AccuracyAtUtterance(turn int) (float64, error)
	AUCAtUtterance(turn int) (float64, error)
	PrecisionAtUtterance(turn int) (float64, error)
	RecallAtUtterance(turn int) (float64, error)
	FScoreAtUtterance(turn int) (float64, error)
}

// RetrospectiveMetrics answers threshold sweeps over whole conversations.
type RetrospectiveMetrics interface {
	RetrospectivePrecision(thresholds []float64) ([]float64, error)
	RetrospectiveRecall(thresholds []float64) ([]float64, error)
	RetrospectiveROCCurve() (fpr, tpr []float64, err error)
}

// Evaluator is everything the aggregation layer needs from one evaluation run.
type Evaluator interface {
	Subject
	StatusHistory
	UtteranceMetrics
	RetrospectiveMetrics
}
