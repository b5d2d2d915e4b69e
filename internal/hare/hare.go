// Package hare implements a toxicity evaluator over labelled conversations.
//
// A Hare scores every utterance with a detector and tracks, per
// conversation, the status of each speaker after every turn: the running
// mean of that speaker's utterance scores. Speakers whose status reaches the
// decision threshold are flagged toxic and compared with the labels to
// produce per-turn and retrospective classification metrics.
package hare

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spboyer/hare/internal/dataset"
	"github.com/spboyer/hare/internal/detector"
	"github.com/spboyer/hare/internal/models"
	"github.com/spboyer/hare/internal/utils"
)

// DefaultThreshold is the decision threshold for per-turn metrics.
const DefaultThreshold = 0.5

var (
	// ErrStaleStatus is returned when a status history is read before it
	// has been refreshed.
	ErrStaleStatus = errors.New("status history is stale")

	// ErrSingleClass is returned when a curve needs both toxic and
	// non-toxic speakers and only one kind is present.
	ErrSingleClass = errors.New("need both toxic and non-toxic speakers")
)

// Option configures a Hare.
type Option func(*Hare)

// WithThreshold sets the decision threshold used by the per-turn metrics.
func WithThreshold(threshold float64) Option {
	return func(h *Hare) {
		h.threshold = threshold
	}
}

// Hare evaluates one detector over a set of conversations. It is not safe
// for concurrent use.
type Hare struct {
	name          string
	conversations []*models.Conversation
	detector      detector.Detector
	threshold     float64

	// status[i] is the history of conversations[i], valid when fresh[i].
	status [][]models.StatusSnapshot
	fresh  []bool
}

// New creates a Hare. Status histories start stale.
func New(name string, conversations []*models.Conversation, det detector.Detector, opts ...Option) *Hare {
	h := &Hare{
		name:      name,
		detector:  det,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, c := range conversations {
		h.AddConversation(c)
	}
	return h
}

// FromDataset builds a Hare from a loaded dataset. A threshold set in the
// dataset takes precedence over opts.
func FromDataset(ds *dataset.Dataset, opts ...Option) (*Hare, error) {
	det, err := detector.Create(detector.Type(ds.Detector.Type), ds.Detector.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ds.Name, err)
	}
	if ds.Threshold != nil {
		opts = append(opts, WithThreshold(*ds.Threshold))
	}
	return New(ds.Name, ds.Conversations, det, opts...), nil
}

func (h *Hare) Name() string { return h.name }

func (h *Hare) Conversations() []*models.Conversation { return h.conversations }

// Threshold returns the decision threshold used by the per-turn metrics.
func (h *Hare) Threshold() float64 { return h.threshold }

// AddConversation appends a conversation. Its status history is stale until
// refreshed.
func (h *Hare) AddConversation(c *models.Conversation) {
	h.conversations = append(h.conversations, c)
	h.status = append(h.status, nil)
	h.fresh = append(h.fresh, false)
}

// RefreshStatusHistory rebuilds the status history of one conversation.
// Refreshing a fresh history is a no-op.
func (h *Hare) RefreshStatusHistory(conversation int) error {
	if err := h.checkIndex(conversation); err != nil {
		return err
	}
	if h.fresh[conversation] {
		return nil
	}

	c := h.conversations[conversation]
	sums := make(map[string]float64)
	counts := make(map[string]int)
	current := make(models.StatusSnapshot)
	history := make([]models.StatusSnapshot, 0, c.Len())
	speakers := c.Speakers()

	for turn, u := range c.Utterances {
		sums[u.Speaker] += h.detector.Score(u)
		counts[u.Speaker]++
		current[u.Speaker] = sums[u.Speaker] / float64(counts[u.Speaker])
		history = append(history, current.Clone())
		utils.StatusToSlog(c.ID, turn, speakers, current)
	}

	h.status[conversation] = history
	h.fresh[conversation] = true
	slog.Debug("Refreshed status history", "evaluator", h.name, "conversation", c.ID, "turns", len(history))
	return nil
}

// RefreshAllStatusHistories brings every status history up to date.
func (h *Hare) RefreshAllStatusHistories() {
	for i := range h.conversations {
		// indices come from the slice itself so this cannot fail
		_ = h.RefreshStatusHistory(i)
	}
}

// StatusSnapshots returns one snapshot per turn of the conversation. The
// returned slice is shared with the Hare and must not be modified.
func (h *Hare) StatusSnapshots(conversation int) ([]models.StatusSnapshot, error) {
	if err := h.checkIndex(conversation); err != nil {
		return nil, err
	}
	if !h.fresh[conversation] {
		return nil, fmt.Errorf("conversation %d: %w", conversation, ErrStaleStatus)
	}
	return h.status[conversation], nil
}

func (h *Hare) checkIndex(conversation int) error {
	if conversation < 0 || conversation >= len(h.conversations) {
		return fmt.Errorf("conversation %d out of range [0, %d)", conversation, len(h.conversations))
	}
	return nil
}
