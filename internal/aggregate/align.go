package aggregate

import (
	"fmt"

	"github.com/spboyer/hare/internal/models"
	"gonum.org/v1/gonum/floats"
)

// Alignment is one conversation's status history laid out as one
// equal-length series per speaker. Series[i] belongs to Speakers[i].
type Alignment struct {
	Speakers []string    `json:"speakers"`
	Series   [][]float64 `json:"series"`
}

// Band is the area a speaker occupies in a stacked plot.
type Band struct {
	Speaker string    `json:"speaker"`
	Lower   []float64 `json:"lower"`
	Upper   []float64 `json:"upper"`
}

// Align lays out snapshots as one zero-filled series per speaker of conv.
// With no snapshots there is nothing to show and the zero Alignment is
// returned.
func Align(conv *models.Conversation, snapshots []models.StatusSnapshot) Alignment {
	if len(snapshots) == 0 {
		return Alignment{}
	}

	speakers := conv.Speakers()
	series := make([][]float64, len(speakers))
	for i, speaker := range speakers {
		s := make([]float64, len(snapshots))
		for t, snap := range snapshots {
			s[t] = snap[speaker] // absent speakers read as 0
		}
		series[i] = s
	}

	return Alignment{Speakers: speakers, Series: series}
}

// Empty reports whether there is anything to plot.
func (a Alignment) Empty() bool {
	return len(a.Series) == 0 || len(a.Series[0]) == 0
}

// Turns is the number of turns each series covers.
func (a Alignment) Turns() int {
	if len(a.Series) == 0 {
		return 0
	}
	return len(a.Series[0])
}

// Stack returns the running sums of the series across speakers, so that
// Stack()[i][t] is the total of Series[0..i][t].
func (a Alignment) Stack() [][]float64 {
	if a.Empty() {
		return nil
	}

	stack := make([][]float64, len(a.Series))
	prev := make([]float64, a.Turns())
	for i, s := range a.Series {
		stack[i] = floats.AddTo(make([]float64, len(s)), prev, s)
		prev = stack[i]
	}
	return stack
}

// Bands returns, per speaker, the lower and upper boundary of its band in
// the stacked plot. The first band starts at zero.
func (a Alignment) Bands() []Band {
	stack := a.Stack()
	if stack == nil {
		return nil
	}

	bands := make([]Band, len(stack))
	lower := make([]float64, a.Turns())
	for i, upper := range stack {
		bands[i] = Band{Speaker: a.Speakers[i], Lower: lower, Upper: upper}
		lower = upper
	}
	return bands
}

// SpeakerToxicity refreshes the status history of one conversation and
// aligns it.
func SpeakerToxicity(e Evaluator, conversation int) (Alignment, error) {
	convs := e.Conversations()
	if conversation < 0 || conversation >= len(convs) {
		return Alignment{}, fmt.Errorf("%s: conversation %d out of range [0, %d)", e.Name(), conversation, len(convs))
	}

	if err := e.RefreshStatusHistory(conversation); err != nil {
		return Alignment{}, fmt.Errorf("%s: refreshing conversation %d: %w", e.Name(), conversation, err)
	}

	snapshots, err := e.StatusSnapshots(conversation)
	if err != nil {
		return Alignment{}, fmt.Errorf("%s: reading conversation %d: %w", e.Name(), conversation, err)
	}

	return Align(convs[conversation], snapshots), nil
}
