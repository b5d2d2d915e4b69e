package models

// Utterance is a single turn in a conversation.
type Utterance struct {
	Speaker string   `json:"speaker" yaml:"speaker"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty"`
	Score   *float64 `json:"score,omitempty" yaml:"score,omitempty"` // precomputed toxicity, if any
}

// Conversation is an ordered sequence of utterances together with the
// ground-truth labels for the speakers taking part in it.
type Conversation struct {
	ID            string      `json:"id" yaml:"id"`
	Utterances    []Utterance `json:"utterances" yaml:"utterances"`
	ToxicSpeakers []string    `json:"toxic_speakers,omitempty" yaml:"toxic_speakers,omitempty"`
}

// Len returns the number of turns in the conversation.
func (c *Conversation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Utterances)
}

// Speakers returns every participant exactly once, in order of first
// appearance. Labelled speakers that never spoke are appended at the end,
// in label order.
func (c *Conversation) Speakers() []string {
	if c == nil {
		return nil
	}

	seen := make(map[string]bool)
	var speakers []string
	for _, u := range c.Utterances {
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			speakers = append(speakers, u.Speaker)
		}
	}
	for _, s := range c.ToxicSpeakers {
		if !seen[s] {
			seen[s] = true
			speakers = append(speakers, s)
		}
	}
	return speakers
}

// IsToxic reports whether speaker is labelled toxic in this conversation.
func (c *Conversation) IsToxic(speaker string) bool {
	if c == nil {
		return false
	}
	for _, s := range c.ToxicSpeakers {
		if s == speaker {
			return true
		}
	}
	return false
}

// StatusSnapshot maps each speaker who has spoken by a given turn to their
// current score. Speakers missing from the map have a score of 0.
type StatusSnapshot map[string]float64

// Clone returns an independent copy of the snapshot.
func (s StatusSnapshot) Clone() StatusSnapshot {
	out := make(StatusSnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
