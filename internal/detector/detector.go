// Package detector scores utterances for toxicity.
package detector

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/hare/internal/models"
)

type Type string

const (
	// TypePrecomputed reads the score stored on each utterance.
	TypePrecomputed Type = "precomputed"

	// TypeDictionary counts hits against a word list.
	TypeDictionary Type = "dictionary"
)

// Detector scores a single utterance. Scores are in [0, 1].
type Detector interface {
	Type() Type
	Score(u models.Utterance) float64
}

// Create builds a detector of the given type from its params.
func Create(detectorType Type, params map[string]any) (Detector, error) {
	switch detectorType {
	case TypePrecomputed, "":
		var v struct {
			Default float64 `mapstructure:"default"`
		}

		if err := mapstructure.Decode(params, &v); err != nil {
			return nil, fmt.Errorf("precomputed detector params: %w", err)
		}

		return &Precomputed{Default: v.Default}, nil
	case TypeDictionary:
		var v struct {
			Words  []string `mapstructure:"words"`
			Weight *float64 `mapstructure:"weight"`
		}

		if err := mapstructure.Decode(params, &v); err != nil {
			return nil, fmt.Errorf("dictionary detector params: %w", err)
		}

		weight := 1.0
		if v.Weight != nil {
			weight = *v.Weight
		}
		return NewDictionary(v.Words, weight)
	default:
		return nil, fmt.Errorf("'%s' is not a valid detector type", detectorType)
	}
}

// Precomputed returns the score already attached to the utterance, or
// Default when it has none.
type Precomputed struct {
	Default float64
}

func (p *Precomputed) Type() Type { return TypePrecomputed }

func (p *Precomputed) Score(u models.Utterance) float64 {
	if u.Score == nil {
		return p.Default
	}
	return clamp(*u.Score)
}

// Dictionary scores an utterance by the share of its words found in a fixed
// word list, scaled by weight and capped at 1.
type Dictionary struct {
	words  map[string]bool
	weight float64
}

// NewDictionary returns a Dictionary detector. Matching is case-insensitive.
func NewDictionary(words []string, weight float64) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary detector needs at least one word")
	}
	if weight <= 0 {
		return nil, fmt.Errorf("dictionary detector weight must be positive, got %g", weight)
	}

	d := &Dictionary{words: make(map[string]bool, len(words)), weight: weight}
	for _, w := range words {
		d.words[strings.ToLower(w)] = true
	}
	return d, nil
}

func (d *Dictionary) Type() Type { return TypeDictionary }

func (d *Dictionary) Score(u models.Utterance) float64 {
	tokens := tokenize(u.Text)
	if len(tokens) == 0 {
		return 0
	}

	hits := 0
	for _, tok := range tokens {
		if d.words[tok] {
			hits++
		}
	}
	return clamp(d.weight * float64(hits) / float64(len(tokens)))
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) })
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}
