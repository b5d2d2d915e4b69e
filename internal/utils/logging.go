package utils

import (
	"context"
	"log/slog"

	"github.com/spboyer/hare/internal/models"
)

// StatusToSlog logs the status of every speaker after one turn. Speakers
// are logged in the given order; those without a status yet are left out.
func StatusToSlog(conversation string, turn int, speakers []string, snapshot models.StatusSnapshot) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	attrs := []any{
		"conversation", conversation,
		"turn", turn,
	}

	for _, speaker := range speakers {
		v, ok := snapshot[speaker]
		attrs = addIf(attrs, speaker, v, ok)
	}

	slog.Debug("Status updated", attrs...)
}

func addIf[T any](attrs []any, name string, v T, ok bool) []any {
	if ok {
		attrs = append(attrs, name)
		attrs = append(attrs, v)
	}

	return attrs
}
