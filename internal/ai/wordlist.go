package ai

import (
	"context"
	"errors"
	"strings"

	"group-analytics-service/internal/analytics/core/ports"
)

// ErrNoProvider means no AI endpoint is configured; callers substitute their
// documented fallback values.
var ErrNoProvider = errors.New("ai: no provider configured")

// Wordlist is the no-API-key substitute: a plain substring check over a
// fixed abusive-word list. GrowthTip always fails so the snapshot falls back
// to its fixed string.
type Wordlist struct {
	words []string
}

var (
	_ ports.AbuseClassifierPort = (*Wordlist)(nil)
	_ ports.GrowthTipPort       = (*Wordlist)(nil)
)

func NewWordlist() *Wordlist {
	return &Wordlist{words: []string{"fuck", "bitch", "gali", "scam"}}
}

func (w *Wordlist) ClassifyAbuse(_ context.Context, text string) (ports.AbuseVerdict, error) {
	lower := strings.ToLower(text)
	for _, word := range w.words {
		if strings.Contains(lower, word) {
			return ports.AbuseVerdict{Flagged: true, Reason: "matched word list"}, nil
		}
	}
	return ports.AbuseVerdict{}, nil
}

func (w *Wordlist) GrowthTip(context.Context, string) (string, error) {
	return "", ErrNoProvider
}
