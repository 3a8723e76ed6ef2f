package rulebased

import (
	"context"
	"regexp"
	"strings"

	"agoraverse/internal/app/ports"
)

const maxPostLength = 2000

// Hard rules run before any scoring; a hit is an unconditional block.
var (
	injectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ignore (all |any )?(previous|prior) instructions`),
		regexp.MustCompile(`(?i)system prompt`),
		regexp.MustCompile(`(?i)you are now`),
	}
	secretPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(api[_-]?key|secret|password|token)\s*[:=]\s*\S+`),
		regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),
	}
)

var flagTerms = []string{"scam", "steal", "cheat", "rigged", "fraud"}

// Moderator reviews forum text with hard rules first, then a light heuristic
// pass. It never errors; outages belong to remote moderators only.
type Moderator struct{}

func New() Moderator { return Moderator{} }

func (Moderator) Review(_ context.Context, text string) (ports.ModerationVerdict, error) {
	if len(text) > maxPostLength {
		return ports.ModerationVerdict{
			Action:         ports.ModerationBlock,
			Classification: "oversized",
			Reasoning:      "post exceeds the maximum length",
		}, nil
	}
	for _, p := range injectionPatterns {
		if p.MatchString(text) {
			return ports.ModerationVerdict{
				Action:         ports.ModerationBlock,
				Classification: "prompt_injection",
				Reasoning:      "matched injection pattern",
			}, nil
		}
	}
	for _, p := range secretPatterns {
		if p.MatchString(text) {
			return ports.ModerationVerdict{
				Action:         ports.ModerationBlock,
				Classification: "secret_leak",
				Reasoning:      "matched credential pattern",
			}, nil
		}
	}

	lower := strings.ToLower(text)
	hits := 0
	for _, term := range flagTerms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	if hits > 0 {
		return ports.ModerationVerdict{
			Action:         ports.ModerationFlag,
			Classification: "suspicious",
			Sentiment:      "negative",
			Reasoning:      "contains terms associated with scams or grievances",
		}, nil
	}

	return ports.ModerationVerdict{
		Action:         ports.ModerationAllow,
		Classification: "ok",
		Sentiment:      "neutral",
	}, nil
}
