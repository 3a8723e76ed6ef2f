package fallback

import (
	"context"
	"fmt"
	"hash/fnv"
)

// Generator is the rule-based text source used when no language model is
// wired in. Output is a deterministic function of the prompt so replays
// produce identical posts.
type Generator struct{}

func New() Generator { return Generator{} }

var templates = []string{
	"Thinking out loud: %s. Curious what the rest of the city makes of it.",
	"Overheard at the agora today: %s. There is more to this than it seems.",
	"A note for my neighbors: %s. Worth keeping an eye on.",
	"Some days the city surprises you. Today it was this: %s.",
}

func (Generator) Generate(_ context.Context, prompt string) (string, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(prompt))
	tpl := templates[h.Sum64()%uint64(len(templates))]
	return fmt.Sprintf(tpl, prompt), nil
}
