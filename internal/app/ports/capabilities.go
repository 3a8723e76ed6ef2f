package ports

import "context"

// SettlementClient is the external asynchronous transfer capability. Callers
// retry failures with backoff; a failed transfer never blocks a tick.
type SettlementClient interface {
	Transfer(ctx context.Context, fromActor, toAddress string, amount float64, reason string) error
}

// SettlementQueue accepts transfer jobs for out-of-band execution.
type SettlementQueue interface {
	Enqueue(fromActor, toAddress string, amount float64, reason string)
}

// TextGenerator returns generated text for a prompt, or a deterministic
// rule-based fallback when the backing capability is unavailable. It must
// never block the tick pipeline beyond a bounded call.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ModerationAction string

const (
	ModerationAllow ModerationAction = "allow"
	ModerationFlag  ModerationAction = "flag"
	ModerationBlock ModerationAction = "block"
)

type ModerationVerdict struct {
	Action         ModerationAction `json:"action"`
	Classification string           `json:"classification"`
	Sentiment      string           `json:"sentiment"`
	Reasoning      string           `json:"reasoning"`
}

type Moderator interface {
	Review(ctx context.Context, text string) (ModerationVerdict, error)
}
