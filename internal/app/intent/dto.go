package intent

import (
	"context"

	"agoraverse/internal/domain/econ"
)

// ReadView gives handlers read access to targets they must validate against.
// Reads inside a transaction see the transaction's snapshot.
type ReadView interface {
	Agent(ctx context.Context, id string) (econ.Agent, error)
	AgentState(ctx context.Context, id string) (econ.AgentState, error)
	Wallet(ctx context.Context, id string) (econ.Wallet, error)
	Property(ctx context.Context, id string) (econ.Property, error)
}

// Input is everything a handler may consult. Handlers never mutate shared
// state; they describe mutations in the returned Outcome.
type Input struct {
	Intent econ.Intent
	Actor  econ.Agent
	State  econ.AgentState
	Wallet econ.Wallet
	Tick   int64
	// Seed is the tick-and-intent-scoped RNG key. Any randomness affecting
	// the outcome must derive from it.
	Seed string
	View ReadView
}

// Outcome is a handler's pure result: a mutation batch, the audit events,
// and the terminal intent status. A BLOCKED outcome carries zero updates.
type Outcome struct {
	Updates []econ.StateUpdate
	Events  []econ.Event
	Status  econ.IntentStatus
}

// Result is what Execute reports back after commit.
type Result struct {
	IntentID string             `json:"intent_id"`
	Status   econ.IntentStatus  `json:"status"`
	Events   []econ.Event       `json:"events"`
	Updates  []econ.StateUpdate `json:"updates,omitempty"`
}
