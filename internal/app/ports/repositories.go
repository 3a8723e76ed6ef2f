package ports

import (
	"context"

	"agoraverse/internal/domain/econ"
)

type AgentRepository interface {
	GetByID(ctx context.Context, agentID string) (econ.Agent, error)
	ListActive(ctx context.Context) ([]econ.Agent, error)
	ListFrozen(ctx context.Context) ([]econ.Agent, error)
}

type AgentStateRepository interface {
	GetByAgentID(ctx context.Context, agentID string) (econ.AgentState, error)
	SaveWithVersion(ctx context.Context, state econ.AgentState, expectedVersion int64) error
}

type WalletRepository interface {
	GetByAgentID(ctx context.Context, agentID string) (econ.Wallet, error)
}

type IntentRepository interface {
	Save(ctx context.Context, intent econ.Intent) error
	SetStatus(ctx context.Context, intentID string, status econ.IntentStatus) error
	GetByID(ctx context.Context, intentID string) (econ.Intent, error)
}

type EventRepository interface {
	Append(ctx context.Context, events []econ.Event) error
	ListByActorID(ctx context.Context, actorID string, limit int) ([]econ.Event, error)
	// ListRecentByType returns events of one type with tick >= sinceTick,
	// ordered by (tick, id). The tick layer derives wanted and rival lists
	// from it.
	ListRecentByType(ctx context.Context, eventType string, sinceTick int64) ([]econ.Event, error)
}

type PropertyRepository interface {
	GetByID(ctx context.Context, propertyID string) (econ.Property, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]econ.Property, error)
}

type BusinessRepository interface {
	ListByOwnerID(ctx context.Context, ownerID string) ([]econ.Business, error)
}

type CooldownEntry struct {
	AgentID     string
	Skill       string
	LastRunTick int64
}

// ClockRepository persists the world tick. The scheduler resumes from the
// stored value after a restart; starting over at zero would leave every
// persisted cooldown entry in the future and lock the skills out.
type ClockRepository interface {
	Current(ctx context.Context) (int64, bool, error)
	Save(ctx context.Context, tick int64) error
}

// CooldownRepository persists the (agent, skill) -> last-run tick ledger so
// cooldown windows survive a restart. The key space is small (population x
// skill count); entries are refreshed, never pruned within a session.
type CooldownRepository interface {
	LastRunTick(ctx context.Context, agentID, skill string) (int64, bool, error)
	RecordRun(ctx context.Context, agentID, skill string, tick int64) error
	List(ctx context.Context) ([]CooldownEntry, error)
}
