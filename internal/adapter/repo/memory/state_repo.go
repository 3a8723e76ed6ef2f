package memory

import (
	"context"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type AgentStateRepo struct {
	store *Store
}

func NewAgentStateRepo(store *Store) AgentStateRepo {
	return AgentStateRepo{store: store}
}

func (r AgentStateRepo) GetByAgentID(_ context.Context, agentID string) (econ.AgentState, error) {
	state, ok := r.store.states[agentID]
	if !ok {
		return econ.AgentState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r AgentStateRepo) SaveWithVersion(_ context.Context, state econ.AgentState, expectedVersion int64) error {
	current, ok := r.store.states[state.AgentID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		state.Version = 1
		r.store.states[state.AgentID] = state
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	state.Version = expectedVersion + 1
	r.store.states[state.AgentID] = state
	return nil
}
