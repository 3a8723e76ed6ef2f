package memory

import (
	"context"
	"sort"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type AgentRepo struct {
	store *Store
}

func NewAgentRepo(store *Store) AgentRepo {
	return AgentRepo{store: store}
}

func (r AgentRepo) GetByID(_ context.Context, agentID string) (econ.Agent, error) {
	agent, ok := r.store.agents[agentID]
	if !ok {
		return econ.Agent{}, ports.ErrNotFound
	}
	return agent, nil
}

func (r AgentRepo) ListActive(_ context.Context) ([]econ.Agent, error) {
	out := make([]econ.Agent, 0, len(r.store.agents))
	for _, a := range r.store.agents {
		if !a.Frozen && !a.Dead {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r AgentRepo) ListFrozen(_ context.Context) ([]econ.Agent, error) {
	out := make([]econ.Agent, 0)
	for _, a := range r.store.agents {
		if a.Frozen && !a.Dead {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
