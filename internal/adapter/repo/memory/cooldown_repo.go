package memory

import (
	"context"
	"sort"
	"strings"

	"agoraverse/internal/app/ports"
)

type CooldownRepo struct {
	store *Store
}

func NewCooldownRepo(store *Store) CooldownRepo {
	return CooldownRepo{store: store}
}

func cooldownKey(agentID, skill string) string {
	return agentID + "::" + skill
}

func (r CooldownRepo) LastRunTick(_ context.Context, agentID, skill string) (int64, bool, error) {
	tick, ok := r.store.cooldowns[cooldownKey(agentID, skill)]
	return tick, ok, nil
}

func (r CooldownRepo) RecordRun(_ context.Context, agentID, skill string, tick int64) error {
	r.store.cooldowns[cooldownKey(agentID, skill)] = tick
	return nil
}

func (r CooldownRepo) List(_ context.Context) ([]ports.CooldownEntry, error) {
	out := make([]ports.CooldownEntry, 0, len(r.store.cooldowns))
	for key, tick := range r.store.cooldowns {
		parts := strings.SplitN(key, "::", 2)
		if len(parts) != 2 {
			continue
		}
		out = append(out, ports.CooldownEntry{AgentID: parts[0], Skill: parts[1], LastRunTick: tick})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AgentID != out[j].AgentID {
			return out[i].AgentID < out[j].AgentID
		}
		return out[i].Skill < out[j].Skill
	})
	return out, nil
}
