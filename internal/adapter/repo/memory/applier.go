package memory

import (
	"context"
	"fmt"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

// Applier interprets declarative update batches against the in-memory
// store. Updates apply in batch order; the first failure aborts the batch
// (TxManager holds the store lock, so partial applies stay invisible only
// when callers treat an error as fatal for the surrounding operation).
type Applier struct {
	store *Store
}

func NewApplier(store *Store) Applier {
	return Applier{store: store}
}

func (a Applier) ApplyBatch(_ context.Context, updates []econ.StateUpdate) error {
	for i, u := range updates {
		if err := a.apply(u); err != nil {
			return fmt.Errorf("update %d (%s %s): %w", i, u.Op, u.Table, err)
		}
	}
	return nil
}

func (a Applier) apply(u econ.StateUpdate) error {
	switch u.Table {
	case econ.TableAgents:
		return a.applyAgent(u)
	case econ.TableAgentStates:
		return a.applyAgentState(u)
	case econ.TableWallets:
		return a.applyWallet(u)
	case econ.TableProperties:
		return a.applyProperty(u)
	case econ.TableBusinesses:
		return a.applyBusiness(u)
	case econ.TableForumPosts, econ.TableVotes, econ.TableModerationLogs:
		return a.applyRow(u)
	default:
		return fmt.Errorf("unknown table %q", u.Table)
	}
}

func (a Applier) applyAgent(u econ.StateUpdate) error {
	if u.Op != econ.OpUpdate {
		return fmt.Errorf("unsupported op %q", u.Op)
	}
	id, _ := u.Selector["id"].(string)
	agent, ok := a.store.agents[id]
	if !ok {
		return ports.ErrNotFound
	}
	for field, v := range u.Patch {
		switch field {
		case "frozen":
			agent.Frozen, _ = v.(bool)
		case "frozen_reason":
			s, _ := v.(string)
			agent.FrozenReason = econ.FreezeReason(s)
		case "dead":
			agent.Dead, _ = v.(bool)
		case "reputation":
			agent.Reputation = adjustInt(agent.Reputation, v)
		default:
			return fmt.Errorf("unknown agents field %q", field)
		}
	}
	agent.Version++
	a.store.agents[id] = agent
	return nil
}

func (a Applier) applyAgentState(u econ.StateUpdate) error {
	if u.Op != econ.OpUpdate {
		return fmt.Errorf("unsupported op %q", u.Op)
	}
	agentID, _ := u.Selector["agent_id"].(string)
	state, ok := a.store.states[agentID]
	if !ok {
		return ports.ErrNotFound
	}
	for field, v := range u.Patch {
		switch field {
		case "health":
			state.Needs.Health = adjustInt(state.Needs.Health, v)
		case "energy":
			state.Needs.Energy = adjustInt(state.Needs.Energy, v)
		case "hunger":
			state.Needs.Hunger = adjustInt(state.Needs.Hunger, v)
		case "social":
			state.Needs.Social = adjustInt(state.Needs.Social, v)
		case "fun":
			state.Needs.Fun = adjustInt(state.Needs.Fun, v)
		case "purpose":
			state.Needs.Purpose = adjustInt(state.Needs.Purpose, v)
		case "activity_state":
			s, _ := v.(string)
			state.ActivityState = econ.ActivityState(s)
		case "activity_end_tick":
			state.ActivityEndTick = int64(adjustInt(int(state.ActivityEndTick), v))
		case "housing_tier":
			s, _ := v.(string)
			state.HousingTier = econ.HousingTier(s)
		case "wealth_tier":
			s, _ := v.(string)
			state.WealthTier = econ.WealthTier(s)
		case "job_type":
			s, _ := v.(string)
			state.JobType = econ.JobType(s)
		default:
			return fmt.Errorf("unknown agent_states field %q", field)
		}
	}
	state.Needs = state.Needs.Clamped()
	state.Version++
	a.store.states[agentID] = state
	return nil
}

func (a Applier) applyWallet(u econ.StateUpdate) error {
	if u.Op != econ.OpUpdate {
		return fmt.Errorf("unsupported op %q", u.Op)
	}
	agentID, _ := u.Selector["agent_id"].(string)
	wallet, ok := a.store.wallets[agentID]
	if !ok {
		return ports.ErrNotFound
	}
	for field, v := range u.Patch {
		if field != "balance" {
			return fmt.Errorf("unknown wallets field %q", field)
		}
		wallet.Balance = adjustFloat(wallet.Balance, v)
	}
	wallet.Version++
	a.store.wallets[agentID] = wallet
	return nil
}

func (a Applier) applyProperty(u econ.StateUpdate) error {
	id, _ := u.Selector["id"].(string)
	switch u.Op {
	case econ.OpDelete:
		if _, ok := a.store.properties[id]; !ok {
			return ports.ErrNotFound
		}
		delete(a.store.properties, id)
		return nil
	case econ.OpUpdate:
		p, ok := a.store.properties[id]
		if !ok {
			return ports.ErrNotFound
		}
		for field, v := range u.Patch {
			switch field {
			case "owner_id":
				p.OwnerID, _ = v.(string)
			case "tenant":
				p.Tenant, _ = v.(string)
			case "value":
				p.Value = adjustFloat(p.Value, v)
			default:
				return fmt.Errorf("unknown properties field %q", field)
			}
		}
		a.store.properties[id] = p
		return nil
	default:
		return fmt.Errorf("unsupported op %q", u.Op)
	}
}

func (a Applier) applyBusiness(u econ.StateUpdate) error {
	if u.Op != econ.OpCreate {
		return fmt.Errorf("unsupported op %q", u.Op)
	}
	b := econ.Business{}
	b.ID, _ = u.Patch["id"].(string)
	b.OwnerID, _ = u.Patch["owner_id"].(string)
	b.CityID, _ = u.Patch["city_id"].(string)
	b.Name, _ = u.Patch["name"].(string)
	b.DailyRevenue = adjustFloat(0, u.Patch["daily_revenue"])
	if b.ID == "" {
		return fmt.Errorf("business create missing id")
	}
	a.store.businesses[b.ID] = b
	return nil
}

func (a Applier) applyRow(u econ.StateUpdate) error {
	if u.Op != econ.OpCreate {
		return fmt.Errorf("unsupported op %q", u.Op)
	}
	row := make(map[string]any, len(u.Patch))
	for k, v := range u.Patch {
		row[k] = v
	}
	a.store.rows[string(u.Table)] = append(a.store.rows[string(u.Table)], row)
	return nil
}

func adjustInt(current int, v any) int {
	switch val := v.(type) {
	case econ.Increment:
		return current + int(val.By)
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return current
	}
}

func adjustFloat(current float64, v any) float64 {
	switch val := v.(type) {
	case econ.Increment:
		return current + val.By
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return current
	}
}
