package intent

import (
	"time"

	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

func newEvent(in *Input, eventType, targetID string, outcome econ.EventOutcome, payload map[string]any) econ.Event {
	return econ.Event{
		ID:         uuid.NewString(),
		ActorID:    in.Actor.ID,
		Type:       eventType,
		TargetID:   targetID,
		Tick:       in.Tick,
		Outcome:    outcome,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// blocked builds the uniform rejection bundle: no updates, one event
// carrying the reason, terminal BLOCKED status.
func blocked(in *Input, reason string) Outcome {
	return Outcome{
		Events: []econ.Event{newEvent(in, econ.EventIntentBlocked, "", econ.OutcomeBlocked, map[string]any{
			"reason": reason,
			"kind":   string(in.Intent.Kind),
		})},
		Status: econ.IntentBlocked,
	}
}

func stateUpdate(agentID string, patch map[string]any) econ.StateUpdate {
	return econ.StateUpdate{
		Table:    econ.TableAgentStates,
		Op:       econ.OpUpdate,
		Selector: map[string]any{"agent_id": agentID},
		Patch:    patch,
	}
}

func walletAdjust(agentID string, by float64) econ.StateUpdate {
	return econ.StateUpdate{
		Table:    econ.TableWallets,
		Op:       econ.OpUpdate,
		Selector: map[string]any{"agent_id": agentID},
		Patch:    map[string]any{"balance": econ.Increment{By: by}},
	}
}

func agentAdjust(agentID string, patch map[string]any) econ.StateUpdate {
	return econ.StateUpdate{
		Table:    econ.TableAgents,
		Op:       econ.OpUpdate,
		Selector: map[string]any{"id": agentID},
		Patch:    patch,
	}
}

func paramString(in *Input, key string) string {
	if in.Intent.Params == nil {
		return ""
	}
	s, _ := in.Intent.Params[key].(string)
	return s
}

func paramFloat(in *Input, key string) float64 {
	if in.Intent.Params == nil {
		return 0
	}
	switch v := in.Intent.Params[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func paramInt(in *Input, key string) int {
	return int(paramFloat(in, key))
}

func clampNeed(v int) int {
	if v < econ.NeedMin {
		return econ.NeedMin
	}
	if v > econ.NeedMax {
		return econ.NeedMax
	}
	return v
}
