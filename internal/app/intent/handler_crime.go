package intent

import (
	"context"
	"errors"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

type crimeHandler struct{}

func (crimeHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	if in.State.Needs.Energy < econ.CrimeEnergyFloor {
		return blocked(in, "insufficient_energy"), nil
	}
	method := paramString(in, "method")
	if method == "" {
		method = "pickpocket"
	}

	succeeded := detrand.Chance(in.Seed, econ.CrimeBaseSuccess)
	newReputation := in.Actor.Reputation - econ.CrimeReputationHit

	if !succeeded {
		// A bungled job still costs reputation; the intent itself executed.
		return Outcome{
			Updates: []econ.StateUpdate{agentAdjust(in.Actor.ID, map[string]any{"reputation": newReputation})},
			Events: []econ.Event{newEvent(in, econ.EventCrimeCommitted, "", econ.OutcomeFail, map[string]any{
				"method": method,
			})},
			Status: econ.IntentExecuted,
		}, nil
	}

	loot := float64(econ.CrimeLootMin + detrand.IntN(in.Seed+"|loot", econ.CrimeLootSpread))
	return Outcome{
		Updates: []econ.StateUpdate{
			walletAdjust(in.Actor.ID, loot),
			agentAdjust(in.Actor.ID, map[string]any{"reputation": newReputation}),
		},
		Events: []econ.Event{newEvent(in, econ.EventCrimeCommitted, "", econ.OutcomeSuccess, map[string]any{
			"method": method,
			"loot":   loot,
		})},
		Status: econ.IntentExecuted,
	}, nil
}

type arrestHandler struct{}

func (arrestHandler) Execute(ctx context.Context, _ UseCase, in *Input) (Outcome, error) {
	if in.State.JobType != econ.JobPublic {
		return blocked(in, "not_authorized"), nil
	}
	targetID := paramString(in, "target_id")
	if targetID == "" || targetID == in.Actor.ID {
		return blocked(in, "invalid_target"), nil
	}

	target, err := in.View.Agent(ctx, targetID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return blocked(in, "target_missing"), nil
		}
		return Outcome{}, err
	}
	if target.Frozen || target.Dead {
		return blocked(in, "target_unavailable"), nil
	}
	targetState, err := in.View.AgentState(ctx, targetID)
	if err != nil {
		return Outcome{}, err
	}
	if targetState.CityID != in.State.CityID {
		return blocked(in, "cross_city"), nil
	}
	if targetState.ActivityState == econ.ActivityJailed && !targetState.ActivityDone(in.Tick) {
		return blocked(in, "already_jailed"), nil
	}

	return Outcome{
		Updates: []econ.StateUpdate{
			stateUpdate(targetID, map[string]any{
				"activity_state":    string(econ.ActivityJailed),
				"activity_end_tick": in.Tick + econ.ArrestJailTicks,
			}),
			agentAdjust(targetID, map[string]any{"reputation": target.Reputation - econ.ArrestReputationHit}),
		},
		Events: []econ.Event{newEvent(in, econ.EventArrested, targetID, econ.OutcomeSuccess, map[string]any{
			"jail_ticks": econ.ArrestJailTicks,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
