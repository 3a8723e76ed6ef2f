package intent

import (
	"context"
	"errors"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

type fightHandler struct{}

func (fightHandler) Execute(ctx context.Context, _ UseCase, in *Input) (Outcome, error) {
	targetID := paramString(in, "target_id")
	if targetID == "" || targetID == in.Actor.ID {
		return blocked(in, "invalid_target"), nil
	}
	if in.State.Needs.Energy < econ.FightEnergyFloor {
		return blocked(in, "insufficient_energy"), nil
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

	// Damage derives from the tick-and-intent-scoped seed so a replay of the
	// same fight lands the same blow.
	damage := econ.FightDamageMin + detrand.IntN(in.Seed, econ.FightDamageSpread)
	targetHealth := clampNeed(targetState.Needs.Health - damage)
	actorEnergy := clampNeed(in.State.Needs.Energy - econ.FightEnergyCost)

	return Outcome{
		Updates: []econ.StateUpdate{
			stateUpdate(targetID, map[string]any{"health": targetHealth}),
			stateUpdate(in.Actor.ID, map[string]any{"energy": actorEnergy}),
			agentAdjust(in.Actor.ID, map[string]any{"reputation": in.Actor.Reputation - 5}),
		},
		Events: []econ.Event{newEvent(in, econ.EventFought, targetID, econ.OutcomeSuccess, map[string]any{
			"damage":              damage,
			"target_health_after": targetHealth,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
