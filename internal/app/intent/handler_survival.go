package intent

import (
	"context"

	"agoraverse/internal/domain/econ"
)

type restHandler struct{}

func (restHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	if !in.State.ActivityDone(in.Tick) {
		return blocked(in, "activity_in_progress"), nil
	}
	duration := paramInt(in, "duration_ticks")
	if duration <= 0 {
		duration = econ.RestDurationTicks
	}
	newEnergy := clampNeed(in.State.Needs.Energy + econ.RestEnergyRecovery)
	return Outcome{
		Updates: []econ.StateUpdate{stateUpdate(in.Actor.ID, map[string]any{
			"activity_state":    string(econ.ActivityResting),
			"activity_end_tick": in.Tick + int64(duration),
			"energy":            newEnergy,
		})},
		Events: []econ.Event{newEvent(in, econ.EventRested, "", econ.OutcomeSuccess, map[string]any{
			"duration_ticks": duration,
			"energy_after":   newEnergy,
		})},
		Status: econ.IntentExecuted,
	}, nil
}

type eatHandler struct{}

func (eatHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	if in.Wallet.Balance < econ.EatCost {
		return blocked(in, "insufficient_funds"), nil
	}
	newHunger := clampNeed(in.State.Needs.Hunger + econ.EatHungerRecovery)
	return Outcome{
		Updates: []econ.StateUpdate{
			walletAdjust(in.Actor.ID, -econ.EatCost),
			stateUpdate(in.Actor.ID, map[string]any{"hunger": newHunger}),
		},
		Events: []econ.Event{newEvent(in, econ.EventAte, "", econ.OutcomeSuccess, map[string]any{
			"cost":         econ.EatCost,
			"hunger_after": newHunger,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
