package intent

import (
	"context"

	"agoraverse/internal/domain/econ"
)

type workHandler struct{}

func (workHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	if in.State.JobType != econ.JobPublic && in.State.JobType != econ.JobPrivate {
		return blocked(in, "unemployed"), nil
	}
	if !in.State.ActivityDone(in.Tick) {
		return blocked(in, "activity_in_progress"), nil
	}
	if in.State.Needs.Energy < econ.WorkEnergyCost {
		return blocked(in, "insufficient_energy"), nil
	}
	duration := paramInt(in, "duration_ticks")
	if duration <= 0 {
		duration = econ.WorkDurationTicks
	}
	salary := econ.DailySalaries[in.State.JobType]
	newEnergy := clampNeed(in.State.Needs.Energy - econ.WorkEnergyCost)
	return Outcome{
		Updates: []econ.StateUpdate{
			stateUpdate(in.Actor.ID, map[string]any{
				"activity_state":    string(econ.ActivityWorking),
				"activity_end_tick": in.Tick + int64(duration),
				"energy":            newEnergy,
			}),
			walletAdjust(in.Actor.ID, salary),
		},
		Events: []econ.Event{newEvent(in, econ.EventWorked, "", econ.OutcomeSuccess, map[string]any{
			"job_type":       string(in.State.JobType),
			"salary":         salary,
			"duration_ticks": duration,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
