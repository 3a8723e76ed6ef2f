package intent

import (
	"context"

	"agoraverse/internal/domain/econ"
)

type socializeHandler struct{}

func (socializeHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	if !in.State.ActivityDone(in.Tick) {
		return blocked(in, "activity_in_progress"), nil
	}
	newSocial := clampNeed(in.State.Needs.Social + econ.SocializeSocialRecovery)
	return Outcome{
		Updates: []econ.StateUpdate{stateUpdate(in.Actor.ID, map[string]any{
			"activity_state":    string(econ.ActivitySocializing),
			"activity_end_tick": in.Tick + 2,
			"social":            newSocial,
		})},
		Events: []econ.Event{newEvent(in, econ.EventSocialized, "", econ.OutcomeSuccess, map[string]any{
			"social_after": newSocial,
		})},
		Status: econ.IntentExecuted,
	}, nil
}

type relaxHandler struct{}

func (relaxHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	newFun := clampNeed(in.State.Needs.Fun + econ.RelaxFunRecovery)
	return Outcome{
		Updates: []econ.StateUpdate{stateUpdate(in.Actor.ID, map[string]any{"fun": newFun})},
		Events: []econ.Event{newEvent(in, econ.EventRelaxed, "", econ.OutcomeSuccess, map[string]any{
			"fun_after": newFun,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
