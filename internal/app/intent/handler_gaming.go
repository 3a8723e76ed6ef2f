package intent

import (
	"context"

	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

type gambleHandler struct{}

func (gambleHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	stake := paramFloat(in, "stake")
	if stake < econ.GambleMinStake {
		return blocked(in, "stake_too_small"), nil
	}
	if in.Wallet.Balance < stake {
		return blocked(in, "insufficient_funds"), nil
	}

	won := detrand.Chance(in.Seed, econ.GambleWinChance)
	delta := -stake
	if won {
		delta = stake
	}
	newFun := clampNeed(in.State.Needs.Fun + econ.RelaxFunRecovery/2)
	return Outcome{
		Updates: []econ.StateUpdate{
			walletAdjust(in.Actor.ID, delta),
			stateUpdate(in.Actor.ID, map[string]any{"fun": newFun}),
		},
		Events: []econ.Event{newEvent(in, econ.EventGambled, "", econ.OutcomeSuccess, map[string]any{
			"stake": stake,
			"won":   won,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
