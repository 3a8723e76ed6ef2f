package intent

import (
	"context"

	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

type voteHandler struct{}

func (voteHandler) Execute(_ context.Context, _ UseCase, in *Input) (Outcome, error) {
	proposalID := paramString(in, "proposal_id")
	if proposalID == "" {
		return blocked(in, "missing_proposal"), nil
	}
	choice := paramString(in, "choice")
	if choice != "yea" && choice != "nay" {
		return blocked(in, "invalid_choice"), nil
	}

	newPurpose := clampNeed(in.State.Needs.Purpose + 10)
	return Outcome{
		Updates: []econ.StateUpdate{
			{
				Table: econ.TableVotes,
				Op:    econ.OpCreate,
				Patch: map[string]any{
					"id":          uuid.NewString(),
					"proposal_id": proposalID,
					"voter_id":    in.Actor.ID,
					"choice":      choice,
					"tick":        in.Tick,
				},
			},
			stateUpdate(in.Actor.ID, map[string]any{"purpose": newPurpose}),
		},
		Events: []econ.Event{newEvent(in, econ.EventVoteCast, proposalID, econ.OutcomeSuccess, map[string]any{
			"choice": choice,
		})},
		Status: econ.IntentExecuted,
	}, nil
}
