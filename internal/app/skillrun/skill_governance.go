package skillrun

import (
	"fmt"
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateGovernance(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	if ac.urgencyOf("purpose") < econ.UrgencyModerate {
		return nil, nil
	}
	// One ballot per city per day; the choice is the agent's own.
	proposalID := fmt.Sprintf("prop-%s-%d", ac.State.CityID, ac.Tick/econ.TicksPerDay)
	choice := "nay"
	if rng.Float64() < 0.5 {
		choice = "yea"
	}
	return []econ.Candidate{{
		Kind:     econ.IntentVote,
		Params:   map[string]any{"proposal_id": proposalID, "choice": choice},
		Priority: basePriority(ac.urgencyOf("purpose")) + rng.Intn(5),
	}}, nil
}
