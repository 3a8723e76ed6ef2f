package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluatePolice(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	// Only public employees police; they need someone wanted to go after.
	if ac.State.JobType != econ.JobPublic || len(ac.Wanted) == 0 {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentArrest,
		Params:   map[string]any{"target_id": ac.Wanted[rng.Intn(len(ac.Wanted))]},
		Priority: basePriority(econ.UrgencyUrgent) + rng.Intn(5),
	}}, nil
}
