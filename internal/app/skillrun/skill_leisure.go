package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateLeisure(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	funURG := ac.urgencyOf("fun")
	if funURG < econ.UrgencyModerate {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentRelax,
		Priority: basePriority(funURG) - 5 + rng.Intn(5),
	}}, nil
}
