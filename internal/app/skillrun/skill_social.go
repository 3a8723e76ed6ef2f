package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateSocial(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	socialURG := ac.urgencyOf("social")
	if socialURG < econ.UrgencyModerate {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentSocialize,
		Priority: basePriority(socialURG) + rng.Intn(5),
	}}, nil
}
