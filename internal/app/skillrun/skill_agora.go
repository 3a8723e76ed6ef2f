package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

var agoraTopics = []string{"city life", "rent prices", "the casino", "work", "the vote"}

func evaluateAgora(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	purposeURG := ac.urgencyOf("purpose")
	socialURG := ac.urgencyOf("social")
	worst := purposeURG
	if socialURG > worst {
		worst = socialURG
	}
	if worst < econ.UrgencyModerate {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentPostAgora,
		Params:   map[string]any{"topic": agoraTopics[rng.Intn(len(agoraTopics))]},
		Priority: basePriority(worst) - 5 + rng.Intn(5),
	}}, nil
}
