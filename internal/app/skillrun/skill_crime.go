package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

var crimeMethods = []string{"pickpocket", "burglary", "fraud"}

func evaluateCrime(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	var out []econ.Candidate

	// Desperation crime: broke, still has the energy for it.
	if ac.urgencyOf("money") >= econ.UrgencyUrgent && ac.valueOf("energy") >= econ.CrimeEnergyFloor {
		out = append(out, econ.Candidate{
			Kind:     econ.IntentCommitCrime,
			Params:   map[string]any{"method": crimeMethods[rng.Intn(len(crimeMethods))]},
			Priority: basePriority(ac.urgencyOf("money")) - 10 + rng.Intn(5),
		})
	}

	if len(ac.Rivals) > 0 && ac.valueOf("energy") >= econ.FightEnergyFloor {
		out = append(out, econ.Candidate{
			Kind:     econ.IntentFight,
			Params:   map[string]any{"target_id": ac.Rivals[rng.Intn(len(ac.Rivals))]},
			Priority: basePriority(econ.UrgencyModerate) + rng.Intn(5),
		})
	}

	return out, nil
}
