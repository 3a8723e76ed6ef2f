package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateSurvival(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	var out []econ.Candidate

	energy := ac.valueOf("energy")
	if energy <= econ.RestEnergyThreshold || ac.urgencyOf("energy") >= econ.UrgencyUrgent {
		out = append(out, econ.Candidate{
			Kind:     econ.IntentRest,
			Params:   map[string]any{"duration_ticks": econ.RestDurationTicks},
			Priority: basePriority(ac.urgencyOf("energy")) + rng.Intn(5),
		})
	}

	if ac.valueOf("hunger") <= econ.EatHungerThreshold && ac.Wallet.Balance >= econ.EatCost {
		out = append(out, econ.Candidate{
			Kind:     econ.IntentEat,
			Priority: basePriority(ac.urgencyOf("hunger")) + rng.Intn(5),
		})
	}

	return out, nil
}
