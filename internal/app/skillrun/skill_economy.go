package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateEconomy(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	if ac.State.JobType == econ.JobNone || ac.State.JobType == "" {
		return nil, nil
	}
	if ac.valueOf("energy") < econ.WorkEnergyCost {
		return nil, nil
	}
	moneyURG := ac.urgencyOf("money")
	if moneyURG < econ.UrgencyModerate {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentWork,
		Params:   map[string]any{"duration_ticks": econ.WorkDurationTicks},
		Priority: basePriority(moneyURG) + rng.Intn(5),
	}}, nil
}
