package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

var businessKinds = []string{"bakery", "workshop", "tavern", "courier"}

func evaluateBusiness(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	if len(ac.Businesses) > 0 {
		return nil, nil
	}
	if ac.Wallet.Balance < econ.BusinessFoundingCost*1.5 {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentFoundBusiness,
		Params:   map[string]any{"kind": businessKinds[rng.Intn(len(businessKinds))]},
		Priority: basePriority(econ.UrgencyModerate) + rng.Intn(5),
	}}, nil
}
