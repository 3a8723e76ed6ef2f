package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateHousing(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	rent := ac.rentDue()
	if rent <= 0 || ac.Wallet.Balance < rent {
		return nil, nil
	}
	return []econ.Candidate{{
		Kind:     econ.IntentPayRent,
		Params:   map[string]any{"amount": rent},
		Priority: basePriority(econ.UrgencyUrgent) + rng.Intn(3),
	}}, nil
}
