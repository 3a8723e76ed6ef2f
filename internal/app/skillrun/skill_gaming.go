package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateGaming(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	if ac.urgencyOf("fun") < econ.UrgencyModerate {
		return nil, nil
	}
	stake := ac.Wallet.Balance * 0.05
	if stake < econ.GambleMinStake {
		return nil, nil
	}
	if stake > 25 {
		stake = 25
	}
	return []econ.Candidate{{
		Kind:     econ.IntentGamble,
		Params:   map[string]any{"stake": stake},
		Priority: basePriority(econ.UrgencyLow) + rng.Intn(10),
	}}, nil
}
