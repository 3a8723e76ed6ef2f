package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

func evaluateProperty(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error) {
	// Distress sale: liquidate a holding back to the city when insolvency is
	// close and there is something to sell.
	if len(ac.Properties) == 0 || ac.urgencyOf("money") < econ.UrgencyUrgent {
		return nil, nil
	}
	prop := ac.Properties[rng.Intn(len(ac.Properties))]
	return []econ.Candidate{{
		Kind: econ.IntentTransferProperty,
		Params: map[string]any{
			"property_id": prop.ID,
			"to":          "city:" + ac.State.CityID,
			"price":       prop.Value,
		},
		Priority: basePriority(ac.urgencyOf("money")) - 5 + rng.Intn(5),
	}}, nil
}
