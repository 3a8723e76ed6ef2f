package skillrun

import "agoraverse/internal/domain/econ"

// AgentContext is everything one skill evaluator may look at for one agent
// in one tick. Evaluators are pure over this snapshot plus their scoped RNG.
type AgentContext struct {
	Agent       econ.Agent
	State       econ.AgentState
	Wallet      econ.Wallet
	Assessments []econ.NeedAssessment
	Tick        int64

	Properties []econ.Property
	Businesses []econ.Business

	// Wanted lists agents flagged for arrest in the actor's city; Rivals
	// lists agents with an open grudge against the actor. Both are filled by
	// the tick layer from the recent event log.
	Wanted []string
	Rivals []string

	// RentByTier is the configured rent table; nil falls back to the
	// compiled-in defaults.
	RentByTier map[econ.HousingTier]float64
}

func (ac AgentContext) rentDue() float64 {
	if ac.RentByTier != nil {
		return ac.RentByTier[ac.State.HousingTier]
	}
	return econ.DefaultRentByTier[ac.State.HousingTier]
}

func (ac AgentContext) urgencyOf(need string) econ.Urgency {
	if a, ok := econ.AssessmentFor(ac.Assessments, need); ok {
		return a.Urgency
	}
	return econ.UrgencyNone
}

func (ac AgentContext) valueOf(need string) int {
	if a, ok := econ.AssessmentFor(ac.Assessments, need); ok {
		return a.Value
	}
	return econ.NeedMax
}

// basePriority converts an urgency level to a candidate priority band.
func basePriority(u econ.Urgency) int {
	switch u {
	case econ.UrgencyCritical:
		return 100
	case econ.UrgencyUrgent:
		return 80
	case econ.UrgencyModerate:
		return 60
	case econ.UrgencyLow:
		return 40
	default:
		return 20
	}
}
