package skillrun

import (
	"math/rand"

	"agoraverse/internal/domain/econ"
)

// EvaluateFunc proposes candidate intents for one agent. The rng is scoped to
// (agent, tick, skill); evaluators must take all randomness from it.
type EvaluateFunc func(ac AgentContext, rng *rand.Rand) ([]econ.Candidate, error)

type SkillSpec struct {
	Name string
	// MaxCandidates is a hard cap; excess candidates are truncated, not
	// prioritized, and the truncation is recorded.
	MaxCandidates int
	// CooldownTicks of zero means the skill runs every tick.
	CooldownTicks int64
	Evaluate      EvaluateFunc
}

const (
	SkillSurvival   = "survival"
	SkillHousing    = "housing"
	SkillEconomy    = "economy"
	SkillSocial     = "social"
	SkillCrime      = "crime"
	SkillPolice     = "police"
	SkillGovernance = "governance"
	SkillLeisure    = "leisure"
	SkillGaming     = "gaming"
	SkillBusiness   = "business"
	SkillAgora      = "agora"
	SkillProperty   = "property"
)

// DefaultRegistry returns the skill set in a fixed order. Order matters for
// reproducibility: the runner walks the slice, never a map.
func DefaultRegistry() []SkillSpec {
	return []SkillSpec{
		{Name: SkillSurvival, MaxCandidates: 2, Evaluate: evaluateSurvival},
		{Name: SkillHousing, MaxCandidates: 1, CooldownTicks: econ.TicksPerDay, Evaluate: evaluateHousing},
		{Name: SkillEconomy, MaxCandidates: 1, Evaluate: evaluateEconomy},
		{Name: SkillSocial, MaxCandidates: 1, Evaluate: evaluateSocial},
		{Name: SkillCrime, MaxCandidates: 2, CooldownTicks: 6, Evaluate: evaluateCrime},
		{Name: SkillPolice, MaxCandidates: 1, CooldownTicks: 4, Evaluate: evaluatePolice},
		{Name: SkillGovernance, MaxCandidates: 1, CooldownTicks: econ.TicksPerDay, Evaluate: evaluateGovernance},
		{Name: SkillLeisure, MaxCandidates: 1, Evaluate: evaluateLeisure},
		{Name: SkillGaming, MaxCandidates: 1, CooldownTicks: 6, Evaluate: evaluateGaming},
		{Name: SkillBusiness, MaxCandidates: 1, CooldownTicks: 2 * econ.TicksPerDay, Evaluate: evaluateBusiness},
		{Name: SkillAgora, MaxCandidates: 1, CooldownTicks: 12, Evaluate: evaluateAgora},
		{Name: SkillProperty, MaxCandidates: 1, CooldownTicks: econ.TicksPerDay, Evaluate: evaluateProperty},
	}
}
