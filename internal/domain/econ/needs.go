package econ

import "sort"

type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyLow
	UrgencyModerate
	UrgencyUrgent
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyCritical:
		return "CRITICAL"
	case UrgencyUrgent:
		return "URGENT"
	case UrgencyModerate:
		return "MODERATE"
	case UrgencyLow:
		return "LOW"
	default:
		return "NONE"
	}
}

type NeedDomain string

const (
	DomainSurvival NeedDomain = "survival"
	DomainSocial   NeedDomain = "social"
	DomainLeisure  NeedDomain = "leisure"
	DomainEconomic NeedDomain = "economic"
)

type NeedAssessment struct {
	Need    string     `json:"need"`
	Value   int        `json:"value"`
	Urgency Urgency    `json:"urgency"`
	Domain  NeedDomain `json:"domain"`
}

// UrgencyFor maps a 0-100 need value to its discretized severity.
func UrgencyFor(value int) Urgency {
	switch {
	case value <= UrgencyCriticalCeiling:
		return UrgencyCritical
	case value <= UrgencyUrgentCeiling:
		return UrgencyUrgent
	case value <= UrgencyModerateCeiling:
		return UrgencyModerate
	case value <= UrgencyLowCeiling:
		return UrgencyLow
	default:
		return UrgencyNone
	}
}

// IncomeProfile carries the inputs for the derived economic need.
type IncomeProfile struct {
	PublicSalary    float64
	PrivateSalary   float64
	BusinessRevenue float64
}

// DailyIncome is priority-ordered: a public salary wins over a private one,
// which wins over summed business revenue.
func (p IncomeProfile) DailyIncome() float64 {
	if p.PublicSalary > 0 {
		return p.PublicSalary
	}
	if p.PrivateSalary > 0 {
		return p.PrivateSalary
	}
	if p.BusinessRevenue > 0 {
		return p.BusinessRevenue
	}
	return 0
}

// DailyBurn is rent for the housing tier plus a flat subsistence estimate.
func DailyBurn(tier HousingTier, rentByTier map[HousingTier]float64, subsistence float64) float64 {
	return rentByTier[tier] + subsistence
}

// EconomicUrgency models days-until-insolvency. The savings ratio compares
// balance against a month of burn.
func EconomicUrgency(balance, dailyIncome, dailyBurn float64, employed bool) Urgency {
	net := dailyBurn - dailyIncome
	runway := -1.0
	if net > 0 {
		runway = balance / net
	}
	savingsRatio := -1.0
	if dailyBurn > 0 {
		savingsRatio = balance / (dailyBurn * 30)
	}
	switch {
	case runway >= 0 && runway <= RunwayCriticalDays:
		return UrgencyCritical
	case runway >= 0 && runway <= RunwayUrgentDays:
		return UrgencyUrgent
	case (savingsRatio >= 0 && savingsRatio < SavingsRatioFloor) || !employed:
		return UrgencyModerate
	case savingsRatio >= 0 && savingsRatio < SavingsRatioLow:
		return UrgencyLow
	default:
		return UrgencyNone
	}
}

// EvaluateNeeds ranks what is urgent for one agent. Pure: same inputs, same
// output, byte for byte. The result is sorted by descending urgency; within
// one urgency level the fixed need order below keeps it stable.
func EvaluateNeeds(state AgentState, wallet Wallet, income IncomeProfile, rentByTier map[HousingTier]float64, subsistence float64) []NeedAssessment {
	n := state.Needs
	out := []NeedAssessment{
		{Need: "health", Value: n.Health, Urgency: UrgencyFor(n.Health), Domain: DomainSurvival},
		{Need: "energy", Value: n.Energy, Urgency: UrgencyFor(n.Energy), Domain: DomainSurvival},
		{Need: "hunger", Value: n.Hunger, Urgency: UrgencyFor(n.Hunger), Domain: DomainSurvival},
		{Need: "social", Value: n.Social, Urgency: UrgencyFor(n.Social), Domain: DomainSocial},
		{Need: "fun", Value: n.Fun, Urgency: UrgencyFor(n.Fun), Domain: DomainLeisure},
		{Need: "purpose", Value: n.Purpose, Urgency: UrgencyFor(n.Purpose), Domain: DomainLeisure},
	}

	burn := DailyBurn(state.HousingTier, rentByTier, subsistence)
	employed := state.JobType == JobPublic || state.JobType == JobPrivate
	econURG := EconomicUrgency(wallet.Balance, income.DailyIncome(), burn, employed)
	econValue := NeedMax
	if burn > 0 {
		runway := wallet.Balance / burn
		econValue = clampNeed(int(runway * 10))
	}
	out = append(out, NeedAssessment{Need: "money", Value: econValue, Urgency: econURG, Domain: DomainEconomic})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Urgency > out[j].Urgency
	})
	return out
}

// WorstUrgency returns the highest urgency among assessments for a domain.
func WorstUrgency(assessments []NeedAssessment, domain NeedDomain) Urgency {
	worst := UrgencyNone
	for _, a := range assessments {
		if a.Domain == domain && a.Urgency > worst {
			worst = a.Urgency
		}
	}
	return worst
}

// AssessmentFor returns the assessment of a named need, if present.
func AssessmentFor(assessments []NeedAssessment, need string) (NeedAssessment, bool) {
	for _, a := range assessments {
		if a.Need == need {
			return a, true
		}
	}
	return NeedAssessment{}, false
}
