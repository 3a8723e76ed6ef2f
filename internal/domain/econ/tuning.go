package econ

const (
	NeedMin = 0
	NeedMax = 100

	TicksPerDay = 24

	// Urgency step function boundaries (inclusive upper bounds).
	UrgencyCriticalCeiling = 10
	UrgencyUrgentCeiling   = 25
	UrgencyModerateCeiling = 50
	UrgencyLowCeiling      = 75

	// Economic runway thresholds, in days until insolvency.
	RunwayCriticalDays = 1
	RunwayUrgentDays   = 7
	SavingsRatioFloor  = 1.0
	SavingsRatioLow    = 3.0

	RestEnergyThreshold = 20
	RestDurationTicks   = 4
	RestEnergyRecovery  = 35

	EatHungerThreshold = 30
	EatCost            = 3.0
	EatHungerRecovery  = 40

	WorkDurationTicks = 8
	WorkEnergyCost    = 15

	SocializeSocialRecovery = 25
	RelaxFunRecovery        = 20

	FightEnergyCost   = 25
	FightDamageMin    = 5
	FightDamageSpread = 20
	FightEnergyFloor  = 30

	// Windows, in ticks, over which recent crimes mark an agent wanted and
	// recent assaults mark an attacker a rival.
	WantedWindowTicks = 2 * TicksPerDay
	RivalWindowTicks  = 2 * TicksPerDay

	CrimeEnergyFloor    = 20
	CrimeBaseSuccess    = 0.45
	CrimeReputationHit  = 10
	CrimeLootMin        = 5
	CrimeLootSpread     = 20
	ArrestJailTicks     = 48
	ArrestReputationHit = 25

	GambleMinStake   = 1.0
	GambleWinChance  = 0.47
	AgoraPurposeGain = 15

	BusinessFoundingCost = 200.0

	// Collapse and revival. Revival baselines are deliberately low so a
	// revived agent does not instantly re-collapse.
	CollapseNeedCeiling  = 5
	RevivalVitalBaseline = 30
	RevivalSocialNeeds   = 20

	// Per-tick decay applied by the decay sweep.
	DecayEnergyPerTick = 1
	DecayHungerPerTick = 1
	DecaySocialPerTick = 1
	DecayFunPerTick    = 1
)

// RevivalNeeds is the fixed needs vector applied on revival, never a full
// reset to 100.
func RevivalNeeds() Needs {
	return Needs{
		Health:  RevivalVitalBaseline,
		Energy:  RevivalVitalBaseline,
		Hunger:  RevivalVitalBaseline,
		Social:  RevivalSocialNeeds,
		Fun:     RevivalSocialNeeds,
		Purpose: RevivalSocialNeeds,
	}
}

// DailySalaries by job type, settlement currency per day.
var DailySalaries = map[JobType]float64{
	JobPublic:  24.0,
	JobPrivate: 18.0,
}

// DefaultRentByTier is the daily rent burn per housing tier. The street tier
// pays nothing; it is also the tier checked by the economic freeze rule.
var DefaultRentByTier = map[HousingTier]float64{
	HousingStreet:    0,
	HousingShelter:   2,
	HousingApartment: 6,
	HousingHouse:     14,
	HousingEstate:    30,
}

const DefaultSubsistenceCost = 4.0

const DefaultTaxRate = 0.05
