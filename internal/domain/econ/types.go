package econ

import "time"

type Needs struct {
	Health  int `json:"health"`
	Energy  int `json:"energy"`
	Hunger  int `json:"hunger"`
	Social  int `json:"social"`
	Fun     int `json:"fun"`
	Purpose int `json:"purpose"`
}

func clampNeed(v int) int {
	if v < NeedMin {
		return NeedMin
	}
	if v > NeedMax {
		return NeedMax
	}
	return v
}

func (n Needs) Clamped() Needs {
	return Needs{
		Health:  clampNeed(n.Health),
		Energy:  clampNeed(n.Energy),
		Hunger:  clampNeed(n.Hunger),
		Social:  clampNeed(n.Social),
		Fun:     clampNeed(n.Fun),
		Purpose: clampNeed(n.Purpose),
	}
}

// AllAtMost reports whether every need is at or below ceiling.
func (n Needs) AllAtMost(ceiling int) bool {
	return n.Health <= ceiling && n.Energy <= ceiling && n.Hunger <= ceiling &&
		n.Social <= ceiling && n.Fun <= ceiling && n.Purpose <= ceiling
}

type FreezeReason string

const (
	FreezeNone     FreezeReason = ""
	FreezeEconomic FreezeReason = "economic_freeze"
	FreezeHealth   FreezeReason = "health_collapse"
)

type Agent struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	CityID       string       `json:"city_id"`
	Frozen       bool         `json:"frozen"`
	FrozenReason FreezeReason `json:"frozen_reason,omitempty"`
	Dead         bool         `json:"dead"`
	Reputation   int          `json:"reputation"`
	Version      int64        `json:"version"`
}

type ActivityState string

const (
	ActivityIdle        ActivityState = "IDLE"
	ActivityWorking     ActivityState = "WORKING"
	ActivityResting     ActivityState = "RESTING"
	ActivityJailed      ActivityState = "JAILED"
	ActivitySocializing ActivityState = "SOCIALIZING"
)

type HousingTier string

const (
	HousingStreet    HousingTier = "street"
	HousingShelter   HousingTier = "shelter"
	HousingApartment HousingTier = "apartment"
	HousingHouse     HousingTier = "house"
	HousingEstate    HousingTier = "estate"
)

type WealthTier string

const (
	WealthDestitute WealthTier = "destitute"
	WealthPoor      WealthTier = "poor"
	WealthMiddle    WealthTier = "middle"
	WealthRich      WealthTier = "rich"
)

type JobType string

const (
	JobNone    JobType = "none"
	JobPublic  JobType = "public"
	JobPrivate JobType = "private"
)

type AgentState struct {
	AgentID         string        `json:"agent_id"`
	Needs           Needs         `json:"needs"`
	HousingTier     HousingTier   `json:"housing_tier"`
	WealthTier      WealthTier    `json:"wealth_tier"`
	JobType         JobType       `json:"job_type"`
	ActivityState   ActivityState `json:"activity_state"`
	ActivityEndTick int64         `json:"activity_end_tick"`
	CityID          string        `json:"city_id"`
	Version         int64         `json:"version"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// ActivityDone reports whether any ongoing activity has naturally ended by tick.
func (s AgentState) ActivityDone(tick int64) bool {
	return s.ActivityState == ActivityIdle || tick >= s.ActivityEndTick
}

type Wallet struct {
	AgentID string  `json:"agent_id"`
	Balance float64 `json:"balance"`
	Version int64   `json:"version"`
}

type IntentKind string

const (
	IntentRest             IntentKind = "rest"
	IntentEat              IntentKind = "eat"
	IntentWork             IntentKind = "work"
	IntentSocialize        IntentKind = "socialize"
	IntentRelax            IntentKind = "relax"
	IntentGamble           IntentKind = "gamble"
	IntentFight            IntentKind = "fight"
	IntentCommitCrime      IntentKind = "commit_crime"
	IntentArrest           IntentKind = "arrest"
	IntentVote             IntentKind = "vote"
	IntentPostAgora        IntentKind = "post_agora"
	IntentTransferProperty IntentKind = "transfer_property"
	IntentPayRent          IntentKind = "pay_rent"
	IntentFoundBusiness    IntentKind = "found_business"
)

type IntentStatus string

const (
	IntentPending  IntentStatus = "PENDING"
	IntentExecuted IntentStatus = "EXECUTED"
	IntentBlocked  IntentStatus = "BLOCKED"
	IntentFailed   IntentStatus = "FAILED"
)

type Intent struct {
	ID       string         `json:"id"`
	ActorID  string         `json:"actor_id"`
	Kind     IntentKind     `json:"kind"`
	Params   map[string]any `json:"params,omitempty"`
	Priority int            `json:"priority"`
	Tick     int64          `json:"tick"`
	Status   IntentStatus   `json:"status"`
	Skill    string         `json:"skill,omitempty"`
}

// Candidate is a not-yet-selected action proposed by a skill evaluator.
type Candidate struct {
	Kind     IntentKind     `json:"kind"`
	Params   map[string]any `json:"params,omitempty"`
	Priority int            `json:"priority"`
	Skill    string         `json:"skill,omitempty"`
}

type EventOutcome string

const (
	OutcomeSuccess EventOutcome = "SUCCESS"
	OutcomeFail    EventOutcome = "FAIL"
	OutcomeBlocked EventOutcome = "BLOCKED"
)

type Event struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	Type       string         `json:"type"`
	TargetID   string         `json:"target_id,omitempty"`
	Tick       int64          `json:"tick"`
	Outcome    EventOutcome   `json:"outcome"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

const (
	EventRested              = "EVENT_RESTED"
	EventAte                 = "EVENT_ATE"
	EventWorked              = "EVENT_WORKED"
	EventSocialized          = "EVENT_SOCIALIZED"
	EventRelaxed             = "EVENT_RELAXED"
	EventGambled             = "EVENT_GAMBLED"
	EventFought              = "EVENT_FOUGHT"
	EventCrimeCommitted      = "EVENT_CRIME_COMMITTED"
	EventArrested            = "EVENT_ARRESTED"
	EventVoteCast            = "EVENT_VOTE_CAST"
	EventAgoraPosted         = "EVENT_AGORA_POSTED"
	EventPropertyTransferred = "EVENT_PROPERTY_TRANSFERRED"
	EventRentPaid            = "EVENT_RENT_PAID"
	EventBusinessFounded     = "EVENT_BUSINESS_FOUNDED"
	EventIntentBlocked       = "EVENT_INTENT_BLOCKED"
	EventAgentFrozen         = "EVENT_AGENT_FROZEN"
	EventAgentRevived        = "EVENT_AGENT_REVIVED"
	EventNeedsDecayed        = "EVENT_NEEDS_DECAYED"
	EventTaxCollected        = "EVENT_TAX_COLLECTED"
)

type Table string

const (
	TableAgents         Table = "agents"
	TableAgentStates    Table = "agent_states"
	TableWallets        Table = "wallets"
	TableProperties     Table = "properties"
	TableBusinesses     Table = "businesses"
	TableForumPosts     Table = "forum_posts"
	TableVotes          Table = "votes"
	TableModerationLogs Table = "moderation_logs"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// StateUpdate describes one mutation declaratively. Handlers never apply
// mutations themselves; batches go through the atomic applier so a whole
// intent commits or rolls back as one.
type StateUpdate struct {
	Table    Table          `json:"table"`
	Op       Op             `json:"op"`
	Selector map[string]any `json:"selector,omitempty"`
	Patch    map[string]any `json:"patch,omitempty"`
}

// Increment marks a patch value as a relative field adjustment rather than
// an absolute assignment.
type Increment struct {
	By float64 `json:"by"`
}

type Property struct {
	ID      string  `json:"id"`
	OwnerID string  `json:"owner_id"`
	CityID  string  `json:"city_id"`
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Tenant  string  `json:"tenant,omitempty"`
}

type Business struct {
	ID           string  `json:"id"`
	OwnerID      string  `json:"owner_id"`
	CityID       string  `json:"city_id"`
	Name         string  `json:"name"`
	DailyRevenue float64 `json:"daily_revenue"`
}
