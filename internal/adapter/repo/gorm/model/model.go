package model

import "time"

type Agent struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	CityID       string `gorm:"column:city_id"`
	Frozen       bool   `gorm:"column:frozen"`
	FrozenReason string `gorm:"column:frozen_reason"`
	Dead         bool   `gorm:"column:dead"`
	Reputation   int32  `gorm:"column:reputation"`
	Version      int64  `gorm:"column:version"`
}

func (Agent) TableName() string { return "agents" }

type AgentState struct {
	AgentID         string    `gorm:"column:agent_id;primaryKey"`
	Health          int32     `gorm:"column:health"`
	Energy          int32     `gorm:"column:energy"`
	Hunger          int32     `gorm:"column:hunger"`
	Social          int32     `gorm:"column:social"`
	Fun             int32     `gorm:"column:fun"`
	Purpose         int32     `gorm:"column:purpose"`
	HousingTier     string    `gorm:"column:housing_tier"`
	WealthTier      string    `gorm:"column:wealth_tier"`
	JobType         string    `gorm:"column:job_type"`
	ActivityState   string    `gorm:"column:activity_state"`
	ActivityEndTick int64     `gorm:"column:activity_end_tick"`
	CityID          string    `gorm:"column:city_id"`
	Version         int64     `gorm:"column:version"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (AgentState) TableName() string { return "agent_states" }

type Wallet struct {
	AgentID string  `gorm:"column:agent_id;primaryKey"`
	Balance float64 `gorm:"column:balance"`
	Version int64   `gorm:"column:version"`
}

func (Wallet) TableName() string { return "wallets" }

type Intent struct {
	ID       string `gorm:"column:id;primaryKey"`
	ActorID  string `gorm:"column:actor_id"`
	Kind     string `gorm:"column:kind"`
	Params   []byte `gorm:"column:params;type:jsonb"`
	Priority int32  `gorm:"column:priority"`
	Tick     int64  `gorm:"column:tick"`
	Status   string `gorm:"column:status"`
	Skill    string `gorm:"column:skill"`
}

func (Intent) TableName() string { return "intents" }

type Event struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ActorID    string    `gorm:"column:actor_id"`
	Type       string    `gorm:"column:type"`
	TargetID   string    `gorm:"column:target_id"`
	Tick       int64     `gorm:"column:tick"`
	Outcome    string    `gorm:"column:outcome"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}

func (Event) TableName() string { return "events" }

type Property struct {
	ID      string  `gorm:"column:id;primaryKey"`
	OwnerID string  `gorm:"column:owner_id"`
	CityID  string  `gorm:"column:city_id"`
	Kind    string  `gorm:"column:kind"`
	Value   float64 `gorm:"column:value"`
	Tenant  string  `gorm:"column:tenant"`
}

func (Property) TableName() string { return "properties" }

type Business struct {
	ID           string  `gorm:"column:id;primaryKey"`
	OwnerID      string  `gorm:"column:owner_id"`
	CityID       string  `gorm:"column:city_id"`
	Name         string  `gorm:"column:name"`
	DailyRevenue float64 `gorm:"column:daily_revenue"`
}

func (Business) TableName() string { return "businesses" }

type WorldClock struct {
	StateKey  string    `gorm:"column:state_key;primaryKey"`
	Tick      int64     `gorm:"column:tick"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (WorldClock) TableName() string { return "world_clock" }

type SkillCooldown struct {
	AgentID     string `gorm:"column:agent_id;primaryKey"`
	Skill       string `gorm:"column:skill;primaryKey"`
	LastRunTick int64  `gorm:"column:last_run_tick"`
}

func (SkillCooldown) TableName() string { return "skill_cooldowns" }
