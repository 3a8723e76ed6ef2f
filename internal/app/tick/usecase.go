package tick

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"agoraverse/internal/app/intent"
	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/skillrun"
	"agoraverse/internal/domain/econ"

	"github.com/google/uuid"
)

// intentExecutor is what the tick loop needs from the intent engine.
type intentExecutor interface {
	Execute(ctx context.Context, it econ.Intent) (intent.Result, error)
}

// UseCase drives one scheduler tick: evaluate needs, run skills, select one
// intent per agent, execute. One misbehaving agent never takes down the
// tick; defects are recorded and the loop moves on.
type UseCase struct {
	Agents     ports.AgentRepository
	States     ports.AgentStateRepository
	Wallets    ports.WalletRepository
	Properties ports.PropertyRepository
	Businesses ports.BusinessRepository
	Intents    ports.IntentRepository
	Events     ports.EventRepository

	Runner   *skillrun.Runner
	Executor intentExecutor
	Metrics  ports.TickMetrics
	Log      *slog.Logger

	// Cooldowns, when set, mirrors the runner's ledger to storage so
	// cooldown windows survive restarts.
	Cooldowns ports.CooldownRepository

	RentByTier  map[econ.HousingTier]float64
	Subsistence float64
}

type Report struct {
	Tick         int64
	Agents       int
	Executed     int
	Blocked      int
	Failed       int
	Busy         int
	NoCandidates int
	Defects      int
}

func (u UseCase) RunTick(ctx context.Context, tick int64) (Report, error) {
	report := Report{Tick: tick}

	agents, err := u.Agents.ListActive(ctx)
	if err != nil {
		return report, fmt.Errorf("list active agents: %w", err)
	}
	report.Agents = len(agents)

	heat, err := u.loadHeat(ctx, tick)
	if err != nil {
		// Policing and grudges are advisory; the tick proceeds without them.
		u.logger().Warn("heat index unavailable", "tick", tick, "err", err)
	}

	for _, agent := range agents {
		u.runAgent(ctx, tick, agent, heat, &report)
	}
	return report, nil
}

// heatIndex is derived once per tick from the recent event log: who is
// wanted in each city, and who holds a grudge against whom.
type heatIndex struct {
	wantedByCity map[string][]string
	rivalsOf     map[string][]string
}

func (u UseCase) loadHeat(ctx context.Context, tick int64) (heatIndex, error) {
	heat := heatIndex{
		wantedByCity: map[string][]string{},
		rivalsOf:     map[string][]string{},
	}
	if u.Events == nil {
		return heat, nil
	}

	crimes, err := u.Events.ListRecentByType(ctx, econ.EventCrimeCommitted, tick-econ.WantedWindowTicks)
	if err != nil {
		return heat, fmt.Errorf("list recent crimes: %w", err)
	}
	seen := map[string]bool{}
	for _, e := range crimes {
		if seen[e.ActorID] {
			continue
		}
		seen[e.ActorID] = true
		state, err := u.States.GetByAgentID(ctx, e.ActorID)
		if err != nil {
			continue
		}
		// Already behind bars; no point proposing a second arrest.
		if state.ActivityState == econ.ActivityJailed && !state.ActivityDone(tick) {
			continue
		}
		heat.wantedByCity[state.CityID] = append(heat.wantedByCity[state.CityID], e.ActorID)
	}

	fights, err := u.Events.ListRecentByType(ctx, econ.EventFought, tick-econ.RivalWindowTicks)
	if err != nil {
		return heat, fmt.Errorf("list recent fights: %w", err)
	}
	grudges := map[string]map[string]bool{}
	for _, e := range fights {
		if e.TargetID == "" || e.ActorID == e.TargetID {
			continue
		}
		if grudges[e.TargetID] == nil {
			grudges[e.TargetID] = map[string]bool{}
		}
		if grudges[e.TargetID][e.ActorID] {
			continue
		}
		grudges[e.TargetID][e.ActorID] = true
		heat.rivalsOf[e.TargetID] = append(heat.rivalsOf[e.TargetID], e.ActorID)
	}

	// Candidate selection draws from these by seeded RNG; the slices must be
	// in a reproducible order.
	for _, ids := range heat.wantedByCity {
		sort.Strings(ids)
	}
	for _, ids := range heat.rivalsOf {
		sort.Strings(ids)
	}
	return heat, nil
}

func (u UseCase) runAgent(ctx context.Context, tick int64, agent econ.Agent, heat heatIndex, report *Report) {
	defer func() {
		if r := recover(); r != nil {
			report.Defects++
			u.defect(agent.ID, fmt.Errorf("panic: %v", r))
		}
	}()

	state, err := u.States.GetByAgentID(ctx, agent.ID)
	if err != nil {
		report.Defects++
		u.defect(agent.ID, err)
		return
	}
	if !state.ActivityDone(tick) {
		report.Busy++
		return
	}
	wallet, err := u.Wallets.GetByAgentID(ctx, agent.ID)
	if err != nil {
		report.Defects++
		u.defect(agent.ID, err)
		return
	}

	ac, err := u.buildContext(ctx, agent, state, wallet, tick, heat)
	if err != nil {
		report.Defects++
		u.defect(agent.ID, err)
		return
	}

	run, err := u.Runner.Run(ac)
	if err != nil {
		// A broken evaluator yields zero candidates for this agent only.
		report.Defects++
		u.defect(agent.ID, err)
		return
	}
	u.recordRunMetrics(run)
	u.persistCooldowns(ctx, agent.ID, run.Ran, tick)

	candidate, ok := selectCandidate(run.Candidates)
	if !ok {
		report.NoCandidates++
		return
	}

	it := econ.Intent{
		ID:       uuid.NewString(),
		ActorID:  agent.ID,
		Kind:     candidate.Kind,
		Params:   candidate.Params,
		Priority: candidate.Priority,
		Tick:     tick,
		Status:   econ.IntentPending,
		Skill:    candidate.Skill,
	}
	if err := u.Intents.Save(ctx, it); err != nil {
		report.Defects++
		u.defect(agent.ID, err)
		return
	}

	result, err := u.Executor.Execute(ctx, it)
	if err != nil {
		report.Failed++
		u.logger().Warn("intent failed",
			"agent_id", agent.ID, "intent_id", it.ID, "kind", it.Kind, "err", err)
		return
	}
	switch result.Status {
	case econ.IntentExecuted:
		report.Executed++
	case econ.IntentBlocked:
		report.Blocked++
	default:
		report.Failed++
	}
}

func (u UseCase) buildContext(ctx context.Context, agent econ.Agent, state econ.AgentState, wallet econ.Wallet, tick int64, heat heatIndex) (skillrun.AgentContext, error) {
	properties, err := u.Properties.ListByOwnerID(ctx, agent.ID)
	if err != nil {
		return skillrun.AgentContext{}, fmt.Errorf("list properties: %w", err)
	}
	businesses, err := u.Businesses.ListByOwnerID(ctx, agent.ID)
	if err != nil {
		return skillrun.AgentContext{}, fmt.Errorf("list businesses: %w", err)
	}

	income := econ.IncomeProfile{}
	switch state.JobType {
	case econ.JobPublic:
		income.PublicSalary = econ.DailySalaries[econ.JobPublic]
	case econ.JobPrivate:
		income.PrivateSalary = econ.DailySalaries[econ.JobPrivate]
	}
	for _, b := range businesses {
		income.BusinessRevenue += b.DailyRevenue
	}

	wanted := make([]string, 0, len(heat.wantedByCity[state.CityID]))
	for _, id := range heat.wantedByCity[state.CityID] {
		if id != agent.ID {
			wanted = append(wanted, id)
		}
	}

	return skillrun.AgentContext{
		Agent:       agent,
		State:       state,
		Wallet:      wallet,
		Assessments: econ.EvaluateNeeds(state, wallet, income, u.RentByTier, u.Subsistence),
		Tick:        tick,
		Properties:  properties,
		Businesses:  businesses,
		Wanted:      wanted,
		Rivals:      heat.rivalsOf[agent.ID],
		RentByTier:  u.RentByTier,
	}, nil
}

func (u UseCase) recordRunMetrics(run skillrun.RunResult) {
	if u.Metrics == nil {
		return
	}
	for _, skill := range run.Skipped {
		u.Metrics.RecordSkillSkip(skill)
	}
	for skill, dropped := range run.Truncated {
		u.Metrics.RecordSkillTruncation(skill, dropped)
	}
}

func (u UseCase) persistCooldowns(ctx context.Context, agentID string, ran []string, tick int64) {
	if u.Cooldowns == nil {
		return
	}
	for _, skill := range ran {
		if err := u.Cooldowns.RecordRun(ctx, agentID, skill, tick); err != nil {
			u.logger().Warn("cooldown persist failed", "agent_id", agentID, "skill", skill, "err", err)
		}
	}
}

func (u UseCase) defect(agentID string, err error) {
	if u.Metrics != nil {
		u.Metrics.RecordAgentDefect(agentID)
	}
	u.logger().Error("agent defect isolated", "agent_id", agentID, "err", err)
}

func (u UseCase) logger() *slog.Logger {
	if u.Log != nil {
		return u.Log
	}
	return slog.Default()
}
