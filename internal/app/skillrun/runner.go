package skillrun

import (
	"fmt"
	"sync"

	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

// RunResult is one agent's candidate set for one tick, plus the observability
// trail: which skills ran, which were skipped on cooldown, and which
// over-produced.
type RunResult struct {
	Candidates []econ.Candidate
	Ran        []string
	Skipped    []string
	Truncated  map[string]int
}

// Runner owns the cooldown ledger and walks the registry for one agent at a
// time. The ledger is an explicit keyed map guarded by a mutex, not a
// package-level global; callers share one Runner per world.
type Runner struct {
	registry []SkillSpec

	mu      sync.Mutex
	lastRun map[string]int64
}

func NewRunner(registry []SkillSpec) *Runner {
	return &Runner{
		registry: registry,
		lastRun:  make(map[string]int64),
	}
}

func cooldownKey(agentID, skill string) string {
	return agentID + "|" + skill
}

// Run converts one agent's (urgencies, world context) into a bounded set of
// candidate intents across all registered skills. An evaluator error is a
// defect in a skill module and propagates; the tick layer isolates it to the
// agent's slice of the tick.
func (r *Runner) Run(ac AgentContext) (RunResult, error) {
	result := RunResult{Truncated: map[string]int{}}

	for _, spec := range r.registry {
		if spec.CooldownTicks > 0 && r.onCooldown(ac.Agent.ID, spec.Name, ac.Tick, spec.CooldownTicks) {
			result.Skipped = append(result.Skipped, spec.Name)
			continue
		}

		rng := detrand.New(detrand.TickKey(ac.Agent.ID, ac.Tick, spec.Name))
		candidates, err := spec.Evaluate(ac, rng)
		if err != nil {
			return RunResult{}, fmt.Errorf("skill %s: %w", spec.Name, err)
		}

		if spec.MaxCandidates > 0 && len(candidates) > spec.MaxCandidates {
			result.Truncated[spec.Name] = len(candidates) - spec.MaxCandidates
			candidates = candidates[:spec.MaxCandidates]
		}
		for i := range candidates {
			candidates[i].Skill = spec.Name
		}
		result.Candidates = append(result.Candidates, candidates...)

		result.Ran = append(result.Ran, spec.Name)
		r.recordRun(ac.Agent.ID, spec.Name, ac.Tick)
	}

	return result, nil
}

func (r *Runner) onCooldown(agentID, skill string, tick, cooldown int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	last, ok := r.lastRun[cooldownKey(agentID, skill)]
	return ok && tick-last < cooldown
}

func (r *Runner) recordRun(agentID, skill string, tick int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun[cooldownKey(agentID, skill)] = tick
}

// LastRunTick exposes the ledger for inspection and tests.
func (r *Runner) LastRunTick(agentID, skill string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tick, ok := r.lastRun[cooldownKey(agentID, skill)]
	return tick, ok
}

// Seed primes the ledger, typically from a persisted copy at startup so
// cooldown windows survive restarts.
func (r *Runner) Seed(agentID, skill string, tick int64) {
	r.recordRun(agentID, skill, tick)
}
