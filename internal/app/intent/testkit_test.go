package intent

import (
	"context"
	"errors"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubAgentRepo struct {
	byID map[string]econ.Agent
}

func (r *stubAgentRepo) GetByID(_ context.Context, agentID string) (econ.Agent, error) {
	a, ok := r.byID[agentID]
	if !ok {
		return econ.Agent{}, ports.ErrNotFound
	}
	return a, nil
}

func (r *stubAgentRepo) ListActive(context.Context) ([]econ.Agent, error) {
	out := make([]econ.Agent, 0, len(r.byID))
	for _, a := range r.byID {
		if !a.Frozen && !a.Dead {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAgentRepo) ListFrozen(context.Context) ([]econ.Agent, error) {
	out := make([]econ.Agent, 0)
	for _, a := range r.byID {
		if a.Frozen {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubStateRepo struct {
	byAgent map[string]econ.AgentState
}

func (r *stubStateRepo) GetByAgentID(_ context.Context, agentID string) (econ.AgentState, error) {
	s, ok := r.byAgent[agentID]
	if !ok {
		return econ.AgentState{}, ports.ErrNotFound
	}
	return s, nil
}

func (r *stubStateRepo) SaveWithVersion(_ context.Context, state econ.AgentState, expectedVersion int64) error {
	current, ok := r.byAgent[state.AgentID]
	if ok && current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byAgent[state.AgentID] = state
	return nil
}

type stubWalletRepo struct {
	byAgent map[string]econ.Wallet
}

func (r *stubWalletRepo) GetByAgentID(_ context.Context, agentID string) (econ.Wallet, error) {
	w, ok := r.byAgent[agentID]
	if !ok {
		return econ.Wallet{}, ports.ErrNotFound
	}
	return w, nil
}

type stubIntentRepo struct {
	saved    map[string]econ.Intent
	statuses map[string]econ.IntentStatus
}

func newStubIntentRepo() *stubIntentRepo {
	return &stubIntentRepo{saved: map[string]econ.Intent{}, statuses: map[string]econ.IntentStatus{}}
}

func (r *stubIntentRepo) Save(_ context.Context, it econ.Intent) error {
	r.saved[it.ID] = it
	return nil
}

func (r *stubIntentRepo) SetStatus(_ context.Context, intentID string, status econ.IntentStatus) error {
	r.statuses[intentID] = status
	return nil
}

func (r *stubIntentRepo) GetByID(_ context.Context, intentID string) (econ.Intent, error) {
	it, ok := r.saved[intentID]
	if !ok {
		return econ.Intent{}, ports.ErrNotFound
	}
	return it, nil
}

type stubEventRepo struct {
	events []econ.Event
}

func (r *stubEventRepo) Append(_ context.Context, events []econ.Event) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByActorID(_ context.Context, actorID string, limit int) ([]econ.Event, error) {
	out := []econ.Event{}
	for _, e := range r.events {
		if e.ActorID == actorID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubEventRepo) ListRecentByType(_ context.Context, eventType string, sinceTick int64) ([]econ.Event, error) {
	out := []econ.Event{}
	for _, e := range r.events {
		if e.Type == eventType && e.Tick >= sinceTick {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubPropertyRepo struct {
	byID map[string]econ.Property
}

func (r *stubPropertyRepo) GetByID(_ context.Context, propertyID string) (econ.Property, error) {
	p, ok := r.byID[propertyID]
	if !ok {
		return econ.Property{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *stubPropertyRepo) ListByOwnerID(_ context.Context, ownerID string) ([]econ.Property, error) {
	out := []econ.Property{}
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubBusinessRepo struct {
	byOwner map[string][]econ.Business
}

func (r *stubBusinessRepo) ListByOwnerID(_ context.Context, ownerID string) ([]econ.Business, error) {
	return r.byOwner[ownerID], nil
}

type recordingApplier struct {
	batches [][]econ.StateUpdate
	err     error
}

func (a *recordingApplier) ApplyBatch(_ context.Context, updates []econ.StateUpdate) error {
	if a.err != nil {
		return a.err
	}
	a.batches = append(a.batches, updates)
	return nil
}

type stubSettlementQueue struct {
	jobs []string
}

func (q *stubSettlementQueue) Enqueue(fromActor, toAddress string, amount float64, reason string) {
	q.jobs = append(q.jobs, fromActor+"->"+toAddress+":"+reason)
}

type stubModerator struct {
	verdict ports.ModerationVerdict
	err     error
}

func (m stubModerator) Review(context.Context, string) (ports.ModerationVerdict, error) {
	return m.verdict, m.err
}

type stubTextGen struct {
	text string
	err  error
}

func (g stubTextGen) Generate(context.Context, string) (string, error) {
	return g.text, g.err
}

type stubMetrics struct {
	intents map[econ.IntentStatus]int
}

func (m *stubMetrics) RecordIntent(status econ.IntentStatus) {
	if m.intents == nil {
		m.intents = map[econ.IntentStatus]int{}
	}
	m.intents[status]++
}

func (m *stubMetrics) RecordSkillSkip(string)              {}
func (m *stubMetrics) RecordSkillTruncation(string, int)   {}
func (m *stubMetrics) RecordAgentDefect(string)            {}
func (m *stubMetrics) RecordFreeze(econ.FreezeReason)      {}
func (m *stubMetrics) RecordRevival()                      {}

var errStorageDown = errors.New("storage down")

func testUseCase() (UseCase, *stubAgentRepo, *stubStateRepo, *stubWalletRepo, *stubIntentRepo, *stubEventRepo, *recordingApplier) {
	agents := &stubAgentRepo{byID: map[string]econ.Agent{
		"agent-1": {ID: "agent-1", Name: "Ada", CityID: "athens", Reputation: 50, Version: 1},
		"agent-2": {ID: "agent-2", Name: "Bo", CityID: "athens", Reputation: 40, Version: 1},
		"agent-3": {ID: "agent-3", Name: "Cy", CityID: "sparta", Reputation: 40, Version: 1},
	}}
	states := &stubStateRepo{byAgent: map[string]econ.AgentState{
		"agent-1": {
			AgentID:     "agent-1",
			Needs:       econ.Needs{Health: 80, Energy: 60, Hunger: 50, Social: 50, Fun: 50, Purpose: 50},
			HousingTier: econ.HousingApartment,
			JobType:     econ.JobPublic,
			CityID:      "athens",
			ActivityState: econ.ActivityIdle,
			Version:     1,
		},
		"agent-2": {
			AgentID:     "agent-2",
			Needs:       econ.Needs{Health: 70, Energy: 50, Hunger: 50, Social: 50, Fun: 50, Purpose: 50},
			HousingTier: econ.HousingShelter,
			JobType:     econ.JobPrivate,
			CityID:      "athens",
			ActivityState: econ.ActivityIdle,
			Version:     1,
		},
		"agent-3": {
			AgentID:     "agent-3",
			Needs:       econ.Needs{Health: 70, Energy: 50, Hunger: 50, Social: 50, Fun: 50, Purpose: 50},
			HousingTier: econ.HousingShelter,
			JobType:     econ.JobNone,
			CityID:      "sparta",
			ActivityState: econ.ActivityIdle,
			Version:     1,
		},
	}}
	wallets := &stubWalletRepo{byAgent: map[string]econ.Wallet{
		"agent-1": {AgentID: "agent-1", Balance: 500, Version: 1},
		"agent-2": {AgentID: "agent-2", Balance: 20, Version: 1},
		"agent-3": {AgentID: "agent-3", Balance: 0, Version: 1},
	}}
	intents := newStubIntentRepo()
	events := &stubEventRepo{}
	applier := &recordingApplier{}

	uc := UseCase{
		TxManager:  stubTxManager{},
		Agents:     agents,
		States:     states,
		Wallets:    wallets,
		Intents:    intents,
		Events:     events,
		Properties: &stubPropertyRepo{byID: map[string]econ.Property{}},
		Businesses: &stubBusinessRepo{byOwner: map[string][]econ.Business{}},
		Applier:    applier,
		Policy:     econ.DefaultPatchPolicy(),
		Settlement: &stubSettlementQueue{},
	}
	return uc, agents, states, wallets, intents, events, applier
}
