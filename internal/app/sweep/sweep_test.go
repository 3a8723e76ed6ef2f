package sweep

import (
	"context"
	"testing"

	"agoraverse/internal/adapter/repo/memory"
	"agoraverse/internal/domain/econ"
)

type recordingQueue struct {
	jobs []string
}

func (q *recordingQueue) Enqueue(fromActor, toAddress string, amount float64, reason string) {
	q.jobs = append(q.jobs, fromActor+"->"+toAddress+":"+reason)
}

func seedAgent(store *memory.Store, id string, needs econ.Needs, balance float64) {
	store.SeedAgent(econ.Agent{ID: id, CityID: "athens", Version: 1})
	store.SeedState(econ.AgentState{
		AgentID:       id,
		Needs:         needs,
		HousingTier:   econ.HousingShelter,
		ActivityState: econ.ActivityIdle,
		CityID:        "athens",
		Version:       1,
	})
	store.SeedWallet(econ.Wallet{AgentID: id, Balance: balance, Version: 1})
}

func TestDecaySweep_DrainsNeedsAndClampsAtZero(t *testing.T) {
	store := memory.NewStore()
	seedAgent(store, "a1", econ.Needs{Health: 80, Energy: 50, Hunger: 0, Social: 30, Fun: 30, Purpose: 30}, 10)

	sweep := DecaySweep{
		TxManager: memory.NewTxManager(store),
		Agents:    memory.NewAgentRepo(store),
		Events:    memory.NewEventRepo(store),
		Applier:   memory.NewApplier(store),
	}
	report, err := sweep.Run(context.Background(), 5)
	if err != nil {
		t.Fatalf("decay: %v", err)
	}
	if report.Decayed != 1 {
		t.Fatalf("expected one agent decayed, got %d", report.Decayed)
	}

	state, _ := memory.NewAgentStateRepo(store).GetByAgentID(context.Background(), "a1")
	if state.Needs.Energy != 50-econ.DecayEnergyPerTick {
		t.Fatalf("energy = %d, want %d", state.Needs.Energy, 50-econ.DecayEnergyPerTick)
	}
	if state.Needs.Hunger != 0 {
		t.Fatalf("hunger must clamp at zero, got %d", state.Needs.Hunger)
	}
	if state.Needs.Health != 80 {
		t.Fatalf("health must not decay, got %d", state.Needs.Health)
	}

	events, _ := memory.NewEventRepo(store).ListByActorID(context.Background(), "a1", 0)
	if len(events) != 1 || events[0].Type != econ.EventNeedsDecayed {
		t.Fatalf("expected one EVENT_NEEDS_DECAYED, got %+v", events)
	}
}

func TestTaxSweep_DebitsAndEnqueuesSettlement(t *testing.T) {
	store := memory.NewStore()
	seedAgent(store, "rich", econ.Needs{Health: 80, Energy: 80, Hunger: 80, Social: 80, Fun: 80, Purpose: 80}, 100)
	seedAgent(store, "broke", econ.Needs{Health: 80, Energy: 80, Hunger: 80, Social: 80, Fun: 80, Purpose: 80}, 0)

	queue := &recordingQueue{}
	sweep := TaxSweep{
		TxManager:  memory.NewTxManager(store),
		Agents:     memory.NewAgentRepo(store),
		Wallets:    memory.NewWalletRepo(store),
		Events:     memory.NewEventRepo(store),
		Applier:    memory.NewApplier(store),
		Settlement: queue,
		TaxRate:    econ.DefaultTaxRate,
	}
	report, err := sweep.Run(context.Background(), 24)
	if err != nil {
		t.Fatalf("tax: %v", err)
	}
	if report.Taxed != 1 {
		t.Fatalf("only the funded agent should be taxed, got %d", report.Taxed)
	}
	if report.Collected != 100*econ.DefaultTaxRate {
		t.Fatalf("collected = %v, want %v", report.Collected, 100*econ.DefaultTaxRate)
	}

	wallet, _ := memory.NewWalletRepo(store).GetByAgentID(context.Background(), "rich")
	if wallet.Balance != 100-100*econ.DefaultTaxRate {
		t.Fatalf("balance = %v after tax", wallet.Balance)
	}

	if len(queue.jobs) != 1 || queue.jobs[0] != "rich->vault:athens:daily_tax" {
		t.Fatalf("expected one settlement job, got %v", queue.jobs)
	}

	events, _ := memory.NewEventRepo(store).ListByActorID(context.Background(), "rich", 0)
	if len(events) != 1 || events[0].Type != econ.EventTaxCollected {
		t.Fatalf("expected one EVENT_TAX_COLLECTED, got %+v", events)
	}
}
