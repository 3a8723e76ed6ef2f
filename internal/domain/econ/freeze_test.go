package econ

import "testing"

func collapsedState() AgentState {
	return AgentState{
		AgentID:     "agent-1",
		HousingTier: HousingStreet,
		Needs:       Needs{Health: 5, Energy: 5, Hunger: 5, Social: 5, Fun: 5, Purpose: 5},
	}
}

func TestFreezeCheck_EconomicCollapse(t *testing.T) {
	reason, frozen := FreezeCheck(collapsedState(), Wallet{Balance: 0})
	if !frozen || reason != FreezeEconomic {
		t.Fatalf("expected economic_freeze, got frozen=%v reason=%q", frozen, reason)
	}
}

func TestFreezeCheck_OneNeedAboveCeilingDoesNotFreeze(t *testing.T) {
	state := collapsedState()
	state.Needs.Fun = 6
	if reason, frozen := FreezeCheck(state, Wallet{Balance: 0}); frozen && reason == FreezeEconomic {
		t.Fatalf("one need above the ceiling must not trigger economic freeze, got %q", reason)
	}
}

func TestFreezeCheck_NonZeroBalanceDoesNotFreezeEconomically(t *testing.T) {
	if _, frozen := FreezeCheck(collapsedState(), Wallet{Balance: 0.01}); frozen {
		t.Fatalf("positive balance must not trigger economic freeze")
	}
}

func TestFreezeCheck_NonStreetTierDoesNotFreezeEconomically(t *testing.T) {
	state := collapsedState()
	state.HousingTier = HousingShelter
	if _, frozen := FreezeCheck(state, Wallet{Balance: 0}); frozen {
		t.Fatalf("non-street housing must not trigger economic freeze")
	}
}

func TestFreezeCheck_HealthCollapse(t *testing.T) {
	state := AgentState{
		AgentID:     "agent-2",
		HousingTier: HousingHouse,
		Needs:       Needs{Health: 0, Energy: 50, Hunger: 50, Social: 50, Fun: 50, Purpose: 50},
	}
	reason, frozen := FreezeCheck(state, Wallet{Balance: 500})
	if !frozen || reason != FreezeHealth {
		t.Fatalf("expected health_collapse, got frozen=%v reason=%q", frozen, reason)
	}
}

func TestFreezeCheck_EconomicReasonWinsWhenBothMatch(t *testing.T) {
	state := collapsedState()
	state.Needs.Health = 0
	reason, frozen := FreezeCheck(state, Wallet{Balance: 0})
	if !frozen || reason != FreezeEconomic {
		t.Fatalf("economic reason should win, got frozen=%v reason=%q", frozen, reason)
	}
}

func TestRevivalNeeds_Baselines(t *testing.T) {
	n := RevivalNeeds()
	if n.Health != 30 || n.Energy != 30 || n.Hunger != 30 {
		t.Fatalf("vital baselines must be 30, got %+v", n)
	}
	if n.Social != 20 || n.Fun != 20 || n.Purpose != 20 {
		t.Fatalf("social baselines must be 20, got %+v", n)
	}
}
