package intent

import (
	"context"
	"reflect"
	"testing"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

func TestFightHandler_DeterministicDamage(t *testing.T) {
	uc, _, _, _, _, _, _ := testUseCase()
	it := econ.Intent{
		ID: "f-1", ActorID: "agent-1", Kind: econ.IntentFight,
		Params: map[string]any{"target_id": "agent-2"}, Tick: 77,
	}

	first, err := uc.Execute(context.Background(), it)
	if err != nil {
		t.Fatalf("first fight: %v", err)
	}
	uc2, _, _, _, _, _, _ := testUseCase()
	second, err := uc2.Execute(context.Background(), it)
	if err != nil {
		t.Fatalf("second fight: %v", err)
	}

	if !reflect.DeepEqual(first.Updates, second.Updates) {
		t.Fatalf("same actor/tick/kind must deal identical damage:\n%+v\n%+v", first.Updates, second.Updates)
	}
	if first.Events[0].Payload["damage"].(int) < econ.FightDamageMin {
		t.Fatalf("damage below minimum: %v", first.Events[0].Payload["damage"])
	}
}

func TestFightHandler_CrossCityBlocked(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "f-2", ActorID: "agent-1", Kind: econ.IntentFight,
		Params: map[string]any{"target_id": "agent-3"}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked {
		t.Fatalf("cross-city fight should be BLOCKED, got %s", result.Status)
	}
	if events.events[0].Payload["reason"] != "cross_city" {
		t.Fatalf("expected cross_city, got %v", events.events[0].Payload["reason"])
	}
}

func TestFightHandler_MissingTargetBlocked(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "f-3", ActorID: "agent-1", Kind: econ.IntentFight,
		Params: map[string]any{"target_id": "nobody"}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "target_missing" {
		t.Fatalf("expected target_missing BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestCrimeHandler_OutcomeFromSeed(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "c-1", ActorID: "agent-2", Kind: econ.IntentCommitCrime,
		Params: map[string]any{"method": "burglary"}, Tick: 9,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("crime intent should EXECUTE (win or lose), got %s", result.Status)
	}
	evt := events.events[0]
	if evt.Type != econ.EventCrimeCommitted {
		t.Fatalf("expected crime event, got %s", evt.Type)
	}
	// A failed job only costs reputation; a successful one also loots.
	if evt.Outcome == econ.OutcomeSuccess {
		if len(result.Updates) != 2 {
			t.Fatalf("successful crime should loot and hit reputation, got %+v", result.Updates)
		}
	} else if len(result.Updates) != 1 {
		t.Fatalf("failed crime should only hit reputation, got %+v", result.Updates)
	}

	// Replaying the same (actor, tick, kind) reproduces the same verdict.
	uc2, _, _, _, _, events2, _ := testUseCase()
	if _, err := uc2.Execute(context.Background(), econ.Intent{
		ID: "c-1b", ActorID: "agent-2", Kind: econ.IntentCommitCrime,
		Params: map[string]any{"method": "burglary"}, Tick: 9,
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if events2.events[0].Outcome != evt.Outcome {
		t.Fatalf("crime verdict not reproducible: %s vs %s", evt.Outcome, events2.events[0].Outcome)
	}
}

func TestArrestHandler_RequiresPublicJob(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	// agent-2 holds a private job.
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "a-1", ActorID: "agent-2", Kind: econ.IntentArrest,
		Params: map[string]any{"target_id": "agent-1"}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "not_authorized" {
		t.Fatalf("private employee must not arrest, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestArrestHandler_JailsTarget(t *testing.T) {
	uc, _, _, _, _, _, applier := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "a-2", ActorID: "agent-1", Kind: econ.IntentArrest,
		Params: map[string]any{"target_id": "agent-2"}, Tick: 10,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("arrest should execute, got %s", result.Status)
	}
	patch := applier.batches[0][0].Patch
	if patch["activity_state"] != string(econ.ActivityJailed) {
		t.Fatalf("target should be JAILED, got %v", patch["activity_state"])
	}
	if patch["activity_end_tick"] != int64(10+econ.ArrestJailTicks) {
		t.Fatalf("jail term wrong: %v", patch["activity_end_tick"])
	}
}

func TestVoteHandler_InvalidChoiceBlocked(t *testing.T) {
	uc, _, _, _, _, _, _ := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "v-1", ActorID: "agent-1", Kind: econ.IntentVote,
		Params: map[string]any{"proposal_id": "prop-1", "choice": "maybe"}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked {
		t.Fatalf("invalid choice should be BLOCKED, got %s", result.Status)
	}
}

func TestVoteHandler_CreatesBallot(t *testing.T) {
	uc, _, _, _, _, _, applier := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "v-2", ActorID: "agent-1", Kind: econ.IntentVote,
		Params: map[string]any{"proposal_id": "prop-1", "choice": "yea"}, Tick: 3,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("vote should execute, got %s", result.Status)
	}
	ballot := applier.batches[0][0]
	if ballot.Table != econ.TableVotes || ballot.Op != econ.OpCreate {
		t.Fatalf("first update should create a ballot, got %+v", ballot)
	}
	if ballot.Patch["choice"] != "yea" || ballot.Patch["voter_id"] != "agent-1" {
		t.Fatalf("ballot content wrong: %+v", ballot.Patch)
	}
}

func TestAgoraHandler_FlagEscalatesInSameBatch(t *testing.T) {
	uc, _, _, _, _, _, applier := testUseCase()
	uc.TextGen = stubTextGen{text: "A calm note about rent prices."}
	uc.Moderator = stubModerator{verdict: ports.ModerationVerdict{
		Action: ports.ModerationFlag, Classification: "rant", Reasoning: "heated",
	}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "p-1", ActorID: "agent-1", Kind: econ.IntentPostAgora,
		Params: map[string]any{"topic": "rent prices"}, Tick: 4,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("flagged post should still execute, got %s", result.Status)
	}
	batch := applier.batches[0]
	if len(batch) != 3 {
		t.Fatalf("flag escalation should ride the same batch (post, needs, log), got %d updates", len(batch))
	}
	last := batch[len(batch)-1]
	if last.Table != econ.TableModerationLogs || last.Op != econ.OpCreate {
		t.Fatalf("expected moderation log create, got %+v", last)
	}
}

func TestAgoraHandler_BlockVerdictBlocksIntent(t *testing.T) {
	uc, _, _, _, _, events, applier := testUseCase()
	uc.Moderator = stubModerator{verdict: ports.ModerationVerdict{Action: ports.ModerationBlock}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "p-2", ActorID: "agent-1", Kind: econ.IntentPostAgora,
		Params: map[string]any{"topic": "secrets"}, Tick: 4,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || len(applier.batches) != 0 {
		t.Fatalf("blocked post must persist nothing, got %s with %d batches", result.Status, len(applier.batches))
	}
	if events.events[0].Payload["reason"] != "moderation_blocked" {
		t.Fatalf("expected moderation_blocked, got %v", events.events[0].Payload["reason"])
	}
}

func TestCrime_BungledJobExecutesWithFailOutcome(t *testing.T) {
	// The intent status reports whether the pipeline committed; the event
	// outcome reports how the act went in-world. A bungled job commits its
	// reputation cost, so it is EXECUTED with a FAIL outcome, never FAILED.
	failTick := int64(-1)
	for tick := int64(1); tick <= 2000; tick++ {
		seed := detrand.TickKey("agent-1", tick, string(econ.IntentCommitCrime))
		if !detrand.Chance(seed, econ.CrimeBaseSuccess) {
			failTick = tick
			break
		}
	}
	if failTick < 0 {
		t.Fatalf("no losing draw in 2000 ticks")
	}

	uc, _, _, _, _, events, applier := testUseCase()
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "c-9", ActorID: "agent-1", Kind: econ.IntentCommitCrime,
		Params: map[string]any{"method": "fraud"}, Tick: failTick,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("bungled job must still commit, got %s", result.Status)
	}
	if events.events[0].Type != econ.EventCrimeCommitted || events.events[0].Outcome != econ.OutcomeFail {
		t.Fatalf("event must carry the in-world FAIL, got %+v", events.events[0])
	}
	batch := applier.batches[0]
	if len(batch) != 1 || batch[0].Table != econ.TableAgents {
		t.Fatalf("a bungled job costs reputation only, got %+v", batch)
	}
}

func TestPropertyTransfer_NotOwnerBlocked(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	uc.Properties = &stubPropertyRepo{byID: map[string]econ.Property{
		"prop-9": {ID: "prop-9", OwnerID: "agent-2", CityID: "athens", Value: 100},
	}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "t-1", ActorID: "agent-1", Kind: econ.IntentTransferProperty,
		Params: map[string]any{"property_id": "prop-9", "to": "city:athens", "price": 100.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "not_owner" {
		t.Fatalf("expected not_owner BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestPropertyTransfer_ClearsTenancyBeforeOwnership(t *testing.T) {
	uc, _, _, _, _, _, applier := testUseCase()
	uc.Properties = &stubPropertyRepo{byID: map[string]econ.Property{
		"prop-1": {ID: "prop-1", OwnerID: "agent-1", CityID: "athens", Value: 100, Tenant: "agent-2"},
	}}

	// Surrender to the city: no price, so no wallet legs.
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "t-2", ActorID: "agent-1", Kind: econ.IntentTransferProperty,
		Params: map[string]any{"property_id": "prop-1", "to": "city:athens", "price": 0.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("transfer should execute, got %s", result.Status)
	}
	batch := applier.batches[0]
	if len(batch) != 2 {
		t.Fatalf("free transfer must not touch wallets, got %d updates", len(batch))
	}
	if batch[0].Patch["tenant"] != "" {
		t.Fatalf("first update must clear the tenancy, got %+v", batch[0])
	}
	if batch[1].Patch["owner_id"] != "city:athens" {
		t.Fatalf("second update must move ownership, got %+v", batch[1])
	}
}

func TestPropertyTransfer_PricedSaleDebitsBuyerAndCreditsSeller(t *testing.T) {
	uc, _, _, _, _, _, applier := testUseCase()
	uc.Properties = &stubPropertyRepo{byID: map[string]econ.Property{
		"prop-1": {ID: "prop-1", OwnerID: "agent-1", CityID: "athens", Value: 100},
	}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "t-3", ActorID: "agent-1", Kind: econ.IntentTransferProperty,
		Params: map[string]any{"property_id": "prop-1", "to": "agent-2", "price": 10.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("sale should execute, got %s", result.Status)
	}
	batch := applier.batches[0]
	if len(batch) != 4 {
		t.Fatalf("sale must carry tenancy, ownership and both wallet legs, got %d updates", len(batch))
	}
	debit := batch[2]
	if debit.Selector["agent_id"] != "agent-2" || debit.Patch["balance"].(econ.Increment).By != -10 {
		t.Fatalf("buyer must be debited the price, got %+v", debit)
	}
	credit := batch[3]
	if credit.Selector["agent_id"] != "agent-1" || credit.Patch["balance"].(econ.Increment).By != 10 {
		t.Fatalf("seller must be credited the price, got %+v", credit)
	}
}

func TestPropertyTransfer_BuyerCannotAffordBlocked(t *testing.T) {
	uc, _, _, _, _, events, applier := testUseCase()
	uc.Properties = &stubPropertyRepo{byID: map[string]econ.Property{
		"prop-1": {ID: "prop-1", OwnerID: "agent-1", CityID: "athens", Value: 100},
	}}

	// agent-2 holds 20; the asking price is beyond it.
	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "t-4", ActorID: "agent-1", Kind: econ.IntentTransferProperty,
		Params: map[string]any{"property_id": "prop-1", "to": "agent-2", "price": 100.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || len(applier.batches) != 0 {
		t.Fatalf("unfunded sale must be BLOCKED with no updates, got %s", result.Status)
	}
	if events.events[0].Payload["reason"] != "buyer_insufficient_funds" {
		t.Fatalf("expected buyer_insufficient_funds, got %v", events.events[0].Payload)
	}
}

func TestPropertyTransfer_UnknownBuyerWalletBlocked(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	uc.Properties = &stubPropertyRepo{byID: map[string]econ.Property{
		"prop-1": {ID: "prop-1", OwnerID: "agent-1", CityID: "athens", Value: 100},
	}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "t-5", ActorID: "agent-1", Kind: econ.IntentTransferProperty,
		Params: map[string]any{"property_id": "prop-1", "to": "ghost", "price": 10.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "buyer_missing" {
		t.Fatalf("priced sale to a walletless buyer must be BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestPayRent_NoSettlementBlocks(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	uc.Settlement = nil

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "r-1", ActorID: "agent-1", Kind: econ.IntentPayRent,
		Params: map[string]any{"amount": 6.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "settlement_unavailable" {
		t.Fatalf("unconfirmable fee transfer must be BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestPayRent_EnqueuesVaultTransfer(t *testing.T) {
	uc, _, _, _, _, _, _ := testUseCase()
	queue := &stubSettlementQueue{}
	uc.Settlement = queue

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "r-2", ActorID: "agent-1", Kind: econ.IntentPayRent,
		Params: map[string]any{"amount": 6.0}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentExecuted {
		t.Fatalf("rent should execute, got %s", result.Status)
	}
	if len(queue.jobs) != 1 || queue.jobs[0] != "agent-1->vault:athens:rent" {
		t.Fatalf("expected one vault transfer job, got %v", queue.jobs)
	}
}

func TestFoundBusiness_SecondBusinessBlocked(t *testing.T) {
	uc, _, _, _, _, events, _ := testUseCase()
	uc.Businesses = &stubBusinessRepo{byOwner: map[string][]econ.Business{
		"agent-1": {{ID: "biz-1", OwnerID: "agent-1"}},
	}}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "b-1", ActorID: "agent-1", Kind: econ.IntentFoundBusiness,
		Params: map[string]any{"kind": "tavern"}, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "already_owns_business" {
		t.Fatalf("second business must be BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}

func TestEatHandler_InsufficientFundsBlocked(t *testing.T) {
	uc, _, _, wallets, _, events, _ := testUseCase()
	wallets.byAgent["agent-1"] = econ.Wallet{AgentID: "agent-1", Balance: 1}

	result, err := uc.Execute(context.Background(), econ.Intent{
		ID: "e-1", ActorID: "agent-1", Kind: econ.IntentEat, Tick: 1,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Status != econ.IntentBlocked || events.events[0].Payload["reason"] != "insufficient_funds" {
		t.Fatalf("expected insufficient_funds BLOCKED, got %s %v", result.Status, events.events[0].Payload)
	}
}
