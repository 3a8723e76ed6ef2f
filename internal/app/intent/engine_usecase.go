package intent

import (
	"context"
	"errors"
	"fmt"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/app/shared/detrand"
	"agoraverse/internal/domain/econ"
)

var (
	ErrInvalidIntent     = errors.New("invalid intent")
	ErrUnknownIntentKind = errors.New("unknown intent kind")
	ErrBlockedWithEffect = errors.New("blocked outcome carried state updates")
)

type UseCase struct {
	TxManager  ports.TxManager
	Agents     ports.AgentRepository
	States     ports.AgentStateRepository
	Wallets    ports.WalletRepository
	Intents    ports.IntentRepository
	Events     ports.EventRepository
	Properties ports.PropertyRepository
	Businesses ports.BusinessRepository
	Applier    ports.BatchApplier
	Policy     econ.PatchPolicy

	Settlement ports.SettlementQueue
	TextGen    ports.TextGenerator
	Moderator  ports.Moderator
	Metrics    ports.TickMetrics
}

// Execute runs one intent through validate -> compute -> atomic apply. The
// whole effect, including the intent status transition and the audit events,
// commits in one transaction; a storage failure rolls everything back and
// marks the intent FAILED, distinct from a business-rule BLOCKED.
func (u UseCase) Execute(ctx context.Context, it econ.Intent) (Result, error) {
	if it.ID == "" || it.ActorID == "" {
		return Result{}, ErrInvalidIntent
	}
	if !isSupportedIntentKind(it.Kind) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownIntentKind, it.Kind)
	}
	handler := handlerRegistry()[it.Kind]

	var out Result
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		in, err := u.buildInput(txCtx, it)
		if err != nil {
			return err
		}

		outcome, err := u.runHandler(txCtx, handler, in)
		if err != nil {
			return err
		}

		if outcome.Status == econ.IntentBlocked {
			if len(outcome.Updates) != 0 {
				return ErrBlockedWithEffect
			}
			if err := u.persistOutcome(txCtx, it.ID, outcome); err != nil {
				return err
			}
			out = Result{IntentID: it.ID, Status: econ.IntentBlocked, Events: outcome.Events}
			return nil
		}

		if err := u.Policy.ValidateBatch(outcome.Updates); err != nil {
			return err
		}
		if err := u.Applier.ApplyBatch(txCtx, outcome.Updates); err != nil {
			return err
		}
		if err := u.persistOutcome(txCtx, it.ID, outcome); err != nil {
			return err
		}
		out = Result{IntentID: it.ID, Status: econ.IntentExecuted, Events: outcome.Events, Updates: outcome.Updates}
		return nil
	})
	if err != nil {
		// The transaction rolled back; nothing from this intent persisted.
		// Record the terminal FAILED status so resubmission is auditable.
		_ = u.Intents.SetStatus(ctx, it.ID, econ.IntentFailed)
		if u.Metrics != nil {
			u.Metrics.RecordIntent(econ.IntentFailed)
		}
		return Result{IntentID: it.ID, Status: econ.IntentFailed}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordIntent(out.Status)
	}
	return out, nil
}

func (u UseCase) buildInput(ctx context.Context, it econ.Intent) (*Input, error) {
	actor, err := u.Agents.GetByID(ctx, it.ActorID)
	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	state, err := u.States.GetByAgentID(ctx, it.ActorID)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	wallet, err := u.Wallets.GetByAgentID(ctx, it.ActorID)
	if err != nil {
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	return &Input{
		Intent: it,
		Actor:  actor,
		State:  state,
		Wallet: wallet,
		Tick:   it.Tick,
		Seed:   detrand.TickKey(it.ActorID, it.Tick, string(it.Kind)),
		View:   repoView{agents: u.Agents, states: u.States, wallets: u.Wallets, properties: u.Properties},
	}, nil
}

// runHandler applies the preconditions shared by every intent kind before
// dispatching. A frozen, dead, jailed, or otherwise occupied actor cannot
// act; the bundle comes back BLOCKED with a reason and no updates.
func (u UseCase) runHandler(ctx context.Context, handler Handler, in *Input) (Outcome, error) {
	if in.Actor.Dead {
		return blocked(in, "actor_dead"), nil
	}
	if in.Actor.Frozen {
		return blocked(in, "actor_frozen"), nil
	}
	if in.State.ActivityState == econ.ActivityJailed && !in.State.ActivityDone(in.Tick) {
		return blocked(in, "actor_jailed"), nil
	}
	return handler.Execute(ctx, u, in)
}

func (u UseCase) persistOutcome(ctx context.Context, intentID string, outcome Outcome) error {
	if err := u.Intents.SetStatus(ctx, intentID, outcome.Status); err != nil {
		return err
	}
	if len(outcome.Events) > 0 {
		return u.Events.Append(ctx, outcome.Events)
	}
	return nil
}

type repoView struct {
	agents     ports.AgentRepository
	states     ports.AgentStateRepository
	wallets    ports.WalletRepository
	properties ports.PropertyRepository
}

func (v repoView) Agent(ctx context.Context, id string) (econ.Agent, error) {
	return v.agents.GetByID(ctx, id)
}

func (v repoView) AgentState(ctx context.Context, id string) (econ.AgentState, error) {
	return v.states.GetByAgentID(ctx, id)
}

func (v repoView) Wallet(ctx context.Context, id string) (econ.Wallet, error) {
	return v.wallets.GetByAgentID(ctx, id)
}

func (v repoView) Property(ctx context.Context, id string) (econ.Property, error) {
	if v.properties == nil {
		return econ.Property{}, ports.ErrNotFound
	}
	return v.properties.GetByID(ctx, id)
}
