package intent

import (
	"context"
	"errors"

	"agoraverse/internal/app/ports"
	"agoraverse/internal/domain/econ"
)

type propertyTransferHandler struct{}

func (propertyTransferHandler) Execute(ctx context.Context, _ UseCase, in *Input) (Outcome, error) {
	propertyID := paramString(in, "property_id")
	to := paramString(in, "to")
	if propertyID == "" || to == "" || to == in.Actor.ID {
		return blocked(in, "invalid_transfer"), nil
	}

	prop, err := in.View.Property(ctx, propertyID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return blocked(in, "property_missing"), nil
		}
		return Outcome{}, err
	}
	if prop.OwnerID != in.Actor.ID {
		return blocked(in, "not_owner"), nil
	}

	price := paramFloat(in, "price")
	if price < 0 {
		return blocked(in, "invalid_price"), nil
	}

	// Order matters: the tenancy clears before ownership moves so the new
	// owner never inherits a stale tenant row.
	updates := []econ.StateUpdate{
		{
			Table:    econ.TableProperties,
			Op:       econ.OpUpdate,
			Selector: map[string]any{"id": propertyID},
			Patch:    map[string]any{"tenant": ""},
		},
		{
			Table:    econ.TableProperties,
			Op:       econ.OpUpdate,
			Selector: map[string]any{"id": propertyID},
			Patch:    map[string]any{"owner_id": to},
		},
	}
	// A priced sale settles both sides in the same batch: the buyer's debit
	// and the seller's credit commit together or not at all.
	if price > 0 {
		buyerWallet, err := in.View.Wallet(ctx, to)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return blocked(in, "buyer_missing"), nil
			}
			return Outcome{}, err
		}
		if buyerWallet.Balance < price {
			return blocked(in, "buyer_insufficient_funds"), nil
		}
		updates = append(updates,
			walletAdjust(to, -price),
			walletAdjust(in.Actor.ID, price),
		)
	}

	return Outcome{
		Updates: updates,
		Events: []econ.Event{newEvent(in, econ.EventPropertyTransferred, propertyID, econ.OutcomeSuccess, map[string]any{
			"to":    to,
			"price": price,
		})},
		Status: econ.IntentExecuted,
	}, nil
}

type payRentHandler struct{}

func (payRentHandler) Execute(_ context.Context, uc UseCase, in *Input) (Outcome, error) {
	amount := paramFloat(in, "amount")
	if amount <= 0 {
		amount = econ.DefaultRentByTier[in.State.HousingTier]
	}
	if amount <= 0 {
		return blocked(in, "no_rent_due"), nil
	}
	if in.Wallet.Balance < amount {
		return blocked(in, "insufficient_funds"), nil
	}
	if uc.Settlement == nil {
		// The vault credit cannot be confirmed without the settlement layer;
		// there is no safe fallback for a fee transfer.
		return blocked(in, "settlement_unavailable"), nil
	}

	uc.Settlement.Enqueue(in.Actor.ID, "vault:"+in.State.CityID, amount, "rent")

	return Outcome{
		Updates: []econ.StateUpdate{walletAdjust(in.Actor.ID, -amount)},
		Events: []econ.Event{newEvent(in, econ.EventRentPaid, "vault:"+in.State.CityID, econ.OutcomeSuccess, map[string]any{
			"amount":       amount,
			"housing_tier": string(in.State.HousingTier),
		})},
		Status: econ.IntentExecuted,
	}, nil
}
