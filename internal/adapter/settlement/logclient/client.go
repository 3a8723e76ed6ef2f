package logclient

import (
	"context"
	"log/slog"
)

// Client is the settlement sink used when no external settlement backend is
// configured: transfers are acknowledged and logged for reconciliation.
type Client struct {
	Log *slog.Logger
}

func New(log *slog.Logger) Client {
	if log == nil {
		log = slog.Default()
	}
	return Client{Log: log}
}

func (c Client) Transfer(_ context.Context, fromActor, toAddress string, amount float64, reason string) error {
	c.Log.Info("settlement transfer",
		"from", fromActor, "to", toAddress, "amount", amount, "reason", reason)
	return nil
}
