package ports

import (
	"context"

	"agoraverse/internal/domain/econ"
)

// BatchApplier commits one handler's StateUpdate list. Implementations must
// apply updates in order and guarantee all-or-nothing semantics when run
// inside a TxManager transaction.
type BatchApplier interface {
	ApplyBatch(ctx context.Context, updates []econ.StateUpdate) error
}
