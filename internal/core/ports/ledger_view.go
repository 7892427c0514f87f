package ports

import (
	"context"

	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
)

// AccountStatus is the delta returned by the ledger-view peer for one poll:
// outputs that became spendable, ids that were observed spent, the cursor
// to resume from and the current ledger height.
type AccountStatus struct {
	NewOutputs   []domain.SpendableOutput
	SpentIDs     []domain.OutputID
	Cursor       uint64
	LedgerHeight uint64
}

// LedgerView is the interface of the ledger-view peer (mobilecoind). Its
// unavailability is a retryable condition, never fatal to the session.
type LedgerView interface {
	// GetAccountStatus returns all account changes since the given cursor.
	GetAccountStatus(ctx context.Context, cursor uint64) (*AccountStatus, error)
	// SubmitTransaction relays a signed transaction blob. A peer rejection
	// is returned as a *SubmitError; acceptance does not guarantee
	// finality, only relay.
	SubmitTransaction(ctx context.Context, blob []byte) error
}
