package domain

import (
	"time"

	"github.com/google/uuid"
)

// TxStatus represents the lifecycle of an in-flight submission.
type TxStatus int

const (
	// StatusSubmitted means the transaction was accepted for relay but is
	// not yet observed on the remote ledger.
	StatusSubmitted TxStatus = iota
	// StatusConfirmed means every output it consumes was observed spent.
	StatusConfirmed
	// StatusFailed means the submission was rejected by the peer.
	StatusFailed
	// StatusTimedOut means the submission outlived the timeout threshold
	// without being observed on the remote ledger.
	StatusTimedOut
)

func (s TxStatus) String() string {
	switch s {
	case StatusSubmitted:
		return "SUBMITTED"
	case StatusConfirmed:
		return "CONFIRMED"
	case StatusFailed:
		return "FAILED"
	case StatusTimedOut:
		return "TIMED_OUT"
	default:
		return "UNDEFINED"
	}
}

// PendingTransaction tracks one in-flight submission: the outputs it
// consumes, the destination, when it was submitted and its status.
type PendingTransaction struct {
	ID          uuid.UUID
	Amount      Amount
	Destination PublicAddress
	ConsumedIDs []OutputID
	SubmittedAt time.Time
	Status      TxStatus
}

// NewPendingTransaction returns a PendingTransaction in Submitted state for
// the given consumed outputs.
func NewPendingTransaction(
	amount Amount, destination PublicAddress, consumedIDs []OutputID,
) PendingTransaction {
	ids := make([]OutputID, len(consumedIDs))
	copy(ids, consumedIDs)
	return PendingTransaction{
		ID:          uuid.New(),
		Amount:      amount,
		Destination: destination,
		ConsumedIDs: ids,
		SubmittedAt: time.Now(),
		Status:      StatusSubmitted,
	}
}
