package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type pendingEntry struct {
	tx        PendingTransaction
	remaining map[OutputID]struct{}
}

// PendingBook tracks the in-flight transactions of the session. Entries are
// added by the transaction builder at submission time and removed once they
// reach a terminal status, driven by the ledger sync worker. Safe for
// concurrent use.
type PendingBook struct {
	mtx     sync.RWMutex
	entries map[uuid.UUID]*pendingEntry
}

// NewPendingBook returns an empty book.
func NewPendingBook() *PendingBook {
	return &PendingBook{entries: map[uuid.UUID]*pendingEntry{}}
}

// Add starts tracking the given transaction.
func (b *PendingBook) Add(tx PendingTransaction) {
	remaining := make(map[OutputID]struct{}, len(tx.ConsumedIDs))
	for _, id := range tx.ConsumedIDs {
		remaining[id] = struct{}{}
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.entries[tx.ID] = &pendingEntry{tx: tx, remaining: remaining}
}

// List returns a snapshot of the tracked transactions.
func (b *PendingBook) List() []PendingTransaction {
	b.mtx.RLock()
	defer b.mtx.RUnlock()

	list := make([]PendingTransaction, 0, len(b.entries))
	for _, entry := range b.entries {
		list = append(list, entry.tx)
	}
	return list
}

// Len returns the number of tracked transactions.
func (b *PendingBook) Len() int {
	b.mtx.RLock()
	defer b.mtx.RUnlock()
	return len(b.entries)
}

// MarkSpent records that the given output ids were observed spent on the
// remote ledger. Transactions whose consumed outputs are all observed spent
// transition to Confirmed, stop being tracked and are returned.
func (b *PendingBook) MarkSpent(spentIDs []OutputID) []PendingTransaction {
	if len(spentIDs) == 0 {
		return nil
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	confirmed := make([]PendingTransaction, 0)
	for id, entry := range b.entries {
		for _, spent := range spentIDs {
			delete(entry.remaining, spent)
		}
		if len(entry.remaining) == 0 {
			entry.tx.Status = StatusConfirmed
			confirmed = append(confirmed, entry.tx)
			delete(b.entries, id)
		}
	}
	return confirmed
}

// Expire transitions to TimedOut every transaction submitted before the
// given deadline, stops tracking them and returns them so the caller can
// release their reservations.
func (b *PendingBook) Expire(deadline time.Time) []PendingTransaction {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	expired := make([]PendingTransaction, 0)
	for id, entry := range b.entries {
		if entry.tx.SubmittedAt.Before(deadline) {
			entry.tx.Status = StatusTimedOut
			expired = append(expired, entry.tx)
			delete(b.entries, id)
		}
	}
	return expired
}
