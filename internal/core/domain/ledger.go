package domain

import (
	"sort"
	"sync"
)

// AmountLedger is a snapshot-consistent, in-memory view of one account's
// spendable outputs. An output id lives in at most one of the confirmed set
// and the reserved (pending-spend) set at any time; balances are always
// recomputed from the confirmed set so there is no counter that can drift.
//
// The confirmed set is mutated by the ledger sync worker, the reserved set
// by the transaction builder and the session controller. All methods are
// safe for concurrent use.
type AmountLedger struct {
	mtx       sync.RWMutex
	confirmed map[OutputID]SpendableOutput
	reserved  map[OutputID]SpendableOutput
}

// NewAmountLedger returns an empty ledger.
func NewAmountLedger() *AmountLedger {
	return &AmountLedger{
		confirmed: map[OutputID]SpendableOutput{},
		reserved:  map[OutputID]SpendableOutput{},
	}
}

// ApplyConfirmedDelta merges newly observed outputs into the confirmed set
// and removes those reported spent. Re-applying the same delta is a no-op:
// already present outputs are overwritten in place and already removed ids
// are skipped. An id currently reserved is never re-added to the confirmed
// set by a delta.
func (l *AmountLedger) ApplyConfirmedDelta(
	newOutputs []SpendableOutput, spentIDs []OutputID,
) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for _, out := range newOutputs {
		if _, ok := l.reserved[out.ID]; ok {
			continue
		}
		l.confirmed[out.ID] = out
	}
	for _, id := range spentIDs {
		delete(l.confirmed, id)
	}
}

// ReserveForSpend moves the given ids from the confirmed set to the
// reserved set. It is all-or-nothing: if any id is already reserved or not
// currently confirmed, nothing is moved and ErrAlreadyReserved is returned.
func (l *AmountLedger) ReserveForSpend(ids []OutputID) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for _, id := range ids {
		if _, ok := l.reserved[id]; ok {
			return ErrAlreadyReserved
		}
		if _, ok := l.confirmed[id]; !ok {
			return ErrAlreadyReserved
		}
	}
	for _, id := range ids {
		l.reserved[id] = l.confirmed[id]
		delete(l.confirmed, id)
	}
	return nil
}

// ReleaseReservation moves the given ids back to the confirmed set, making
// them spendable again. Ids that are not reserved are ignored.
func (l *AmountLedger) ReleaseReservation(ids []OutputID) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for _, id := range ids {
		out, ok := l.reserved[id]
		if !ok {
			continue
		}
		delete(l.reserved, id)
		l.confirmed[id] = out
	}
}

// ConfirmSpend permanently removes the given ids from the reserved set,
// once their spend has been independently observed on the remote ledger.
func (l *AmountLedger) ConfirmSpend(ids []OutputID) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for _, id := range ids {
		delete(l.reserved, id)
	}
}

// Balance returns the spendable balance for the given token, ie. the sum
// of confirmed outputs. Reserved outputs are excluded by construction.
func (l *AmountLedger) Balance(token TokenID) uint64 {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	var total uint64
	for _, out := range l.confirmed {
		if out.Token == token {
			total += out.Value
		}
	}
	return total
}

// Balances returns the spendable balance of every token with at least one
// confirmed output.
func (l *AmountLedger) Balances() map[TokenID]uint64 {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	balances := map[TokenID]uint64{}
	for _, out := range l.confirmed {
		balances[out.Token] += out.Value
	}
	return balances
}

// Outputs returns a snapshot of the confirmed outputs for the given token.
func (l *AmountLedger) Outputs(token TokenID) []SpendableOutput {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	outputs := make([]SpendableOutput, 0)
	for _, out := range l.confirmed {
		if out.Token == token {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// ReservedValue returns the total value currently reserved for the given
// token by in-flight transactions.
func (l *AmountLedger) ReservedValue(token TokenID) uint64 {
	l.mtx.RLock()
	defer l.mtx.RUnlock()

	var total uint64
	for _, out := range l.reserved {
		if out.Token == token {
			total += out.Value
		}
	}
	return total
}

// SelectOutputs picks a subset of confirmed outputs of the given token
// covering the target value. The policy is greedy: candidates are sorted
// descending by value and accepted until the cumulative value reaches the
// target, which keeps the input count low (the transaction format bounds
// it). Returns ErrInsufficientFunds if the whole confirmed set does not
// cover the target.
func (l *AmountLedger) SelectOutputs(
	token TokenID, target uint64,
) ([]SpendableOutput, error) {
	candidates := l.Outputs(token)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Value != candidates[j].Value {
			return candidates[i].Value > candidates[j].Value
		}
		// Equal values: prefer older outputs, then stable id order.
		if candidates[i].BlockIndex != candidates[j].BlockIndex {
			return candidates[i].BlockIndex < candidates[j].BlockIndex
		}
		return candidates[i].ID < candidates[j].ID
	})

	selected := make([]SpendableOutput, 0, len(candidates))
	var cumulative uint64
	for _, out := range candidates {
		selected = append(selected, out)
		cumulative += out.Value
		if cumulative >= target {
			return selected, nil
		}
	}
	return nil, ErrInsufficientFunds
}
