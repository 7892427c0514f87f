package ports

import (
	"errors"
	"fmt"
)

var (
	// ErrPeerUnavailable is thrown when a peer cannot be reached or a call
	// times out. Background loops retry on the next interval; user-initiated
	// calls surface it immediately.
	ErrPeerUnavailable = errors.New("peer is unavailable")
	// ErrSigningFailed is thrown when the trusted signing library fails to
	// build a transaction. Non-recoverable for the session.
	ErrSigningFailed = errors.New("transaction signing failed")
)

// SubmitError is returned when the ledger-view peer refuses a submitted
// transaction. The peer's reason is surfaced verbatim.
type SubmitError struct {
	Reason string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("transaction rejected by peer: %s", e.Reason)
}
