package application

import "errors"

var (
	// ErrSessionNotActive is thrown when a command is issued outside the
	// Active state, including once shutdown has begun.
	ErrSessionNotActive = errors.New("session is not active")
	// ErrSessionNotStartable is thrown when Start is called on a session
	// that already left the Starting state. A new session requires a new
	// controller.
	ErrSessionNotStartable = errors.New("session has already been started")
	// ErrSwapsDisabled is thrown by swap commands when no quote peer was
	// configured for the session.
	ErrSwapsDisabled = errors.New("no quote peer configured, swaps are disabled")
	// ErrQuoteExpired is thrown when the selected quote expired before the
	// swap could be submitted. Refresh and retry.
	ErrQuoteExpired = errors.New("quote is expired, refresh quotes and retry")
	// ErrQuotePeerUnavailable is thrown when the quote peer cannot be
	// reached. A stale book is never silently served in its place.
	ErrQuotePeerUnavailable = errors.New("quote peer is unavailable")
	// ErrNoQuoteAvailable is thrown when no live quote covers the requested
	// amount for the pair.
	ErrNoQuoteAvailable = errors.New("no quote available for the requested amount")
)
