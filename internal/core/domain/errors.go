package domain

import "errors"

var (
	// ErrAlreadyReserved is thrown when trying to reserve an output that is
	// either already reserved by an in-flight transaction or not part of the
	// confirmed set.
	ErrAlreadyReserved = errors.New("output is already reserved or not spendable")
	// ErrInsufficientFunds is thrown when no subset of confirmed outputs
	// covers the requested amount plus fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownToken ...
	ErrUnknownToken = errors.New("token is not known")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is not a valid b58 public address")
	// ErrInvalidAccountKey ...
	ErrInvalidAccountKey = errors.New("account key material is not valid")
	// ErrAmountTooPrecise is thrown when parsing a decimal amount with more
	// fractional digits than the token supports.
	ErrAmountTooPrecise = errors.New("amount has too many decimal places")
	// ErrAmountOutOfRange ...
	ErrAmountOutOfRange = errors.New("amount is out of range")
)
