package service

import "errors"

// Domain errors. Every one of these is recovered inside the session
// state machine: the failing event produces a user-visible directive and
// a well-defined next state, and nothing is retried automatically.
var (
	// ErrParse means non-numeric input arrived where a number was
	// required.
	ErrParse = errors.New("input is not a number")

	// ErrAuthentication covers both an unknown account number and a
	// wrong PIN; the two causes are indistinguishable to the user.
	ErrAuthentication = errors.New("invalid account number or PIN")

	// ErrValidation means an amount failed the positivity or
	// denomination rules.
	ErrValidation = errors.New("invalid amount")

	// ErrInsufficientFunds means the account balance cannot cover the
	// withdrawal.
	ErrInsufficientFunds = errors.New("insufficient account funds")

	// ErrInsufficientCash means the machine's reserve cannot cover the
	// withdrawal.
	ErrInsufficientCash = errors.New("insufficient cash in machine")

	// ErrSessionInvariant means a transaction was attempted without a
	// bound account. Unreachable through normal UI sequencing.
	ErrSessionInvariant = errors.New("no account bound to session")
)
