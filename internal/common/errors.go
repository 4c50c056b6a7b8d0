package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidFormatDate   = errors.New("invalid format date")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidCurrency     = errors.New("invalid currency code")

	ErrUnauthenticated = errors.New("owner could not be resolved from the request")
	ErrOwnerMismatch   = errors.New("record does not belong to the requesting owner")

	ErrNoAccountAvailable = errors.New("no account of a matching type exists for this owner")

	// ErrInvalidStateTransition is returned whenever a proposed entry is
	// asked to leave a terminal status, or re-enter pending.
	ErrInvalidStateTransition = errors.New("proposed entry is not pending")

	// ErrLedgerImbalance indicates a programming defect: the two entry
	// lines of a final entry did not balance. It must never be silently
	// corrected.
	ErrLedgerImbalance = errors.New("entry lines do not balance")

	ErrUpstreamTimeout = errors.New("suggestion collaborator timed out")

	ErrTransactionRemoved = errors.New("raw transaction has been removed")

	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
	ErrInvalidFingerprint    = errors.New("idempotency key reused with a different request body")
	ErrRequestBeingProcessed = errors.New("request with the same idempotency key is being processed")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
