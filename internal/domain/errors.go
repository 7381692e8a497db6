package domain

import "errors"

// Domain-level errors
var (
	ErrDraftInvalid  = errors.New("draft has validation errors")
	ErrSubmitPending = errors.New("a submit is already in flight")
)
