package domain

import "errors"

// Domain errors (no external dependencies).
//
// The store itself has no error taxonomy — mutations on a missing id are
// silent no-ops. These sentinels belong to the application layer, which
// tightens that contract at the API edge.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("duplicate resource")
)
