package engine

import "errors"

// Error kinds raised by the rules engine. Callers classify with errors.Is;
// the session turns each kind into a user-facing reply.
var (
	ErrNotFound        = errors.New("not found")
	ErrPathNotFound    = errors.New("stat path not found")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidTurn     = errors.New("turn must be between 1 and 4")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidResult   = errors.New("invalid result")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)
