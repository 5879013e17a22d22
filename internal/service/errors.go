package service

import "errors"

// Outcome sentinels matched with errors.Is at the transport layer. Anything
// else escaping a service is an internal fault: logged in full, surfaced as a
// generic server error.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNotFound     = errors.New("not found")
)
