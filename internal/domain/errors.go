package domain

import "errors"

var (
	// ErrUnauthenticated is returned when a bearer token is missing or not accepted.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound is returned when an update or delete affects no rows,
	// including rows hidden from the caller by ownership scoping.
	ErrNotFound = errors.New("not found")
)
