package domain

import "errors"

var (
	// ErrInvalidConfig marks game or pool parameters that cannot produce a pick set.
	ErrInvalidConfig = errors.New("invalid game configuration")

	ErrUnknownGame     = errors.New("unknown game")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrUnknownScope    = errors.New("unknown data scope")
	ErrUnknownPool     = errors.New("unknown pool")
)
