package game

import "errors"

var (
	// ErrInvalidDraft reports a draft request for a color the source does
	// not hold.
	ErrInvalidDraft = errors.New("invalid draft: color not in source")

	// ErrInvalidMove reports a move whose destination violates the pattern
	// line capacity or color rules. State is left untouched.
	ErrInvalidMove = errors.New("invalid move")

	// ErrConfig reports an out-of-range player count or an unknown mode or
	// strategy name. Rejected before any game state exists.
	ErrConfig = errors.New("invalid configuration")
)
