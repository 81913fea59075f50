package models

import "fmt"

// ValidationError rejects a vote whose fields are out of range or whose enum
// values are unrecognized. Nothing is mutated when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid vote field %s: %s", e.Field, e.Reason)
}

// CooldownError rejects a vote submitted before the cooldown window for the
// (user, venue) pair has elapsed. The caller may retry after RemainingMs.
type CooldownError struct {
	RemainingMs int64
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("vote rejected by cooldown, retry in %dms", e.RemainingMs)
}
