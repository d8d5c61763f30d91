package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Date validation errors (the single gate for retroactive marking)
	ErrFutureDate          = errors.New("cannot mark future dates")
	ErrGracePeriodPassed   = errors.New("grace period has passed")
	ErrDateTooOld          = errors.New("can only mark today or yesterday")
	ErrRetroactiveDisabled = errors.New("retroactive marking is disabled")

	// Activity errors
	ErrActivityNotFound = errors.New("activity not found")
	ErrUnknownCategory  = errors.New("unknown activity category")
	ErrEmptyTitle       = errors.New("activity title must not be empty")

	// Challenge errors
	ErrChallengeNotFound     = errors.New("challenge not found")
	ErrChallengeNotCompleted = errors.New("challenge is not completed yet")
	ErrChallengeExpired      = errors.New("challenge has expired")

	// Storage errors
	ErrInvalidState = errors.New("stored state failed structural validation")
)

// IsValidationError reports whether err is one of the date-marking
// validation failures. Callers display the message and mutate nothing.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFutureDate) ||
		errors.Is(err, ErrGracePeriodPassed) ||
		errors.Is(err, ErrDateTooOld) ||
		errors.Is(err, ErrRetroactiveDisabled)
}
