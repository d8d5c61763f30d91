package domain

import "time"

// ISODate is the canonical YYYY-MM-DD layout for calendar dates.
const ISODate = "2006-01-02"

// ToISODate normalizes a time to its calendar date string.
func ToISODate(t time.Time) string {
	return t.Format(ISODate)
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return ToISODate(a) == ToISODate(b)
}

// DaysBetween returns whole calendar days from a to b (negative if
// b < a). Dates are re-anchored in UTC so a DST transition, which
// shortens a local day below 24 hours, still counts as one day.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// CanMarkDate validates that a date may be marked relative to now.
// Today is always markable. Yesterday is markable only when the
// retroactive policy allows it and the elapsed whole hours since
// yesterday's midnight stay within the grace period. Everything else
// fails: future dates and dates older than yesterday.
// This is the single enforcement point for retroactive-marking policy.
func CanMarkDate(date, now time.Time, settings HabitSettings) error {
	if SameDay(date, now) {
		return nil
	}

	if DaysBetween(date, now) == 1 {
		if !settings.AllowRetroactive {
			return ErrRetroactiveDisabled
		}
		hoursSinceYesterday := int(now.Sub(StartOfDay(date)).Hours())
		if hoursSinceYesterday <= settings.GracePeriodHours {
			return nil
		}
		return ErrGracePeriodPassed
	}

	if date.After(now) {
		return ErrFutureDate
	}
	return ErrDateTooOld
}
