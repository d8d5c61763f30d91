package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

func TestCanMarkDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	retro := func(grace int) domain.HabitSettings {
		return domain.HabitSettings{AllowRetroactive: true, GracePeriodHours: grace}
	}

	cases := []struct {
		name     string
		date     time.Time
		settings domain.HabitSettings
		want     error
	}{
		{"today", now, retro(24), nil},
		{"today early morning", time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local), retro(24), nil},
		{"yesterday inside grace", now.AddDate(0, 0, -1), retro(48), nil},
		{"yesterday outside grace", now.AddDate(0, 0, -1), retro(24), domain.ErrGracePeriodPassed},
		{"yesterday grace boundary", now.AddDate(0, 0, -1), retro(38), nil}, // exactly 38h since its midnight
		{"tomorrow", now.AddDate(0, 0, 1), retro(24), domain.ErrFutureDate},
		{"next week", now.AddDate(0, 0, 7), retro(24), domain.ErrFutureDate},
		{"two days ago", now.AddDate(0, 0, -2), retro(24), domain.ErrDateTooOld},
		{"last month", now.AddDate(0, -1, 0), retro(24), domain.ErrDateTooOld},
		{"today with retroactive off", now, domain.HabitSettings{GracePeriodHours: 24}, nil},
		{"yesterday with retroactive off", now.AddDate(0, 0, -1),
			domain.HabitSettings{GracePeriodHours: 48}, domain.ErrRetroactiveDisabled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.CanMarkDate(tc.date, now, tc.settings)
			if !errors.Is(err, tc.want) && !(err == nil && tc.want == nil) {
				t.Errorf("CanMarkDate(%v) = %v, want %v", tc.date, err, tc.want)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{
		domain.ErrFutureDate, domain.ErrGracePeriodPassed,
		domain.ErrDateTooOld, domain.ErrRetroactiveDisabled,
	} {
		if !domain.IsValidationError(err) {
			t.Errorf("expected %v to be a validation error", err)
		}
	}
	if domain.IsValidationError(domain.ErrActivityNotFound) {
		t.Error("ErrActivityNotFound is not a date validation error")
	}
	if domain.IsValidationError(nil) {
		t.Error("nil is not a validation error")
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2026, 3, 11, 0, 1, 0, 0, time.Local)
	if got := domain.DaysBetween(a, b); got != 1 {
		t.Errorf("adjacent midnight crossing: got %d, want 1", got)
	}
	if got := domain.DaysBetween(b, a); got != -1 {
		t.Errorf("reversed: got %d, want -1", got)
	}
	if got := domain.DaysBetween(a, a); got != 0 {
		t.Errorf("same instant: got %d, want 0", got)
	}
}

func TestDaysBetween_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// DST starts 2026-03-08 in New York; that local day is 23 hours long.
	a := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	b := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	if got := domain.DaysBetween(a, b); got != 1 {
		t.Errorf("across spring-forward day: got %d, want 1", got)
	}
	if got := domain.DaysBetween(a, a.AddDate(0, 0, 7)); got != 7 {
		t.Errorf("week spanning the transition: got %d, want 7", got)
	}
}

func TestSameDayAndBounds(t *testing.T) {
	morning := time.Date(2026, 3, 10, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local)
	if !domain.SameDay(morning, night) {
		t.Error("expected same calendar day")
	}
	if domain.SameDay(night, night.Add(time.Second)) {
		t.Error("expected different days across midnight")
	}
	if got := domain.ToISODate(night); got != "2026-03-10" {
		t.Errorf("ToISODate: got %s", got)
	}
	if eod := domain.EndOfDay(morning); !eod.After(night) {
		t.Error("EndOfDay must be the last instant of the day")
	}
}
