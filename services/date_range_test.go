package services

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSelectCheckOutBeforeCheckInRestartsRange(t *testing.T) {
	s := NewDateRangeSelector(day("2025-03-01"))

	s.SelectCheckIn(day("2025-03-10"))
	s.SelectCheckOut(day("2025-03-05"))

	if _, _, ok := s.Range(); ok {
		t.Fatalf("expected incomplete range after restart tap")
	}
	s.SelectCheckOut(day("2025-03-08"))
	in, out, ok := s.Range()
	if !ok {
		t.Fatalf("expected complete range")
	}
	if !in.Equal(day("2025-03-05")) || !out.Equal(day("2025-03-08")) {
		t.Fatalf("unexpected range %s → %s", in.Format(ISODate), out.Format(ISODate))
	}
	if !out.After(in) {
		t.Fatalf("stored range must keep check-out strictly after check-in")
	}
}

func TestSelectCheckInOnOrAfterCheckOutClearsCheckOut(t *testing.T) {
	s := NewDateRangeSelector(day("2025-03-01"))
	s.SelectCheckIn(day("2025-03-04"))
	s.SelectCheckOut(day("2025-03-07"))

	s.SelectCheckIn(day("2025-03-07"))
	if _, _, ok := s.Range(); ok {
		t.Fatalf("check-out should have been cleared when check-in moved onto it")
	}
	if s.Nights() != 0 {
		t.Fatalf("nights should be 0 with no check-out, got %d", s.Nights())
	}
}

func TestOutOfWindowSelectionsAreInert(t *testing.T) {
	s := NewDateRangeSelector(day("2025-03-01"))

	s.SelectCheckIn(day("2025-02-28"))
	if _, _, ok := s.Range(); ok || s.Nights() != 0 {
		t.Fatalf("past date must be ignored")
	}

	s.SelectCheckIn(day("2025-03-10"))
	s.SelectCheckOut(day("2026-03-02"))
	if _, _, ok := s.Range(); ok {
		t.Fatalf("date beyond the one-year window must be ignored")
	}

	// Window edge itself is selectable.
	s.SelectCheckOut(day("2026-03-01"))
	if _, _, ok := s.Range(); !ok {
		t.Fatalf("last day of the window should be selectable")
	}
}

func TestNightsComputation(t *testing.T) {
	s := NewDateRangeSelector(day("2025-03-01"))
	s.SelectCheckIn(day("2025-03-01"))
	s.SelectCheckOut(day("2025-03-04"))

	if got := s.Nights(); got != 3 {
		t.Fatalf("expected 3 nights, got %d", got)
	}
	if got := NightsBetween(day("2025-04-10"), day("2025-04-12")); got != 2 {
		t.Fatalf("expected 2 nights, got %d", got)
	}
}

func TestResetClearsBothEnds(t *testing.T) {
	s := NewDateRangeSelector(day("2025-03-01"))
	s.SelectCheckIn(day("2025-03-02"))
	s.SelectCheckOut(day("2025-03-05"))
	s.Reset()
	if _, _, ok := s.Range(); ok || s.Nights() != 0 {
		t.Fatalf("reset should clear the selection")
	}
}
