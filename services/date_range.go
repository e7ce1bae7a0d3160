package services

import "time"

// ISODate is the wire format for calendar dates (no time component).
const ISODate = "2006-01-02"

// ParseISODate parses a yyyy-mm-dd date string.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// DateRangeSelector holds an in-progress check-in/check-out selection with
// the usual two-tap calendar semantics: first tap sets the start, a second
// tap before (or on) the start restarts the range, a second tap after the
// start closes it. Selections outside the booking window are ignored.
type DateRangeSelector struct {
	minDate  time.Time
	maxDate  time.Time
	checkIn  *time.Time
	checkOut *time.Time
}

// NewDateRangeSelector opens a selection window of one year starting today.
func NewDateRangeSelector(now time.Time) *DateRangeSelector {
	min := truncateToDay(now)
	return &DateRangeSelector{
		minDate: min,
		maxDate: min.AddDate(0, 0, 365),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *DateRangeSelector) inWindow(d time.Time) bool {
	return !d.Before(s.minDate) && !d.After(s.maxDate)
}

// SelectCheckIn stores a new check-in date. A check-out dated on or before
// the new check-in is cleared so the stored range can never invert.
func (s *DateRangeSelector) SelectCheckIn(date time.Time) {
	d := truncateToDay(date)
	if !s.inWindow(d) {
		return
	}
	s.checkIn = &d
	if s.checkOut != nil && !s.checkOut.After(d) {
		s.checkOut = nil
	}
}

// SelectCheckOut closes the range when the tapped date is strictly after the
// current check-in; any other tap is reinterpreted as a fresh check-in.
func (s *DateRangeSelector) SelectCheckOut(date time.Time) {
	d := truncateToDay(date)
	if !s.inWindow(d) {
		return
	}
	if s.checkIn == nil || !d.After(*s.checkIn) {
		s.SelectCheckIn(d)
		return
	}
	s.checkOut = &d
}

// Range returns the selected pair; ok is false until both ends are set.
func (s *DateRangeSelector) Range() (checkIn, checkOut time.Time, ok bool) {
	if s.checkIn == nil || s.checkOut == nil {
		return time.Time{}, time.Time{}, false
	}
	return *s.checkIn, *s.checkOut, true
}

// Nights is the whole-day difference between the two ends, 0 while the
// range is incomplete.
func (s *DateRangeSelector) Nights() int {
	if s.checkIn == nil || s.checkOut == nil {
		return 0
	}
	return NightsBetween(*s.checkIn, *s.checkOut)
}

// Reset clears both ends.
func (s *DateRangeSelector) Reset() {
	s.checkIn = nil
	s.checkOut = nil
}

// NightsBetween counts whole days from check-in to check-out.
func NightsBetween(checkIn, checkOut time.Time) int {
	n := int(truncateToDay(checkOut).Sub(truncateToDay(checkIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
