package solar

import (
	"errors"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/chrissnell/solargeometry/pkg/timestamp"
)

// ValidateDayNumber reports a *RangeError unless n is in [1, 365].
func ValidateDayNumber(n int) error {
	if n < minDayNumber || n > maxDayNumber {
		return &RangeError{Param: "day number", Value: float64(n), Min: minDayNumber, Max: maxDayNumber}
	}
	return nil
}

// DayNumber returns the ordinal day of year of t's calendar date, in t's own
// location (1 = Jan 1). In leap years Dec 31 is 366, which the Spencer
// stages reject.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	return julian.DayOfYearGregorian(y, int(m), d)
}

// DayNumberFromString parses a date or date/time string with p and returns
// its validated day number. Parse failures come back as *FormatError.
func DayNumberFromString(s string, p timestamp.Parser) (int, error) {
	if p == nil {
		p = timestamp.Default
	}

	ts, err := p.Parse(s)
	if err != nil {
		reason := timestamp.ErrUnparseable.Error()
		if !errors.Is(err, timestamp.ErrUnparseable) {
			reason = err.Error()
		}
		return 0, &FormatError{Input: s, Reason: reason, Err: err}
	}

	n := DayNumber(ts.Time)
	if err := ValidateDayNumber(n); err != nil {
		return 0, err
	}
	return n, nil
}
