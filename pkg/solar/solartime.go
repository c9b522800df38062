package solar

import (
	"math"
	"time"

	"github.com/chrissnell/solargeometry/pkg/timestamp"
)

// SolarTime converts a local standard clock time to apparent solar time.
//
// The UTC offset of local is floored to whole hours to find the standard
// meridian (15° per hour). The result is local shifted by
// 4·(meridian − longitude) minutes plus the equation of time for local's
// day number. The returned time keeps local's location.
//
// local must carry an explicit zone. A time in time.Local is rejected with a
// *FormatError wrapping ErrImplicitZone.
func SolarTime(local time.Time, longitude float64) (time.Time, error) {
	shift, err := solarShift(local, longitude)
	if err != nil {
		return time.Time{}, err
	}
	return local.Add(shift), nil
}

// SolarNoon returns the local standard clock time of solar noon on local's
// calendar date. It is the inverse of SolarTime: SolarTime(SolarNoon(t))
// is 12:00 on t's date.
func SolarNoon(local time.Time, longitude float64) (time.Time, error) {
	shift, err := solarShift(local, longitude)
	if err != nil {
		return time.Time{}, err
	}
	return noonOf(local).Add(-shift), nil
}

// StandardMeridian returns the standard meridian in degrees for t's UTC
// offset, floored to whole hours. UTC-03:30 floors to -4, so 60°.
func StandardMeridian(t time.Time) float64 {
	return 15 * math.Abs(utcOffsetHours(t))
}

// solarShift is the longitude correction plus the equation of time, shared
// by both directions of the conversion so they mirror exactly.
func solarShift(local time.Time, longitude float64) (time.Duration, error) {
	if err := validateLongitude(longitude); err != nil {
		return 0, err
	}
	if err := requireExplicitZone(local); err != nil {
		return 0, err
	}

	E, err := EquationOfTime(DayNumber(local))
	if err != nil {
		return 0, err
	}

	longitudeCorrection := 4.0 * (StandardMeridian(local) - longitude)
	return minutes(longitudeCorrection + E), nil
}

func utcOffsetHours(t time.Time) float64 {
	_, off := t.Zone()
	return math.Floor(float64(off) / 3600)
}

func requireExplicitZone(t time.Time) error {
	if t.Location() == time.Local {
		return &FormatError{Input: t.Format(time.RFC3339), Reason: ErrImplicitZone.Error(), Err: ErrImplicitZone}
	}
	return nil
}

// noonOf returns 12:00 on t's calendar date at t's UTC offset. For named
// zones whose offset changes between t and noon the offset of t is kept.
func noonOf(t time.Time) time.Time {
	y, m, d := t.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, t.Location())

	_, off := t.Zone()
	if _, noonOff := noon.Zone(); noonOff != off {
		noon = time.Date(y, m, d, 12, 0, 0, 0, timestamp.FixedZone(off))
	}
	return noon
}

func minutes(m float64) time.Duration {
	return time.Duration(math.Round(m * float64(time.Minute)))
}
