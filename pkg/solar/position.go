package solar

import (
	"fmt"
	"math"
	"time"
)

// HourAngle returns the angular displacement of the sun from the local
// meridian in degrees for an apparent solar time: 15° per hour from solar
// noon on the same calendar date, negative in the morning (east) and
// positive in the afternoon (west).
func HourAngle(solarTime time.Time) float64 {
	return solarTime.Sub(noonOf(solarTime)).Hours() * 15.0
}

// Zenith returns the solar zenith angle in degrees for an apparent solar
// time and latitude. The day number and declination are taken from
// solarTime's calendar date, so a solar time that falls back onto Dec 31 of
// a leap year fails with a wrapped *RangeError for day 366.
func Zenith(solarTime time.Time, latitude float64) (float64, error) {
	if err := validateLatitude(latitude); err != nil {
		return 0, err
	}

	n := DayNumber(solarTime)
	declination, err := Declination(n)
	if err != nil {
		if n > maxDayNumber {
			return 0, fmt.Errorf("solar time %s falls on day %d of a leap year: %w", solarTime.Format("2006-01-02 15:04"), n, err)
		}
		return 0, err
	}

	return zenithAngle(latitude, declination, HourAngle(solarTime)), nil
}

func zenithAngle(latitude, declination, hourAngle float64) float64 {
	lat := degToRad(latitude)
	dec := degToRad(declination)
	h := degToRad(hourAngle)

	cosZ := math.Cos(lat)*math.Cos(dec)*math.Cos(h) + math.Sin(lat)*math.Sin(dec)
	return radToDeg(math.Acos(clampUnit(cosZ)))
}

// Altitude returns the solar altitude (elevation above the horizon) in
// degrees, 90 − zenith.
func Altitude(solarTime time.Time, latitude float64) (float64, error) {
	z, err := Zenith(solarTime, latitude)
	if err != nil {
		return 0, err
	}
	return 90.0 - z, nil
}

// Azimuth returns the solar azimuth in degrees measured from south, negative
// toward east (morning) and positive toward west (afternoon):
//
//	sign(h) · |acos((cos θz · sin φ − sin δ) / (sin θz · cos φ))|
//
// At exact solar noon (h == 0) the sign is taken as positive, giving 0° when
// the sun is due south of the zenith and 180° when it is due north.
//
// When sin θz · cos φ is zero (sun at the zenith or nadir, or observer at a
// pole) azimuth is undefined and a *DomainError is returned.
func Azimuth(hourAngle, zenith, latitude, declination float64) (float64, error) {
	if err := checkRange("hour angle", hourAngle, -180, 180); err != nil {
		return 0, err
	}
	if err := checkRange("zenith", zenith, 0, 180); err != nil {
		return 0, err
	}
	if err := validateLatitude(latitude); err != nil {
		return 0, err
	}
	if err := checkRange("declination", declination, -90, 90); err != nil {
		return 0, err
	}

	z := degToRad(zenith)
	lat := degToRad(latitude)
	dec := degToRad(declination)

	den := math.Sin(z) * math.Cos(lat)
	if math.Abs(den) < 1e-12 {
		return 0, &DomainError{
			Op:     "azimuth",
			Reason: "sin(zenith)·cos(latitude) is zero: undefined with the sun at the zenith or nadir, or at a pole",
		}
	}

	az := math.Abs(radToDeg(math.Acos(clampUnit((math.Cos(z)*math.Sin(lat) - math.Sin(dec)) / den))))
	if hourAngle < 0 {
		az = -az
	}
	return az, nil
}
