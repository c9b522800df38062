package solar

import (
	"math"
	"time"
)

// Daylight holds the sunrise, solar noon and sunset of one calendar date as
// local standard clock times.
type Daylight struct {
	SolarNoon time.Time     `json:"solar_noon"`
	Sunrise   time.Time     `json:"sunrise,omitempty"`
	Sunset    time.Time     `json:"sunset,omitempty"`
	Length    time.Duration `json:"day_length"`

	// Sun never sets (midnight sun). Sunrise and Sunset are zero.
	PolarDay bool `json:"polar_day,omitempty"`

	// Sun never rises. Sunrise and Sunset are zero.
	PolarNight bool `json:"polar_night,omitempty"`
}

// SunriseSunset returns sunrise and sunset for local's calendar date at loc.
//
// The sun crosses the horizon at the sunset hour angle
//
//	cos ωs = −tan φ · tan δ
//
// either side of solar noon, 15° per hour. When |tan φ · tan δ| > 1 the sun
// stays up (polar day) or down (polar night) all day and the times are left
// zero.
func SunriseSunset(loc Location, local time.Time) (Daylight, error) {
	if err := loc.Validate(); err != nil {
		return Daylight{}, err
	}

	noon, err := SolarNoon(local, loc.Longitude)
	if err != nil {
		return Daylight{}, err
	}

	declination, err := Declination(DayNumber(local))
	if err != nil {
		return Daylight{}, err
	}

	d := Daylight{SolarNoon: noon}

	cosWs := -math.Tan(degToRad(loc.Latitude)) * math.Tan(degToRad(declination))
	switch {
	case cosWs < -1:
		d.PolarDay = true
		d.Length = 24 * time.Hour
		return d, nil
	case cosWs > 1:
		d.PolarNight = true
		return d, nil
	}

	halfDay := minutes(radToDeg(math.Acos(cosWs)) * 4) // 4 minutes per degree
	d.Sunrise = noon.Add(-halfDay)
	d.Sunset = noon.Add(halfDay)
	d.Length = 2 * halfDay

	return d, nil
}
