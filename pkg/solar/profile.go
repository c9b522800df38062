package solar

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

const (
	minProfileStep = time.Minute
	maxProfileStep = 12 * time.Hour
)

// Profile is a day of snapshots sampled at a fixed step from local midnight.
type Profile struct {
	Date       string         `json:"date"`
	Step       time.Duration  `json:"step"`
	Points     []Snapshot     `json:"points"`
	Summary    ProfileSummary `json:"summary"`
	Advisories []Advisory     `json:"advisories,omitempty"`
}

// ProfileSummary condenses a Profile.
type ProfileSummary struct {
	PeakAltitude    float64   `json:"peak_altitude_degrees"`
	PeakTime        time.Time `json:"peak_time"`
	DaylightSamples int       `json:"daylight_samples"`

	// nil when the sun never rises above the horizon at any sample
	MeanDaylightZenith *float64 `json:"mean_daylight_zenith_degrees,omitempty"`

	// Extraterrestrial horizontal insolation H₀, Wh/m² (units of G_sc · h)
	Insolation float64 `json:"extraterrestrial_insolation"`

	// Clear-sky horizontal insolation, Wh/m². Only set when a site altitude was given.
	ClearSkyInsolation *float64 `json:"clear_sky_insolation,omitempty"`

	Daylight Daylight `json:"daylight"`
}

// DailyProfile computes a snapshot every step from local midnight of day's
// calendar date up to, not including, the next midnight, then summarizes
// them. Insolation is integrated over the whole day, through the next
// midnight. step must be between one minute and 12 hours. A non-nil
// siteAltitude (meters) adds clear-sky insolation to the summary.
//
// Any failing sample aborts the profile with that sample's error.
func DailyProfile(gsc float64, loc Location, day time.Time, step time.Duration, siteAltitude *float64) (Profile, error) {
	if step < minProfileStep || step > maxProfileStep {
		return Profile{}, &RangeError{
			Param: "step (minutes)",
			Value: step.Minutes(),
			Min:   minProfileStep.Minutes(),
			Max:   maxProfileStep.Minutes(),
		}
	}
	if err := loc.Validate(); err != nil {
		return Profile{}, err
	}
	if err := requireExplicitZone(day); err != nil {
		return Profile{}, err
	}

	y, m, d := day.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end := midnight.AddDate(0, 0, 1)

	var (
		points     []Snapshot
		hours      []float64
		altitudes  []float64
		horizontal []float64
		clearSky   []float64
		daylightZ  []float64
	)

	for t := midnight; t.Before(end); t = t.Add(step) {
		s, err := compute(gsc, loc, t, nil)
		if err != nil {
			return Profile{}, fmt.Errorf("profile sample at %s: %w", t.Format("15:04"), err)
		}

		points = append(points, s)
		hours = append(hours, t.Sub(midnight).Hours())
		altitudes = append(altitudes, s.Altitude)
		horizontal = append(horizontal, s.GOn*math.Max(math.Cos(degToRad(s.Zenith)), 0))
		if siteAltitude != nil {
			clearSky = append(clearSky, ClearSkyGHI(s, *siteAltitude))
		}
		if s.Altitude > 0 {
			daylightZ = append(daylightZ, s.Zenith)
		}
	}

	// The day repeats, so midnight's value closes the last interval.
	hours = append(hours, end.Sub(midnight).Hours())
	horizontal = append(horizontal, horizontal[0])
	if siteAltitude != nil {
		clearSky = append(clearSky, clearSky[0])
	}

	daylight, err := SunriseSunset(loc, midnight.Add(12*time.Hour))
	if err != nil {
		return Profile{}, err
	}

	peak := floats.MaxIdx(altitudes)
	summary := ProfileSummary{
		PeakAltitude:    altitudes[peak],
		PeakTime:        points[peak].LocalTime,
		DaylightSamples: len(daylightZ),
		Insolation:      integrate.Trapezoidal(hours, horizontal),
		Daylight:        daylight,
	}
	if len(daylightZ) > 0 {
		mean := stat.Mean(daylightZ, nil)
		summary.MeanDaylightZenith = &mean
	}
	if siteAltitude != nil {
		h := integrate.Trapezoidal(hours, clearSky)
		summary.ClearSkyInsolation = &h
	}

	return Profile{
		Date:    midnight.Format("2006-01-02"),
		Step:    step,
		Points:  points,
		Summary: summary,
	}, nil
}
