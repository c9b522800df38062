package solar

import (
	"time"
)

// Snapshot is one consistent pass of every derived quantity for a single
// location and local standard time. Only Compute creates one.
type Snapshot struct {
	Location    Location   `json:"location"`
	LocalTime   time.Time  `json:"local_time"`
	DayNumber   int        `json:"day_number"`
	B           float64    `json:"b_degrees"`                // Spencer day angle, degrees
	GOn         float64    `json:"g_on"`                     // extraterrestrial normal irradiance, units of G_sc
	E           float64    `json:"equation_of_time_minutes"` // minutes
	SolarTime   time.Time  `json:"solar_time"`
	Declination float64    `json:"declination_degrees"`
	HourAngle   float64    `json:"hour_angle_degrees"`
	Zenith      float64    `json:"zenith_degrees"`
	Altitude    float64    `json:"altitude_degrees"`
	Advisories  []Advisory `json:"advisories,omitempty"`
}

// Compute runs every stage in dependency order:
//
//	day number → B → G_on → E → solar time → declination → hour angle → zenith → altitude
//
// The first failing stage aborts the pass and its error is returned as is,
// together with a zero Snapshot.
func Compute(gsc float64, loc Location, local time.Time) (Snapshot, error) {
	return compute(gsc, loc, local, nil)
}

func compute(gsc float64, loc Location, local time.Time, advisories []Advisory) (Snapshot, error) {
	if err := loc.Validate(); err != nil {
		return Snapshot{}, err
	}

	dayNumber := DayNumber(local)
	if err := ValidateDayNumber(dayNumber); err != nil {
		return Snapshot{}, err
	}

	b, err := SpencerB(dayNumber)
	if err != nil {
		return Snapshot{}, err
	}

	gOn, err := ExtraterrestrialIrradiance(gsc, dayNumber)
	if err != nil {
		return Snapshot{}, err
	}

	e, err := EquationOfTime(dayNumber)
	if err != nil {
		return Snapshot{}, err
	}

	solarTime, err := SolarTime(local, loc.Longitude)
	if err != nil {
		return Snapshot{}, err
	}

	declination, err := Declination(dayNumber)
	if err != nil {
		return Snapshot{}, err
	}

	hourAngle := HourAngle(solarTime)

	zenith, err := Zenith(solarTime, loc.Latitude)
	if err != nil {
		return Snapshot{}, err
	}

	altitude := 90.0 - zenith

	return Snapshot{
		Location:    loc,
		LocalTime:   local,
		DayNumber:   dayNumber,
		B:           b,
		GOn:         gOn,
		E:           e,
		SolarTime:   solarTime,
		Declination: declination,
		HourAngle:   hourAngle,
		Zenith:      zenith,
		Altitude:    altitude,
		Advisories:  advisories,
	}, nil
}

// Azimuth derives the solar azimuth from the snapshot's hour angle, zenith,
// latitude and declination. See Azimuth for the sign and noon conventions.
func (s Snapshot) Azimuth() (float64, error) {
	return Azimuth(s.HourAngle, s.Zenith, s.Location.Latitude, s.Declination)
}

// AirMass derives the air mass from the snapshot's zenith angle.
func (s Snapshot) AirMass(siteAltitude *float64) (float64, error) {
	return AirMass(s.Zenith, siteAltitude)
}
