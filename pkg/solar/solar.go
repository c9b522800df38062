// Package solar computes solar geometry for a location and local clock time
// using the closed-form approximations of Spencer (1971): day number,
// extraterrestrial irradiance, equation of time, solar time, declination,
// hour angle, zenith, altitude, azimuth and air mass.
//
// Every stage is a pure function of explicit parameters. Compute runs the
// stages in dependency order and returns a Snapshot. Engine wraps the same
// functions and fills omitted arguments from a configuration record.
//
// Conventions: latitude is degrees north-positive in [-90, 90], longitude is
// degrees WEST-positive in [0, 360], angles are returned in degrees and the
// equation of time in minutes.
package solar

import (
	"math"
)

const (
	// DefaultSolarConstant is G_sc in W/m²
	DefaultSolarConstant = 1367.0

	minDayNumber = 1
	maxDayNumber = 365
)

// degToRad converts an angle from degrees to radians for trigonometric calculations
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// radToDeg converts an angle from radians to degrees for human-readable output
func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// clampUnit keeps an acos/asin argument inside [-1, 1] so rounding cannot
// push it out of the function's domain.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
