package solar

import (
	"math"
)

const (
	// Zenith angle at and below which the plane-parallel 1/cos form is used.
	airMassPlaneParallelLimit = 70.0

	// Kasten-Young pole, the power term is undefined at and beyond it.
	airMassPole = 96.080
)

// AirMass returns the relative optical air mass for a zenith angle in
// degrees.
//
// Up to 70° it is 1/cos(θz). Beyond that the site altitude in meters is
// required and the Kasten-Young form is used, scaled for altitude:
//
//	exp(−0.0001184·h) / (cos θz + 0.5057·(96.080 − θz)^−1.634)
//
// A nil siteAltitude above 70° is a *MissingParameterError. Zenith angles
// at or past 96.080° are a *DomainError.
func AirMass(zenith float64, siteAltitude *float64) (float64, error) {
	if err := checkRange("zenith", zenith, 0, 180); err != nil {
		return 0, err
	}

	if zenith <= airMassPlaneParallelLimit {
		return 1.0 / math.Cos(degToRad(zenith)), nil
	}

	if siteAltitude == nil {
		return 0, &MissingParameterError{
			Param:  "site altitude",
			Reason: "a site altitude in meters is required for zenith angles above 70 degrees",
		}
	}
	h := *siteAltitude
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, &RangeError{Param: "site altitude", Value: h, Min: -math.MaxFloat64, Max: math.MaxFloat64}
	}

	if zenith >= airMassPole {
		return 0, &DomainError{Op: "air mass", Reason: "zenith angle at or beyond 96.080 degrees"}
	}

	den := math.Cos(degToRad(zenith)) + 0.5057*math.Pow(airMassPole-zenith, -1.634)
	if den <= 0 {
		return 0, &DomainError{Op: "air mass", Reason: "non-positive optical path denominator"}
	}

	return math.Exp(-0.0001184*h) / den, nil
}
