package solar

import (
	"math"
)

// SpencerB returns B = (n-1)·360/365 in degrees, the day-of-year angle that
// every Spencer (1971) series below is expanded in.
func SpencerB(n int) (float64, error) {
	if err := ValidateDayNumber(n); err != nil {
		return 0, err
	}
	return float64(n-1) * 360.0 / 365.0, nil
}

// ExtraterrestrialIrradiance returns G_on, the radiation incident on the
// plane normal to the sun's rays at the top of the atmosphere on day n, in
// the units of gsc (normally W/m²).
func ExtraterrestrialIrradiance(gsc float64, n int) (float64, error) {
	if math.IsNaN(gsc) || math.IsInf(gsc, 0) || gsc <= 0 {
		return 0, &RangeError{Param: "solar constant", Value: gsc, Min: 0, Max: math.Inf(1)}
	}

	B, err := SpencerB(n)
	if err != nil {
		return 0, err
	}
	b := degToRad(B)

	multiplier := 1.000110 +
		0.034221*math.Cos(b) +
		0.001280*math.Sin(b) +
		0.000719*math.Cos(2*b) +
		0.000077*math.Sin(2*b)
	return gsc * multiplier, nil
}

// EquationOfTime returns E in minutes for day n.
func EquationOfTime(n int) (float64, error) {
	B, err := SpencerB(n)
	if err != nil {
		return 0, err
	}
	b := degToRad(B)

	return 229.2 * (0.000075 +
		0.001868*math.Cos(b) -
		0.032077*math.Sin(b) -
		0.014615*math.Cos(2*b) -
		0.04089*math.Sin(2*b)), nil
}

// Declination returns the sun's declination on day n in degrees, north
// positive.
func Declination(n int) (float64, error) {
	B, err := SpencerB(n)
	if err != nil {
		return 0, err
	}
	b := degToRad(B)

	return radToDeg(0.006918 -
		0.399912*math.Cos(b) +
		0.070257*math.Sin(b) -
		0.006758*math.Cos(2*b) +
		0.000907*math.Sin(2*b) -
		0.002697*math.Cos(3*b) +
		0.00148*math.Sin(3*b)), nil
}
