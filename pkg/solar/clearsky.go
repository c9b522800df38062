package solar

import (
	"math"
)

const (
	linkeTurbidity = 2.0   // typical for clear skies (range: 2-6)
	beamScale      = 0.7   // normalization constant for DNI
	extinction     = 0.027 // atmospheric extinction coefficient
)

// ClearSkyGHI estimates the global horizontal irradiance in W/m² under a
// cloudless sky using an Ineichen-Perez style model driven by the
// snapshot's extraterrestrial irradiance, zenith angle and day number.
// siteAltitude is in meters. The result is 0 with the sun at or below the
// horizon.
func ClearSkyGHI(s Snapshot, siteAltitude float64) float64 {
	if s.Zenith >= 90 {
		return 0
	}

	seaLevel := 0.0
	am, err := AirMass(s.Zenith, &seaLevel)
	if err != nil {
		return 0
	}

	z := degToRad(s.Zenith)

	// Direct beam, thinned toward sea level by the scale height of the atmosphere
	dni := s.GOn * beamScale * math.Exp(-extinction*am*linkeTurbidity*math.Exp(-siteAltitude/8000.0))

	// Diffuse, with a seasonal adjustment
	fh := 0.1 + 0.05*math.Sin(math.Pi*float64(s.DayNumber-100)/365.0)
	dhi := fh * s.GOn * math.Sin(z)

	return dni*math.Cos(z) + dhi
}
