package config

import (
	"errors"
	"fmt"
)

// Defaults for every configuration field that has one. The location is
// Arcata, CA.
const (
	DefaultSolarConstant     = 1367.0
	DefaultLatitude          = 40.8665
	DefaultLongitude         = 124.0828
	DefaultLocalStandardTime = "May 1, 2019 12:00 PM -08:00"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData is the configuration record the solar geometry engine reads
// its defaults from. Fields left out of a configuration source keep the
// values from Defaults.
type ConfigData struct {
	// Solar constant G_sc, W/m²
	SolarConstant float64 `json:"g_sc" yaml:"g_sc" mapstructure:"g_sc"`

	// Degrees, north positive
	Latitude float64 `json:"latitude" yaml:"latitude" mapstructure:"latitude"`

	// Degrees, WEST positive
	Longitude float64 `json:"longitude" yaml:"longitude" mapstructure:"longitude"`

	// Date, time and explicit UTC offset, e.g. "May 1, 2019 12:00 PM -08:00"
	LocalStandardTime string `json:"local_standard_time" yaml:"local_standard_time" mapstructure:"local_standard_time"`

	// Meters above sea level. Only needed for air mass at zenith angles above 70°.
	SiteAltitude *float64 `json:"site_altitude_m,omitempty" yaml:"site_altitude_m,omitempty" mapstructure:"site_altitude_m"`

	Array *ArrayData `json:"array,omitempty" yaml:"array,omitempty" mapstructure:"array"`
}

// ArrayData describes a photovoltaic array installed at the configured
// location. It is descriptive only.
type ArrayData struct {
	SurfaceAreaM2 *float64 `json:"surface_area_m2,omitempty" yaml:"surface_area_m2,omitempty" mapstructure:"surface_area_m2"`
	Efficiency    *float64 `json:"array_efficiency,omitempty" yaml:"array_efficiency,omitempty" mapstructure:"array_efficiency"`
}

// Defaults returns a new record holding the default value of every field.
func Defaults() ConfigData {
	return ConfigData{
		SolarConstant:     DefaultSolarConstant,
		Latitude:          DefaultLatitude,
		Longitude:         DefaultLongitude,
		LocalStandardTime: DefaultLocalStandardTime,
	}
}

// Validate checks the parts of the record that no computation validates
// on its own. Coordinates and the local time are checked by the engine.
func (c *ConfigData) Validate() error {
	if c.LocalStandardTime == "" {
		return errors.New("local_standard_time must not be empty")
	}
	if c.Array != nil {
		if a := c.Array.SurfaceAreaM2; a != nil && *a <= 0 {
			return fmt.Errorf("array.surface_area_m2 must be positive, got %g", *a)
		}
		if e := c.Array.Efficiency; e != nil && (*e <= 0 || *e > 1) {
			return fmt.Errorf("array.array_efficiency must be in (0, 1], got %g", *e)
		}
	}
	return nil
}

// Clone returns a deep copy so that callers holding the original cannot
// change what the copy sees.
func (c ConfigData) Clone() ConfigData {
	out := c
	if c.SiteAltitude != nil {
		v := *c.SiteAltitude
		out.SiteAltitude = &v
	}
	if c.Array != nil {
		a := ArrayData{}
		if c.Array.SurfaceAreaM2 != nil {
			v := *c.Array.SurfaceAreaM2
			a.SurfaceAreaM2 = &v
		}
		if c.Array.Efficiency != nil {
			v := *c.Array.Efficiency
			a.Efficiency = &v
		}
		out.Array = &a
	}
	return out
}
