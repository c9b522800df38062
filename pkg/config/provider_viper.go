package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables ViperProvider reads, e.g.
// SOLARGEOM_LATITUDE or SOLARGEOM_ARRAY_SURFACE_AREA_M2.
const EnvPrefix = "SOLARGEOM"

var optionalKeys = []string{
	"site_altitude_m",
	"array.surface_area_m2",
	"array.array_efficiency",
}

// ViperProvider implements ConfigProvider with viper: an optional config
// file (any format viper understands) overlaid by SOLARGEOM_* environment
// variables.
type ViperProvider struct {
	filename string
}

// NewViperProvider creates a provider. An empty filename reads the
// environment only.
func NewViperProvider(filename string) *ViperProvider {
	return &ViperProvider{filename: filename}
}

// LoadConfig loads the configuration
func (p *ViperProvider) LoadConfig() (*ConfigData, error) {
	v := newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range optionalKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if p.filename != "" {
		v.SetConfigFile(p.filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", p.filename, err)
		}
	}

	return decode(v)
}

// IsReadOnly returns true
func (p *ViperProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op
func (p *ViperProvider) Close() error {
	return nil
}

// FromSettings builds a record from key/value settings, the same keys a
// configuration file uses. Unset keys take their defaults and unknown keys
// are an error.
func FromSettings(settings map[string]any) (*ConfigData, error) {
	v := newViper()
	if err := v.MergeConfigMap(settings); err != nil {
		return nil, err
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Defaults()
	v.SetDefault("g_sc", d.SolarConstant)
	v.SetDefault("latitude", d.Latitude)
	v.SetDefault("longitude", d.Longitude)
	v.SetDefault("local_standard_time", d.LocalStandardTime)

	return v
}

func decode(v *viper.Viper) (*ConfigData, error) {
	config := Defaults()
	if err := v.UnmarshalExact(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
