package solar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chrissnell/solargeometry/pkg/config"
	"github.com/chrissnell/solargeometry/pkg/timestamp"
)

// 2024-03-09 21:00 at UTC-08:00
var fixedNow = time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, cfg config.ConfigData, opts ...EngineOption) *Engine {
	t.Helper()
	parser := timestamp.NewLayoutParser(timestamp.WithClock(func() time.Time { return fixedNow }))
	e, err := NewEngine(cfg, append([]EngineOption{WithParser(parser)}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestEngineDefaults(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	assert.Equal(t, arcata(), e.Location())
	assert.Equal(t, DefaultSolarConstant, e.SolarConstant())
	assert.Equal(t, config.DefaultLocalStandardTime, e.LocalStandardTime())
	assert.Nil(t, e.SiteAltitude())

	n, err := e.DayNumber("")
	require.NoError(t, err)
	assert.Equal(t, 121, n)

	s, err := e.Compute()
	require.NoError(t, err)
	direct, err := Compute(DefaultSolarConstant, arcata(), time.Date(2019, 5, 1, 12, 0, 0, 0, pst))
	require.NoError(t, err)

	assert.True(t, s.LocalTime.Equal(direct.LocalTime))
	assert.True(t, s.SolarTime.Equal(direct.SolarTime))
	assert.Equal(t, direct.DayNumber, s.DayNumber)
	assert.Equal(t, direct.Zenith, s.Zenith)
	assert.Equal(t, direct.Altitude, s.Altitude)
	assert.Empty(t, s.Advisories)
}

func TestEngineInvalidLocation(t *testing.T) {
	cfg := config.Defaults()
	cfg.Longitude = -124.0828

	_, err := NewEngine(cfg)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "longitude", rangeErr.Param)
}

func TestEngineCopiesConfig(t *testing.T) {
	alt := 100.0
	cfg := config.Defaults()
	cfg.SiteAltitude = &alt

	e := newTestEngine(t, cfg)
	alt = 5000

	require.NotNil(t, e.SiteAltitude())
	assert.Equal(t, 100.0, *e.SiteAltitude())
}

func TestEngineMissingOffset(t *testing.T) {
	e := newTestEngine(t, config.Defaults())
	const noOffset = "May 1, 2019 12:00 PM"

	_, err := e.SolarTime(noOffset)
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.ErrorIs(t, err, timestamp.ErrMissingOffset)
	assert.Equal(t, noOffset, formatErr.Input)

	_, err = e.SolarNoon(noOffset)
	assert.ErrorIs(t, err, timestamp.ErrMissingOffset)

	_, err = e.ComputeAt(noOffset)
	assert.ErrorIs(t, err, timestamp.ErrMissingOffset)

	// The day number alone needs no offset
	n, err := e.DayNumber(noOffset)
	require.NoError(t, err)
	assert.Equal(t, 121, n)

	cfg := config.Defaults()
	cfg.LocalStandardTime = noOffset
	_, err = newTestEngine(t, cfg).Compute()
	assert.ErrorIs(t, err, timestamp.ErrMissingOffset)
}

func TestEngineUnparseable(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	for _, s := range []string{"yesterday at noon", "13/45/2019 -08:00", "   "} {
		_, err := e.ComputeAt(s)
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr), "%q", s)
		assert.ErrorIs(t, err, timestamp.ErrUnparseable)
		assert.Equal(t, timestamp.ErrUnparseable.Error(), formatErr.Reason)

		_, err = e.DayNumber(s)
		assert.True(t, errors.As(err, &formatErr), "%q", s)
	}
}

func TestEngineDayNumberLeapYear(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	n, err := e.DayNumber("Dec 30, 2020")
	require.NoError(t, err)
	assert.Equal(t, 365, n)

	_, err = e.DayNumber("Dec 31, 2020")
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestEngineSolarNoon(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	noon, err := e.SolarNoon("")
	require.NoError(t, err)
	assert.Equal(t, "12:13", noon.Format("15:04"))

	st, err := SolarTime(noon, e.Location().Longitude)
	require.NoError(t, err)
	assert.Equal(t, "2019-05-01T12:00:00-08:00", st.Format(time.RFC3339))

	d, err := e.SunriseSunset("")
	require.NoError(t, err)
	assert.True(t, d.SolarNoon.Equal(noon))
}

func TestEngineDateOmittedAdvisory(t *testing.T) {
	var got []Advisory
	e := newTestEngine(t, config.Defaults(), WithAdvisoryHandler(func(a Advisory) {
		got = append(got, a)
	}))

	s, err := e.ComputeAt("9:00 AM -08:00")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-09T09:00:00-08:00", s.LocalTime.Format(time.RFC3339))
	assert.Equal(t, 69, s.DayNumber)

	require.Len(t, got, 1)
	assert.Equal(t, AdvisoryDateOmitted, got[0].Code)
	assert.Equal(t, "9:00 AM -08:00", got[0].Input)
	assert.Equal(t, got, s.Advisories)

	// Dated input raises nothing
	_, err = e.ComputeAt("Mar 9, 2024 9:00 AM -08:00")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEngineLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEngine(t, config.Defaults(), WithLogger(zap.New(core).Sugar()))

	_, err := e.Compute()
	require.NoError(t, err)

	computed := logs.FilterMessage("computed solar snapshot")
	require.Equal(t, 1, computed.Len())
	fields := computed.All()[0].ContextMap()
	assert.Equal(t, int64(121), fields["day_number"])
	assert.Equal(t, "2019-05-01T12:00:00-08:00", fields["local_time"])

	_, err = e.ComputeAt("3:15 PM UTC-8")
	require.NoError(t, err)

	advisories := logs.FilterMessage("solar advisory")
	require.Equal(t, 1, advisories.Len())
	entry := advisories.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, string(AdvisoryDateOmitted), entry.ContextMap()["code"])
}

func TestEngineAirMass(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	_, err := e.AirMass(80)
	var missing *MissingParameterError
	assert.True(t, errors.As(err, &missing))

	am, err := e.AirMass(60)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, am, 1e-9)

	cfg := config.Defaults()
	cfg.SiteAltitude = meters(1000)
	am, err = newTestEngine(t, cfg).AirMass(80)
	require.NoError(t, err)
	assert.InDelta(t, 4.9613, am, 1e-3)
}

func TestEngineProfile(t *testing.T) {
	e := newTestEngine(t, config.Defaults())

	// No offset: the configured time's -08:00 is used
	p, err := e.Profile("May 1, 2019", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "2019-05-01", p.Date)
	require.Len(t, p.Points, 24)
	_, off := p.Points[0].LocalTime.Zone()
	assert.Equal(t, -8*3600, off)

	p, err = e.Profile("2019-05-01 00:00 +02:00", 6*time.Hour)
	require.NoError(t, err)
	require.Len(t, p.Points, 4)
	_, off = p.Points[0].LocalTime.Zone()
	assert.Equal(t, 2*3600, off)

	_, err = e.Profile("", 0)
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestEngineProfileAdvisories(t *testing.T) {
	var got []Advisory
	cfg := config.Defaults()
	cfg.LocalStandardTime = "9:00 AM -08:00"
	e := newTestEngine(t, cfg, WithAdvisoryHandler(func(a Advisory) {
		got = append(got, a)
	}))

	p, err := e.Profile("", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", p.Date)
	require.Len(t, got, 1)
	assert.Equal(t, AdvisoryDateOmitted, got[0].Code)
	assert.Equal(t, got, p.Advisories)

	// Borrowing the configured offset does not re-raise its advisory
	p, err = e.Profile("May 1, 2019", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "2019-05-01", p.Date)
	assert.Empty(t, p.Advisories)
	assert.Len(t, got, 1)

	cfg.LocalStandardTime = "May 1, 2019 12:00 PM"
	_, err = newTestEngine(t, cfg).Profile("May 1, 2019", time.Hour)
	assert.ErrorIs(t, err, timestamp.ErrMissingOffset)
}

func TestEngineArrayYield(t *testing.T) {
	_, err := newTestEngine(t, config.Defaults()).ArrayYield(5000)
	var missing *MissingParameterError
	assert.True(t, errors.As(err, &missing))

	cfg := config.Defaults()
	area, eff := 10.0, 0.2
	cfg.Array = &config.ArrayData{SurfaceAreaM2: &area, Efficiency: &eff}

	wh, err := newTestEngine(t, cfg).ArrayYield(5000)
	require.NoError(t, err)
	assert.InDelta(t, 10000, wh, 1e-9)
}
