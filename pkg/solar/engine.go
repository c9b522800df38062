package solar

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chrissnell/solargeometry/pkg/config"
	"github.com/chrissnell/solargeometry/pkg/timestamp"
)

// Engine evaluates the solar geometry functions for a configured location,
// solar constant and local standard time. Every method taking a local time
// string uses the configured one when the string is empty.
//
// An Engine is immutable once built and safe for concurrent use as long as
// its parser and advisory handler are.
type Engine struct {
	gsc          float64
	location     Location
	localTime    string
	siteAltitude *float64
	array        *config.ArrayData

	parser timestamp.Parser
	logger *zap.SugaredLogger
	advise AdvisoryHandler
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithParser replaces the local time parser.
func WithParser(p timestamp.Parser) EngineOption {
	return func(e *Engine) {
		e.parser = p
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithAdvisoryHandler sets the function advisories are delivered to. The
// default logs them at warn level.
func WithAdvisoryHandler(h AdvisoryHandler) EngineOption {
	return func(e *Engine) {
		e.advise = h
	}
}

// NewEngine creates an engine from a configuration record. The record is
// copied. The location is validated here, the local time string when it is
// first used.
func NewEngine(cfg config.ConfigData, opts ...EngineOption) (*Engine, error) {
	cfg = cfg.Clone()

	loc, err := NewLocation(cfg.Latitude, cfg.Longitude)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		gsc:          cfg.SolarConstant,
		location:     loc,
		localTime:    cfg.LocalStandardTime,
		siteAltitude: cfg.SiteAltitude,
		array:        cfg.Array,
		parser:       timestamp.Default,
		logger:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.advise == nil {
		e.advise = func(a Advisory) {
			e.logger.Warnw("solar advisory", "code", string(a.Code), "input", a.Input, "message", a.Message)
		}
	}

	return e, nil
}

// Location returns the configured location.
func (e *Engine) Location() Location { return e.location }

// SolarConstant returns the configured G_sc.
func (e *Engine) SolarConstant() float64 { return e.gsc }

// LocalStandardTime returns the configured local time string.
func (e *Engine) LocalStandardTime() string { return e.localTime }

// SiteAltitude returns the configured site altitude in meters, or nil.
func (e *Engine) SiteAltitude() *float64 { return e.siteAltitude }

// Array returns the configured array metadata, or nil.
func (e *Engine) Array() *config.ArrayData { return e.array }

// ParseLocal parses a local standard time string, or the configured one if
// s is empty. The text must carry an explicit UTC offset. Text without a
// date gets today's date and raises an AdvisoryDateOmitted advisory, which
// is also returned.
func (e *Engine) ParseLocal(s string) (time.Time, []Advisory, error) {
	ts, err := e.parse(s)
	if err != nil {
		return time.Time{}, nil, err
	}
	if !ts.HasOffset {
		return time.Time{}, nil, &FormatError{
			Input:  e.orDefault(s),
			Reason: timestamp.ErrMissingOffset.Error(),
			Err:    timestamp.ErrMissingOffset,
		}
	}

	var advisories []Advisory
	if ts.DateOmitted {
		a := Advisory{
			Code:    AdvisoryDateOmitted,
			Input:   e.orDefault(s),
			Message: fmt.Sprintf("no date given, using today's date %s", ts.Time.Format("2006-01-02")),
		}
		e.advise(a)
		advisories = append(advisories, a)
	}
	return ts.Time, advisories, nil
}

func (e *Engine) orDefault(s string) string {
	if s == "" {
		return e.localTime
	}
	return s
}

func (e *Engine) parse(s string) (timestamp.Timestamp, error) {
	text := e.orDefault(s)
	ts, err := e.parser.Parse(text)
	if err != nil {
		reason := timestamp.ErrUnparseable.Error()
		if !errors.Is(err, timestamp.ErrUnparseable) {
			reason = err.Error()
		}
		return timestamp.Timestamp{}, &FormatError{Input: text, Reason: reason, Err: err}
	}
	return ts, nil
}

// DayNumber returns the day number of a date or date/time string, or of the
// configured local time when s is empty. No offset is required.
func (e *Engine) DayNumber(s string) (int, error) {
	return DayNumberFromString(e.orDefault(s), e.parser)
}

// SolarTime converts a local standard time string to apparent solar time at
// the configured longitude.
func (e *Engine) SolarTime(s string) (time.Time, error) {
	local, _, err := e.ParseLocal(s)
	if err != nil {
		return time.Time{}, err
	}
	return SolarTime(local, e.location.Longitude)
}

// SolarNoon returns the local standard clock time of solar noon on the date
// of s at the configured longitude.
func (e *Engine) SolarNoon(s string) (time.Time, error) {
	local, _, err := e.ParseLocal(s)
	if err != nil {
		return time.Time{}, err
	}
	return SolarNoon(local, e.location.Longitude)
}

// SunriseSunset returns sunrise and sunset on the date of s at the
// configured location.
func (e *Engine) SunriseSunset(s string) (Daylight, error) {
	local, _, err := e.ParseLocal(s)
	if err != nil {
		return Daylight{}, err
	}
	return SunriseSunset(e.location, local)
}

// Compute computes a snapshot for the configured local time.
func (e *Engine) Compute() (Snapshot, error) {
	return e.ComputeAt("")
}

// ComputeAt computes a snapshot for a local standard time string.
func (e *Engine) ComputeAt(s string) (Snapshot, error) {
	local, advisories, err := e.ParseLocal(s)
	if err != nil {
		return Snapshot{}, err
	}

	snap, err := compute(e.gsc, e.location, local, advisories)
	if err != nil {
		return Snapshot{}, err
	}

	e.logger.Debugw("computed solar snapshot",
		"location", e.location.String(),
		"local_time", local.Format(time.RFC3339),
		"day_number", snap.DayNumber,
		"solar_time", snap.SolarTime.Format(time.RFC3339),
		"zenith", snap.Zenith,
		"altitude", snap.Altitude,
	)
	return snap, nil
}

// AirMass returns the air mass for a zenith angle using the configured site
// altitude.
func (e *Engine) AirMass(zenith float64) (float64, error) {
	return AirMass(zenith, e.siteAltitude)
}

// Profile computes a daily profile for the date in s, or the configured
// local time's date when s is empty. A date without a UTC offset takes the
// offset of the configured local time. A date-omitted advisory is raised at
// most once and kept on the returned Profile.
func (e *Engine) Profile(s string, step time.Duration) (Profile, error) {
	ts, err := e.parse(s)
	if err != nil {
		return Profile{}, err
	}

	day := ts.Time
	if !ts.HasOffset {
		configured, err := e.parse("")
		if err != nil {
			return Profile{}, err
		}
		if !configured.HasOffset {
			return Profile{}, &FormatError{
				Input:  e.localTime,
				Reason: timestamp.ErrMissingOffset.Error(),
				Err:    timestamp.ErrMissingOffset,
			}
		}
		y, m, d := day.Date()
		day = time.Date(y, m, d, 0, 0, 0, 0, configured.Time.Location())
	}

	p, err := DailyProfile(e.gsc, e.location, day, step, e.siteAltitude)
	if err != nil {
		return Profile{}, err
	}

	if ts.DateOmitted {
		a := Advisory{
			Code:    AdvisoryDateOmitted,
			Input:   e.orDefault(s),
			Message: fmt.Sprintf("no date given, using today's date %s", p.Date),
		}
		e.advise(a)
		p.Advisories = append(p.Advisories, a)
	}

	e.logger.Debugw("computed daily profile",
		"location", e.location.String(),
		"date", p.Date,
		"samples", len(p.Points),
		"peak_altitude", p.Summary.PeakAltitude,
	)
	return p, nil
}

// ArrayYield estimates the energy in Wh an array with the configured
// surface area and efficiency collects from a horizontal insolation in
// Wh/m². It returns a *MissingParameterError when either is not configured.
func (e *Engine) ArrayYield(insolation float64) (float64, error) {
	if e.array == nil || e.array.SurfaceAreaM2 == nil {
		return 0, &MissingParameterError{Param: "array surface area", Reason: "array.surface_area_m2 is not configured"}
	}
	if e.array.Efficiency == nil {
		return 0, &MissingParameterError{Param: "array efficiency", Reason: "array.array_efficiency is not configured"}
	}
	return insolation * *e.array.SurfaceAreaM2 * *e.array.Efficiency, nil
}
