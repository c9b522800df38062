// Package timestamp parses human-readable local date/time strings such as
// "May 1, 2019 12:00 PM -08:00" into a time.Time, keeping track of whether
// the text carried an explicit UTC offset and whether the date was left out.
//
// The parser never invents an offset. Text without one parses successfully
// but comes back with HasOffset == false so callers can reject it.
package timestamp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnparseable is returned when the text matches none of the known layouts.
	ErrUnparseable = errors.New("not a valid date format")

	// ErrMissingOffset is used by callers that require an explicit UTC offset.
	ErrMissingOffset = errors.New("no explicit UTC offset, e.g. `1/1/2019 12:00 PM -06:00`")
)

// Timestamp is the result of parsing a local date/time string.
type Timestamp struct {
	Time        time.Time // parsed instant; in a fixed zone when HasOffset is true, otherwise UTC
	HasOffset   bool      // true when the text carried an explicit UTC offset
	DateOmitted bool      // true when the text had a time but no date and today's date was substituted
}

// Parser turns text into a Timestamp.
type Parser interface {
	Parse(text string) (Timestamp, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc func(text string) (Timestamp, error)

// Parse calls f(text).
func (f ParserFunc) Parse(text string) (Timestamp, error) {
	return f(text)
}

// Option configures a LayoutParser.
type Option func(*LayoutParser)

// WithClock sets the clock used to fill in the date for time-only text.
func WithClock(now func() time.Time) Option {
	return func(p *LayoutParser) {
		p.now = now
	}
}

// LayoutParser is the default Parser. It tries a fixed set of time.Parse
// layouts built from common date, clock and offset spellings.
type LayoutParser struct {
	now func() time.Time
}

// NewLayoutParser creates a LayoutParser
func NewLayoutParser(opts ...Option) *LayoutParser {
	p := &LayoutParser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Default is a LayoutParser using the wall clock.
var Default Parser = NewLayoutParser()

// Parse parses text with the Default parser.
func Parse(text string) (Timestamp, error) {
	return Default.Parse(text)
}

// Parse implements Parser.
func (p *LayoutParser) Parse(text string) (Timestamp, error) {
	s := normalize(text)
	if s == "" {
		return Timestamp{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	for _, l := range layouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}

		if l.offset {
			t = pinOffset(t)
		}

		ts := Timestamp{Time: t, HasOffset: l.offset}
		if !l.date {
			ts.Time = p.withToday(t, l.offset)
			ts.DateOmitted = true
		}
		return ts, nil
	}

	return Timestamp{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
}

// pinOffset moves t into a fixed zone carrying its own offset. time.Parse
// hands back time.Local when the offset happens to match the local zone.
func pinOffset(t time.Time) time.Time {
	_, off := t.Zone()
	return t.In(FixedZone(off))
}

// FixedZone returns a fixed-offset location named like "UTC-08:00".
func FixedZone(offsetSeconds int) *time.Location {
	sign := '+'
	abs := offsetSeconds
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, abs%3600/60)
	return time.FixedZone(name, offsetSeconds)
}

// withToday moves a clock-only time onto today's date as seen from the
// parsed offset (or UTC when no offset was given).
func (p *LayoutParser) withToday(t time.Time, hasOffset bool) time.Time {
	loc := time.UTC
	if hasOffset {
		loc = t.Location()
	}
	y, m, d := p.now().In(loc).Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

var (
	// UTC-8, GMT+05:30, UTC+0530, trailing bare UTC/GMT
	zoneNameOffset = regexp.MustCompile(`(?:UTC|GMT)\s*([+-])(\d{1,2})(?::?(\d{2}))?$`)
	zoneNameOnly   = regexp.MustCompile(`\s(?:UTC|GMT)$`)
)

// normalize upper-cases the text (AM/PM matching in time.Parse is case
// sensitive), drops commas, collapses whitespace and rewrites named-zone
// offsets into numeric ones.
func normalize(text string) string {
	s := strings.ToUpper(text)
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.Join(strings.Fields(s), " ")

	s = zoneNameOffset.ReplaceAllStringFunc(s, func(m string) string {
		g := zoneNameOffset.FindStringSubmatch(m)
		hours, _ := strconv.Atoi(g[2])
		mins := g[3]
		if mins == "" {
			mins = "00"
		}
		return fmt.Sprintf("%s%02d:%s", g[1], hours, mins)
	})
	s = zoneNameOnly.ReplaceAllString(s, " +00:00")

	return s
}
