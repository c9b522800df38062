package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func TestParse(t *testing.T) {
	p := NewLayoutParser(fixedClock(time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)))

	tests := []struct {
		name        string
		input       string
		expected    time.Time // compared with Equal, so zone only matters through the offset
		offset      int       // expected offset in seconds when hasOffset
		hasOffset   bool
		dateOmitted bool
	}{
		{
			name:      "long form with numeric offset",
			input:     "May 1, 2019 12:00 PM -08:00",
			expected:  time.Date(2019, 5, 1, 20, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "lower case meridiem",
			input:     "may 1, 2019 12:00 pm -08:00",
			expected:  time.Date(2019, 5, 1, 20, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "slash date",
			input:     "1/1/2019 12:00 PM -06:00",
			expected:  time.Date(2019, 1, 1, 18, 0, 0, 0, time.UTC),
			offset:    -6 * 3600,
			hasOffset: true,
		},
		{
			name:      "RFC 3339",
			input:     "2019-05-01T12:00:00-08:00",
			expected:  time.Date(2019, 5, 1, 20, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "RFC 3339 zulu",
			input:     "2019-05-01T12:00:00Z",
			expected:  time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC),
			offset:    0,
			hasOffset: true,
		},
		{
			name:      "date with offset",
			input:     "2019-05-01 -08:00",
			expected:  time.Date(2019, 5, 1, 8, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "long date with offset",
			input:     "May 1, 2019 -08:00",
			expected:  time.Date(2019, 5, 1, 8, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "compact offset",
			input:     "2019-05-01 12:00 -0800",
			expected:  time.Date(2019, 5, 1, 20, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "UTC-prefixed offset with unicode minus",
			input:     "May 1 2019 12:00 PM, UTC−8",
			expected:  time.Date(2019, 5, 1, 20, 0, 0, 0, time.UTC),
			offset:    -8 * 3600,
			hasOffset: true,
		},
		{
			name:      "GMT half hour offset",
			input:     "2019-05-01 08:00 GMT+5:30",
			expected:  time.Date(2019, 5, 1, 2, 30, 0, 0, time.UTC),
			offset:    5*3600 + 1800,
			hasOffset: true,
		},
		{
			name:      "no offset",
			input:     "May 1, 2019 12:00 PM",
			expected:  time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC),
			hasOffset: false,
		},
		{
			name:      "date only",
			input:     "2019-05-01",
			expected:  time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC),
			hasOffset: false,
		},
		{
			// 05:00 UTC on Mar 10 is still Mar 9 at -08:00
			name:        "time only takes today in the parsed offset",
			input:       "12:00 PM -08:00",
			expected:    time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC),
			offset:      -8 * 3600,
			hasOffset:   true,
			dateOmitted: true,
		},
		{
			name:        "time only without offset",
			input:       "14:30",
			expected:    time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
			hasOffset:   false,
			dateOmitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := p.Parse(tt.input)
			require.NoError(t, err)

			assert.True(t, ts.Time.Equal(tt.expected), "Time = %v, expected %v", ts.Time, tt.expected)
			assert.Equal(t, tt.hasOffset, ts.HasOffset)
			assert.Equal(t, tt.dateOmitted, ts.DateOmitted)

			if tt.hasOffset {
				_, off := ts.Time.Zone()
				assert.Equal(t, tt.offset, off)
				assert.NotSame(t, time.Local, ts.Time.Location())
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "2019-13-45 12:00 -08:00", "May 1, 2019 25:00 PM -08:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParserFunc(t *testing.T) {
	called := false
	var p Parser = ParserFunc(func(text string) (Timestamp, error) {
		called = true
		return Timestamp{HasOffset: true}, nil
	})

	ts, err := p.Parse("anything")
	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, ts.HasOffset)
}

func TestFixedZone(t *testing.T) {
	tests := []struct {
		offset   int
		expected string
	}{
		{-8 * 3600, "UTC-08:00"},
		{0, "UTC+00:00"},
		{5*3600 + 1800, "UTC+05:30"},
		{-(3*3600 + 1800), "UTC-03:30"},
	}

	for _, tt := range tests {
		loc := FixedZone(tt.offset)
		if loc.String() != tt.expected {
			t.Errorf("FixedZone(%d) = %q, expected %q", tt.offset, loc.String(), tt.expected)
		}
	}
}
