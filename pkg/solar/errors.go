package solar

import (
	"errors"
	"fmt"
	"math"
)

// ErrImplicitZone is wrapped by a FormatError when a time.Time sits in the
// process-local zone instead of a zone the caller chose explicitly.
var ErrImplicitZone = errors.New("time is in the implicit local zone; use an explicit offset or named zone")

// FormatError reports a malformed date/time string or a timestamp without an
// explicit UTC offset.
type FormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("format error: %s", e.Reason)
	}
	return fmt.Sprintf("format error: %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError reports a numeric input outside its valid domain.
type RangeError struct {
	Param string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: %s must be between %g and %g (inclusive), got %g", e.Param, e.Min, e.Max, e.Value)
}

// MissingParameterError reports that an auxiliary input required for this
// particular evaluation was not supplied.
type MissingParameterError struct {
	Param  string
	Reason string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter: %s: %s", e.Param, e.Reason)
}

// DomainError reports that a formula's mathematical preconditions do not
// hold for the given inputs, e.g. a zero divisor.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s: %s", e.Op, e.Reason)
}

// AdvisoryCode identifies the kind of a non-fatal Advisory.
type AdvisoryCode string

// AdvisoryDateOmitted means the local time string had no date and today's
// date was used.
const AdvisoryDateOmitted AdvisoryCode = "date-omitted"

// Advisory is a non-fatal notice about the inputs. It is never returned as
// an error.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Input   string       `json:"input"`
	Message string       `json:"message"`
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s: %s (%q)", a.Code, a.Message, a.Input)
}

// AdvisoryHandler receives advisories as they are raised.
type AdvisoryHandler func(Advisory)

func checkRange(param string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return &RangeError{Param: param, Value: v, Min: min, Max: max}
	}
	return nil
}
