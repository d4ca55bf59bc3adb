package roman

import (
	"errors"
	"fmt"
)

var (
	// ErrRange is returned when a value falls outside the supported range.
	ErrRange = errors.New("numeral value out of range")

	// ErrInvalidFormat is returned when a string is not a well-formed numeral.
	ErrInvalidFormat = errors.New("invalid numeral format")

	// ErrUnknownSymbol is returned when a symbol is not part of the table.
	ErrUnknownSymbol = errors.New("unknown numeral symbol")

	// ErrUnknownNotation is returned when a notation name cannot be parsed.
	ErrUnknownNotation = errors.New("unknown notation")

	// ErrInvalidConfig is returned by NewCodecFromConfig for an unusable Config.
	ErrInvalidConfig = errors.New("invalid codec configuration")
)

// RangeError reports a value outside [Min, Max].
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Value < e.Min {
		return fmt.Sprintf("%s: %d is below the lower bound %d", ErrRange, e.Value, e.Min)
	}
	return fmt.Sprintf("%s: %d exceeds the upper bound %d", ErrRange, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// FormatError reports why a string was rejected by Decode.
// Fragment holds the offending character or substring when one can be named.
type FormatError struct {
	Input    string
	Fragment string
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%s %q: %s", ErrInvalidFormat, e.Input, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s %q", ErrInvalidFormat, e.Input, e.Reason, e.Fragment)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

func newRangeError(value, max int) *RangeError {
	return &RangeError{Value: value, Min: MinValue, Max: max}
}

func newFormatError(input, fragment, reason string) *FormatError {
	return &FormatError{Input: input, Fragment: fragment, Reason: reason}
}

// IsRangeError reports whether err is, or wraps, a *RangeError.
func IsRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}
