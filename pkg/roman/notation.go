package roman

import "strings"

// Notation selects the symbol set used by Encode.
type Notation int

const (
	// Subtractive is the canonical notation (4 is IV). It is the zero value.
	Subtractive Notation = iota
	// Additive repeats single letters only (4 is IIII).
	Additive
)

// String returns the lower-case notation name, as accepted by ParseNotation.
func (n Notation) String() string {
	switch n {
	case Subtractive:
		return "subtractive"
	case Additive:
		return "additive"
	default:
		return "unknown"
	}
}

// ParseNotation accepts "subtractive" or "additive" in any case. An empty
// string selects Subtractive.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subtractive":
		return Subtractive, nil
	case "additive":
		return Additive, nil
	default:
		return Subtractive, ErrUnknownNotation
	}
}

func (n Notation) valid() bool {
	return n == Subtractive || n == Additive
}

// order returns the encoding symbols for n. Callers check valid first.
func (n Notation) order() []NumeralValue {
	if n == Additive {
		return additiveOrder
	}
	return subtractiveOrder
}
