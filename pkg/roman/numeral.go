package roman

// Numeral is a validated number in [1, upper bound] that renders as a Roman
// numeral. The zero value holds no number and prints as Nulla.
//
// Numeral implements encoding.TextMarshaler and encoding.TextUnmarshaler, so
// it travels as a numeral string in JSON, YAML and env-based config.
type Numeral struct {
	number     int
	upperBound int
}

// Number returns the integer value, or 0 for the zero Numeral.
func (n Numeral) Number() int { return n.number }

// IsZero reports whether n holds no number.
func (n Numeral) IsZero() bool { return n.number == 0 }

// String returns the canonical subtractive spelling.
func (n Numeral) String() string {
	return n.Format(Subtractive)
}

// Format returns the spelling of n in the given notation. Unknown notations
// format as Subtractive.
func (n Numeral) Format(notation Notation) string {
	if n.number < MinValue {
		return Nulla
	}
	if !notation.valid() {
		notation = Subtractive
	}
	return encode(n.number, notation.order())
}

func (n Numeral) bound() int {
	if n.upperBound == 0 {
		return StandardBound
	}
	return n.upperBound
}

// Add returns n+m. The result keeps the receiver's upper bound and a sum
// above it is a *RangeError.
func (n Numeral) Add(m Numeral) (Numeral, error) {
	return n.withNumber(n.number + m.number)
}

// Sub returns n-m. Results below 1 are a *RangeError; nothing is clamped.
func (n Numeral) Sub(m Numeral) (Numeral, error) {
	return n.withNumber(n.number - m.number)
}

func (n Numeral) withNumber(v int) (Numeral, error) {
	limit := n.bound()
	if v < MinValue || v > limit {
		return Numeral{}, newRangeError(v, limit)
	}
	return Numeral{number: v, upperBound: limit}, nil
}

// MarshalText encodes n as its canonical numeral. The zero Numeral is
// rejected with a *RangeError.
func (n Numeral) MarshalText() ([]byte, error) {
	if n.number < MinValue {
		return nil, newRangeError(n.number, n.bound())
	}
	return []byte(n.String()), nil
}

// UnmarshalText decodes a numeral against the receiver's upper bound, so a
// Numeral obtained from an extended codec reads back the MMMM values it
// wrote. A zero receiver uses StandardBound.
//
//	ext := roman.NewCodec(roman.WithUpperBound(roman.ExtendedBound))
//	year, _ := ext.New(1)
//	err := year.UnmarshalText([]byte("MMMMD")) // 4500
func (n *Numeral) UnmarshalText(text []byte) error {
	codec := defaultCodec
	if b := n.bound(); b != codec.upperBound {
		codec = NewCodec(WithUpperBound(b))
	}
	v, err := codec.Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
