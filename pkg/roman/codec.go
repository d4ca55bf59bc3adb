package roman

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Codec converts between integers and numerals under a fixed configuration.
// The zero value is not usable; create codecs with NewCodec.
type Codec struct {
	upperBound int
	aliases    bool
	canonical  bool
	parseOrder []NumeralValue
	// maxRun is the longest permitted run of I, X, C and M respectively.
	maxRun map[byte]int
}

var defaultCodec = NewCodec()

// NewCodec returns a codec configured by opts. Without options it accepts
// 1..3999, rejects aliases and enforces canonical spelling.
func NewCodec(opts ...Option) *Codec {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Codec{
		upperBound: cfg.upperBound,
		aliases:    cfg.aliases,
		canonical:  cfg.canonical,
		parseOrder: strictParseOrder,
		maxRun:     map[byte]int{'I': 3, 'X': 3, 'C': 3, 'M': 3},
	}
	if cfg.aliases {
		c.parseOrder = aliasParseOrder
	}
	if extra := cfg.upperBound / 1000; extra > 3 {
		c.maxRun['M'] = extra
	}
	return c
}

// Default returns the codec used by the package-level functions.
func Default() *Codec { return defaultCodec }

// UpperBound returns the largest value the codec accepts.
func (c *Codec) UpperBound() int { return c.upperBound }

// Encode returns the numeral for n in the given notation.
// It returns a *RangeError when n is outside [1, UpperBound] and
// ErrUnknownNotation for a notation other than Subtractive or Additive.
func (c *Codec) Encode(n int, notation Notation) (string, error) {
	if !notation.valid() {
		return "", ErrUnknownNotation
	}
	if n < MinValue || n > c.upperBound {
		return "", newRangeError(n, c.upperBound)
	}
	return encode(n, notation.order()), nil
}

// encode emits symbols greedily. A two-letter symbol is emitted at most once
// before the cursor moves on; single letters are retried.
func encode(n int, order []NumeralValue) string {
	var b strings.Builder
	b.Grow(16)

	remainder := n
	for i := 0; remainder > 0; {
		s := order[i]
		if remainder < s.Value {
			i++
			continue
		}
		b.WriteString(s.Symbol)
		remainder -= s.Value
		if len(s.Symbol) > 1 {
			i++
		}
	}
	return b.String()
}

// Decode returns the integer denoted by s. Case is ignored.
// Malformed input yields a *FormatError, values above the bound a *RangeError.
func (c *Codec) Decode(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, newFormatError(s, "", "empty input")
	}

	numeral := normalize(s)

	for _, r := range numeral {
		if !isKnownLetter(r, c.parseOrder) {
			return 0, newFormatError(s, string(r), "unknown character")
		}
	}

	if err := c.validate(s, numeral); err != nil {
		return 0, err
	}

	total, aliased, rest := c.accumulate(numeral)
	if rest != "" {
		return 0, newFormatError(s, rest, "unparsable remainder")
	}
	if total > c.upperBound {
		return 0, newRangeError(total, c.upperBound)
	}

	if c.canonical && !aliased {
		if want := encode(total, subtractiveOrder); want != numeral {
			return 0, newFormatError(s, want, "non-canonical spelling, expected")
		}
	}

	return total, nil
}

// accumulate consumes the longest matching symbol at each step and returns
// the sum, whether an alias letter was used and any unconsumed suffix.
func (c *Codec) accumulate(numeral string) (total int, aliased bool, rest string) {
	rest = numeral
	for i := 0; rest != "" && i < len(c.parseOrder); {
		s := c.parseOrder[i]
		if !strings.HasPrefix(rest, s.Symbol) {
			i++
			continue
		}
		total += s.Value
		aliased = aliased || s.Alias
		rest = rest[len(s.Symbol):]
		if len(s.Symbol) > 1 {
			i++
		}
	}
	return total, aliased, rest
}

// Parse decodes s into a Numeral bound to this codec's range.
func (c *Codec) Parse(s string) (Numeral, error) {
	n, err := c.Decode(s)
	if err != nil {
		return Numeral{}, err
	}
	return Numeral{number: n, upperBound: c.upperBound}, nil
}

// New wraps n in a Numeral after checking it against the codec's range.
func (c *Codec) New(n int) (Numeral, error) {
	if n < MinValue || n > c.upperBound {
		return Numeral{}, newRangeError(n, c.upperBound)
	}
	return Numeral{number: n, upperBound: c.upperBound}, nil
}

// normalize folds compatibility characters (Ⅻ becomes XII), trims
// surrounding space and upper-cases ASCII letters. Other letters are left
// alone so that, for example, the dotless ı fails the character check instead
// of becoming I.
func normalize(s string) string {
	return strings.Map(upperASCII, strings.TrimSpace(norm.NFKC.String(s)))
}

func upperASCII(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// Encode returns the numeral for n using the default codec.
func Encode(n int, notation Notation) (string, error) {
	return defaultCodec.Encode(n, notation)
}

// Decode returns the integer denoted by s using the default codec.
func Decode(s string) (int, error) {
	return defaultCodec.Decode(s)
}

// Parse decodes s into a Numeral using the default codec.
func Parse(s string) (Numeral, error) {
	return defaultCodec.Parse(s)
}

// New wraps n in a Numeral bounded at StandardBound.
func New(n int) (Numeral, error) {
	return defaultCodec.New(n)
}
