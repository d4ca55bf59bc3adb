// Package roman converts between integers and Roman numerals.
//
// Encoding walks a fixed symbol table from the largest value down and emits
// symbols greedily. Decoding normalizes the input, validates its structure and
// then consumes the longest matching symbol at every step, so that encoding
// and decoding are exact inverses over canonical subtractive notation.
//
// # Usage
//
//	import "github.com/numerals/romankit/pkg/roman"
//
//	s, err := roman.Encode(1994, roman.Subtractive)
//	// s == "MCMXCIV"
//
//	n, err := roman.Decode("mcmxciv")
//	// n == 1994
//
//	s, err = roman.Encode(4, roman.Additive)
//	// s == "IIII"
//
// # Notation
//
// Subtractive notation uses the two-letter symbols IV, IX, XL, XC, CD and CM
// and is the canonical form. Additive notation only repeats single letters
// (4 is "IIII", 900 is "DCCCC") and is produced on request; Decode never
// accepts it because it breaks the repetition rules.
//
// # Validation
//
// Decode rejects, in this order:
//
//   - empty or whitespace-only input
//   - characters that are not part of any known symbol
//   - V, L or D appearing more than once
//   - I, X, C or M repeated four or more times in a row
//   - repeated subtractive pairs such as IVIV or CMCM
//   - a smaller symbol before a larger one unless both form a subtractive pair
//   - input that cannot be fully composed from the symbol table
//   - values above the configured upper bound
//   - non-canonical spellings such as "XCX" (strict mode, the default)
//
// Format failures are reported as *FormatError and range failures as
// *RangeError. Both unwrap to a sentinel so callers can branch with errors.Is:
//
//	if _, err := roman.Decode(input); errors.Is(err, roman.ErrInvalidFormat) {
//		// bad input
//	}
//
// Input is folded with Unicode NFKC before validation, so the dedicated Roman
// numeral code points (U+2160 to U+217F, e.g. "Ⅻ") decode like their ASCII
// spelling. Only ASCII letters are upper-cased; "ıv" is rejected rather than
// read as IV.
//
// # Configuration
//
// The package-level functions use a strict codec bounded at 3999. A Codec built
// with options can raise the bound to 4999 (allowing MMMM), accept medieval
// alias letters (O=11, F=40, P=400, G=400, Q=500) on decode, or turn off the
// canonical form check:
//
//	c := roman.NewCodec(
//		roman.WithUpperBound(roman.ExtendedBound),
//		roman.WithAliases(true),
//	)
//
// Codecs can also be built from environment variables through Config and
// NewCodecFromConfig.
//
// # Thread Safety
//
// The symbol table is built once at package initialization and never written
// again. Codec values are immutable after construction. All functions and
// methods are safe for concurrent use.
package roman
