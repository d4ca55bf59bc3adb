package roman

import "slices"

const (
	// MinValue is the smallest number that has a Roman numeral.
	MinValue = 1
	// StandardBound is the largest number expressible without repeating M
	// four times.
	StandardBound = 3999
	// ExtendedBound is the largest number accepted when M may repeat four
	// times (MMMMCMXCIX).
	ExtendedBound = 4999

	// Nulla is the medieval word for zero, returned by the zero Numeral.
	Nulla = "NULLA"
)

// NumeralValue pairs a numeral symbol with the value it denotes.
type NumeralValue struct {
	Symbol string
	Value  int
	// Alias marks historical letters that are understood on decode only.
	Alias bool
}

// symbols is ordered by descending value; within equal values the canonical
// symbol comes first.
var symbols = []NumeralValue{
	{Symbol: "M", Value: 1000},
	{Symbol: "CM", Value: 900},
	{Symbol: "D", Value: 500},
	{Symbol: "Q", Value: 500, Alias: true},
	{Symbol: "CD", Value: 400},
	{Symbol: "P", Value: 400, Alias: true},
	{Symbol: "G", Value: 400, Alias: true},
	{Symbol: "C", Value: 100},
	{Symbol: "XC", Value: 90},
	{Symbol: "L", Value: 50},
	{Symbol: "XL", Value: 40},
	{Symbol: "F", Value: 40, Alias: true},
	{Symbol: "O", Value: 11, Alias: true},
	{Symbol: "X", Value: 10},
	{Symbol: "IX", Value: 9},
	{Symbol: "V", Value: 5},
	{Symbol: "IV", Value: 4},
	{Symbol: "I", Value: 1},
}

// defaultCodec reads these tables during variable initialization, so they
// must stay initializers and never move into an init function.
var (
	valueBySymbol = indexSymbols()

	subtractiveOrder = filterSymbols(func(s NumeralValue) bool { return !s.Alias })
	additiveOrder    = filterSymbols(func(s NumeralValue) bool { return !s.Alias && len(s.Symbol) == 1 })

	// parse orders, with and without alias letters. Aliases sit directly
	// after the canonical symbols of the same value, so O is tried before X
	// and F after XL.
	strictParseOrder = filterSymbols(func(s NumeralValue) bool { return !s.Alias })
	aliasParseOrder  = slices.Clone(symbols)

	// subtractivePairs holds the two-letter symbols, keyed by symbol.
	subtractivePairs = pairSymbols()

	// rank of each canonical letter in M>D>C>L>X>V>I, lower is larger
	letterRank = map[byte]int{'M': 0, 'D': 1, 'C': 2, 'L': 3, 'X': 4, 'V': 5, 'I': 6}
)

func indexSymbols() map[string]NumeralValue {
	m := make(map[string]NumeralValue, len(symbols))
	for _, s := range symbols {
		m[s.Symbol] = s
	}
	return m
}

func filterSymbols(keep func(NumeralValue) bool) []NumeralValue {
	var out []NumeralValue
	for _, s := range symbols {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func pairSymbols() map[string]int {
	m := make(map[string]int)
	for _, s := range symbols {
		if !s.Alias && len(s.Symbol) == 2 {
			m[s.Symbol] = s.Value
		}
	}
	return m
}

// Symbols returns a copy of the full symbol table, aliases included, in
// descending order of value.
func Symbols() []NumeralValue {
	return slices.Clone(symbols)
}

// ValueOf returns the value of a single table symbol such as "XL" or "M".
// Symbols are case-sensitive and must be upper case.
func ValueOf(symbol string) (int, error) {
	s, ok := valueBySymbol[symbol]
	if !ok {
		return 0, ErrUnknownSymbol
	}
	return s.Value, nil
}

// SubtractiveOrder returns the symbols used by subtractive encoding, strictly
// descending by value.
func SubtractiveOrder() []string { return symbolNames(subtractiveOrder) }

// AdditiveOrder returns the single-letter symbols used by additive encoding,
// strictly descending by value.
func AdditiveOrder() []string { return symbolNames(additiveOrder) }

// ParseOrder returns the candidate order used by Decode. Two-letter symbols
// precede the single letters they start with. When aliases is true the
// historical letters are included.
func ParseOrder(aliases bool) []string {
	if aliases {
		return symbolNames(aliasParseOrder)
	}
	return symbolNames(strictParseOrder)
}

func symbolNames(values []NumeralValue) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Symbol
	}
	return names
}

// isKnownLetter reports whether c occurs in at least one symbol of the order.
func isKnownLetter(c rune, order []NumeralValue) bool {
	for _, s := range order {
		for _, r := range s.Symbol {
			if r == c {
				return true
			}
		}
	}
	return false
}
