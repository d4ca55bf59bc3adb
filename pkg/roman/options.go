package roman

import "fmt"

// Option configures a Codec.
type Option func(*config)

type config struct {
	upperBound int
	aliases    bool
	canonical  bool
}

func defaultConfig() *config {
	return &config{
		upperBound: StandardBound,
		aliases:    false,
		canonical:  true,
	}
}

// WithUpperBound sets the largest value the codec encodes or decodes.
// Values above StandardBound let M repeat four times. Panics outside
// [MinValue, ExtendedBound] so a misconfigured codec fails at startup.
func WithUpperBound(n int) Option {
	if n < MinValue || n > ExtendedBound {
		panic(fmt.Sprintf("WithUpperBound: %d is outside [%d, %d]", n, MinValue, ExtendedBound))
	}
	return func(c *config) { c.upperBound = n }
}

// WithAliases enables the historical letters O, F, P, G and Q on decode.
// Encode never emits them.
func WithAliases(enabled bool) Option {
	return func(c *config) { c.aliases = enabled }
}

// WithCanonicalCheck controls whether Decode rejects spellings that Encode
// would not produce, such as "XCX" for 100. Enabled by default.
func WithCanonicalCheck(enabled bool) Option {
	return func(c *config) { c.canonical = enabled }
}
