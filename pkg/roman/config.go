package roman

import (
	"errors"
	"fmt"
)

// Config describes a codec through environment variables.
type Config struct {
	UpperBound int  `env:"ROMAN_UPPER_BOUND" envDefault:"3999"` // UpperBound is the largest accepted value, at most 4999.
	Aliases    bool `env:"ROMAN_ALIASES" envDefault:"false"`    // Aliases enables medieval letters on decode.
	Lenient    bool `env:"ROMAN_LENIENT" envDefault:"false"`    // Lenient disables the canonical form check.
}

// NewCodecFromConfig creates a Codec from cfg. A zero UpperBound keeps the
// default. Unlike the options, an out-of-range bound is returned as an error
// wrapping ErrInvalidConfig since it usually comes from user input.
func NewCodecFromConfig(cfg Config, opts ...Option) (*Codec, error) {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.UpperBound != 0 {
		if cfg.UpperBound < MinValue || cfg.UpperBound > ExtendedBound {
			return nil, errors.Join(ErrInvalidConfig,
				fmt.Errorf("upper bound %d is outside [%d, %d]", cfg.UpperBound, MinValue, ExtendedBound))
		}
		configOpts = append(configOpts, WithUpperBound(cfg.UpperBound))
	}
	if cfg.Aliases {
		configOpts = append(configOpts, WithAliases(true))
	}
	if cfg.Lenient {
		configOpts = append(configOpts, WithCanonicalCheck(false))
	}

	configOpts = append(configOpts, opts...)

	return NewCodec(configOpts...), nil
}
