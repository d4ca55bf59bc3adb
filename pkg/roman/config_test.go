package roman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numerals/romankit/pkg/roman"
)

func TestNewCodecFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("zero config keeps defaults", func(t *testing.T) {
		t.Parallel()
		c, err := roman.NewCodecFromConfig(roman.Config{})
		require.NoError(t, err)
		assert.Equal(t, roman.StandardBound, c.UpperBound())

		_, err = c.Decode("XCX")
		assert.ErrorIs(t, err, roman.ErrInvalidFormat)
	})

	t.Run("all settings applied", func(t *testing.T) {
		t.Parallel()
		c, err := roman.NewCodecFromConfig(roman.Config{
			UpperBound: roman.ExtendedBound,
			Aliases:    true,
			Lenient:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, roman.ExtendedBound, c.UpperBound())

		got, err := c.Decode("MMMMQ")
		require.NoError(t, err)
		assert.Equal(t, 4500, got)

		got, err = c.Decode("XCX")
		require.NoError(t, err)
		assert.Equal(t, 100, got)
	})

	t.Run("options override config", func(t *testing.T) {
		t.Parallel()
		c, err := roman.NewCodecFromConfig(
			roman.Config{UpperBound: roman.ExtendedBound},
			roman.WithUpperBound(roman.StandardBound),
		)
		require.NoError(t, err)
		assert.Equal(t, roman.StandardBound, c.UpperBound())
	})

	t.Run("invalid bound", func(t *testing.T) {
		t.Parallel()
		for _, bound := range []int{-1, 5000} {
			c, err := roman.NewCodecFromConfig(roman.Config{UpperBound: bound})
			assert.ErrorIs(t, err, roman.ErrInvalidConfig)
			assert.Nil(t, c)
		}
	})
}

func TestParseNotation(t *testing.T) {
	t.Parallel()

	tests := map[string]roman.Notation{
		"":            roman.Subtractive,
		"subtractive": roman.Subtractive,
		"ADDITIVE":    roman.Additive,
		" additive ":  roman.Additive,
		"Subtractive": roman.Subtractive,
	}
	for in, want := range tests {
		got, err := roman.ParseNotation(in)
		require.NoError(t, err, "in=%q", in)
		assert.Equal(t, want, got)
	}

	_, err := roman.ParseNotation("medieval")
	assert.ErrorIs(t, err, roman.ErrUnknownNotation)

	assert.Equal(t, "subtractive", roman.Subtractive.String())
	assert.Equal(t, "additive", roman.Additive.String())
	assert.Equal(t, "unknown", roman.Notation(7).String())
}
