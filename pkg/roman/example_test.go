package roman_test

import (
	"errors"
	"fmt"

	"github.com/numerals/romankit/pkg/roman"
)

func ExampleEncode() {
	s, _ := roman.Encode(1994, roman.Subtractive)
	fmt.Println(s)

	s, _ = roman.Encode(1994, roman.Additive)
	fmt.Println(s)
	// Output:
	// MCMXCIV
	// MDCCCCLXXXXIIII
}

func ExampleDecode() {
	n, _ := roman.Decode("mmxxvi")
	fmt.Println(n)

	_, err := roman.Decode("IIII")
	fmt.Println(errors.Is(err, roman.ErrInvalidFormat))
	// Output:
	// 2026
	// true
}

func ExampleNewCodec() {
	c := roman.NewCodec(roman.WithUpperBound(roman.ExtendedBound))

	s, _ := c.Encode(4999, roman.Subtractive)
	fmt.Println(s)
	// Output: MMMMCMXCIX
}

func ExampleNumeral_Add() {
	a, _ := roman.New(1990)
	b, _ := roman.Parse("IV")

	sum, _ := a.Add(b)
	fmt.Println(sum, sum.Number())
	// Output: MCMXCIV 1994
}
