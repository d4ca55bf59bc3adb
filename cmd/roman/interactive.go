package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/numerals/romankit/pkg/roman"
)

// runInteractive asks for an integer and a numeral in turn until the user
// answers "n" to the continue prompt or input ends. Conversion errors are
// printed and the round starts over.
func runInteractive(in io.Reader, out io.Writer, codec *roman.Codec) error {
	sc := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	fmt.Fprintln(out, "Choose 'n' to exit")
	for {
		line, ok := readLine("\nEnter an integer number: ")
		if !ok {
			break
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %q is not an integer\n", line)
			continue
		}
		s, err := codec.Encode(n, roman.Subtractive)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Integer: %d equals the Roman number: %s\n", n, s)

		if line, ok = readLine("\nEnter a Roman number: "); !ok {
			break
		}
		v, err := codec.Decode(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Roman number: %s equals the integer number: %d\n", line, v)

		if line, ok = readLine("\nContinue? "); !ok || strings.EqualFold(line, "n") {
			break
		}
	}
	fmt.Fprintln(out)
	return sc.Err()
}
