package roman

import "strings"

var (
	nonRepeatable = []byte{'V', 'L', 'D'}
	repeatable    = []byte{'I', 'X', 'C', 'M'}

	repeatedPairs = []string{"IVIV", "IXIX", "XLXL", "XCXC", "CDCD", "CMCM"}
)

// validate checks the structure of an upper-cased numeral and reports the
// first violated rule. input is the caller's original string, kept for the
// error.
func (c *Codec) validate(input, numeral string) error {
	for _, l := range nonRepeatable {
		if strings.Count(numeral, string(l)) > 1 {
			return newFormatError(input, string(l), "repeated numeral")
		}
	}

	for _, l := range repeatable {
		if run := longestRun(numeral, l); run > c.maxRun[l] {
			return newFormatError(input, strings.Repeat(string(l), run), "numeral repeated too often")
		}
	}

	for _, pair := range repeatedPairs {
		if strings.Contains(numeral, pair) {
			return newFormatError(input, pair, "repeated subtractive pair")
		}
	}

	for i := 0; i+1 < len(numeral); i++ {
		cur, next := numeral[i], numeral[i+1]
		curRank, ok1 := letterRank[cur]
		nextRank, ok2 := letterRank[next]
		// alias letters carry no place in the hierarchy
		if !ok1 || !ok2 || curRank <= nextRank {
			continue
		}
		if _, ok := subtractivePairs[numeral[i:i+2]]; !ok {
			return newFormatError(input, numeral[i:i+2], "numerals out of order")
		}
	}

	return nil
}

// longestRun returns the length of the longest consecutive run of l.
func longestRun(s string, l byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != l {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}
