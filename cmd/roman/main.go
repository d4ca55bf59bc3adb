// Command roman converts between integers and Roman numerals from the shell,
// interactively, or as an HTTP service.
//
//	roman encode 1994          # MCMXCIV
//	roman encode --additive 4  # IIII
//	roman decode mcmxciv       # 1994
//	roman table 1 10 --format yaml
//	roman serve                # HTTP API on $HTTP_ADDR
//	roman                      # interactive prompt
//
// Configuration comes from the environment and optional .env files
// (ROMAN_UPPER_BOUND, ROMAN_ALIASES, ROMAN_LENIENT, HTTP_ADDR, APP_ENV,
// LOG_LEVEL, LOG_FORMAT); flags override it.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
