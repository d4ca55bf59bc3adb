// Package config loads typed configuration from environment variables and
// optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// .env files are read into a map (the process environment is never
// modified), the real environment is layered on top and the result is parsed
// into a struct using `env` field tags.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr  string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Roman roman.Config
//	}
//
//	cfg, err := config.Load[ServerConfig](config.WithEnvFiles("./.env.local"))
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Precedence
//
// From lowest to highest:
//
//   - envDefault tags
//   - .env files, in the order given (later files win)
//   - the process environment (or the map passed to WithEnvironment)
//
// Without WithEnvFiles the loader looks for `.env` in the working directory
// and silently skips it when absent. Explicitly named files must exist.
//
// # Error Handling
//
//   - `ErrReadingEnvFile` – an explicitly named .env file could not be read.
//   - `ErrParsingConfig`  – the environment could not be parsed into the struct
//     (missing required variable, malformed value).
package config
