package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load parses the environment into a new T.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig]()
func Load[T any](opts ...Option) (T, error) {
	var zero T

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	environ, err := l.environment()
	if err != nil {
		return zero, err
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment:     environ,
		Prefix:          l.prefix,
		RequiredIfNoDef: l.requiredIfNoDef,
	})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// environment merges the .env files with the process environment.
func (l *loader) environment() (map[string]string, error) {
	files := l.files
	if !l.explicitFiles {
		files = []string{defaultEnvFile}
	}

	merged := make(map[string]string)
	for _, path := range files {
		values, err := godotenv.Read(path)
		if err != nil {
			// Ignore errors - the default .env file might not exist and that's ok
			if !l.explicitFiles && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		maps.Copy(merged, values)
	}

	if l.environ != nil {
		maps.Copy(merged, l.environ)
		return merged, nil
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	return merged, nil
}
