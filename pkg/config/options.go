package config

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	files           []string
	explicitFiles   bool
	prefix          string
	environ         map[string]string
	requiredIfNoDef bool
}

// WithEnvFiles reads the given .env files instead of the default `.env`.
// Later files override earlier ones.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, paths...)
		l.explicitFiles = true
	}
}

// WithPrefix prepends prefix to every variable name looked up.
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// WithEnvironment replaces the process environment with env. Handy in tests.
func WithEnvironment(env map[string]string) Option {
	return func(l *loader) {
		if env != nil {
			l.environ = env
		}
	}
}

// WithRequiredIfNoDef treats every field without envDefault as required.
func WithRequiredIfNoDef() Option {
	return func(l *loader) { l.requiredIfNoDef = true }
}
