// Package logger builds *slog.Logger instances for the romankit binaries.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout) and wraps the chosen handler with LogHandlerDecorator, which
// pulls request-scoped attributes such as request IDs out of the context on
// every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "roman"),
//	    logger.WithContextExtractors(convert.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "decoded numeral",
//	    logger.Numeral("MCMXCIV"),
//	    logger.Number(1994),
//	)
//
// # Attributes
//
// attr.go holds constructors that keep attribute keys consistent between the
// CLI and the HTTP service: Numeral, Number, Notation, Component, Error.
// Error returns an empty attribute for a nil error so it can be passed
// unconditionally.
package logger
