package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Numeral records a numeral string under the key "numeral".
func Numeral(s string) slog.Attr {
	return slog.String("numeral", s)
}

// Number records an integer under the key "number".
func Number(n int) slog.Attr {
	return slog.Int("number", n)
}

// Notation records the notation name under the key "notation".
func Notation(name string) slog.Attr {
	return slog.String("notation", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}
