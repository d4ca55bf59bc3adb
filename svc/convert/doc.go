// Package convert exposes the roman codec over HTTP.
//
// Routes:
//
//	GET  /encode/{number}?notation=additive
//	GET  /decode/{numeral}
//	POST /convert      {"numbers":[1994],"numerals":["XIV"],"notation":"subtractive"}
//	GET  /healthz
//
// Successful responses use the envelope {"data": ...}; failures use
// {"error": {"code": ..., "message": ...}}. Codec failures map to
// 422 Unprocessable Entity with code "range_error" or "invalid_format";
// malformed requests map to 400 with code "bad_request". In a batch every item
// carries its own result or error and the response itself is 200.
//
// Every response carries an X-Request-ID header. Incoming IDs are kept when
// they look safe, otherwise a UUID is generated. RequestIDExtractor feeds the
// ID into logs built with pkg/logger.
package convert
