package convert

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/numerals/romankit/pkg/roman"
)

// Error codes carried in ErrorDetail.Code.
const (
	CodeRangeError    = "range_error"
	CodeInvalidFormat = "invalid_format"
	CodeBadRequest    = "bad_request"
	CodeInternal      = "internal_error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed conversion or request.
type ErrorDetail struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Fragment string `json:"fragment,omitempty"`
}

// badRequest marks errors caused by the request shape rather than the codec.
type badRequest struct{ err error }

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorToDetail classifies err and returns the status it maps to.
func errorToDetail(err error) (int, *ErrorDetail) {
	detail := &ErrorDetail{Message: err.Error()}

	var formatErr *roman.FormatError
	var br badRequest
	switch {
	case errors.As(err, &formatErr):
		detail.Code = CodeInvalidFormat
		detail.Fragment = formatErr.Fragment
		return http.StatusUnprocessableEntity, detail
	case errors.Is(err, roman.ErrRange):
		detail.Code = CodeRangeError
		return http.StatusUnprocessableEntity, detail
	case errors.As(err, &br):
		detail.Code = CodeBadRequest
		return http.StatusBadRequest, detail
	default:
		detail.Code = CodeInternal
		detail.Message = http.StatusText(http.StatusInternalServerError)
		return http.StatusInternalServerError, detail
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, detail := errorToDetail(err)
	writeJSON(w, status, Envelope{Error: detail})
}
