package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/numerals/romankit/pkg/logger"
	"github.com/numerals/romankit/pkg/roman"
)

const (
	// MaxBatchItems caps the numbers plus numerals accepted by /convert.
	MaxBatchItems = 1000
	maxBodyBytes  = 1 << 20
)

// Result is a single conversion outcome.
type Result struct {
	Input    string       `json:"input"`
	Number   int          `json:"number,omitempty"`
	Numeral  string       `json:"numeral,omitempty"`
	Notation string       `json:"notation,omitempty"`
	Error    *ErrorDetail `json:"error,omitempty"`
}

// BatchRequest is the body of POST /convert.
type BatchRequest struct {
	Numbers  []int    `json:"numbers"`
	Numerals []string `json:"numerals"`
	Notation string   `json:"notation"`
}

// BatchResponse lists encode results first, then decode results, each in
// request order.
type BatchResponse struct {
	Results []Result `json:"results"`
}

// Service serves conversions with a fixed codec.
type Service struct {
	codec *roman.Codec
	log   *slog.Logger
}

// NewService returns a service using codec. A nil codec selects
// roman.Default and a nil logger discards output.
func NewService(codec *roman.Codec, log *slog.Logger) *Service {
	if codec == nil {
		codec = roman.Default()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Service{codec: codec, log: log.With(logger.Component("convert"))}
}

// Handle returns the service router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, middleware.Recoverer, s.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/encode/{number}", s.encode)
	r.Get("/decode/{numeral}", s.decode)
	r.Post("/convert", s.convert)

	return r
}

func (s *Service) encode(w http.ResponseWriter, r *http.Request) {
	notation, err := parseNotation(r.URL.Query().Get("notation"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.encodeOne(r, chi.URLParam(r, "number"), notation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Data: result})
}

func (s *Service) decode(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "numeral")
	n, err := s.codec.Decode(raw)
	if err != nil {
		s.log.WarnContext(r.Context(), "decode rejected", logger.Numeral(raw), logger.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Data: Result{Input: raw, Number: n, Numeral: mustEncode(s.codec, n)}})
}

func (s *Service) convert(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, badRequest{fmt.Errorf("invalid JSON body: %w", err)})
		return
	}
	if total := len(req.Numbers) + len(req.Numerals); total > MaxBatchItems {
		writeError(w, badRequest{fmt.Errorf("batch of %d items exceeds the limit of %d", total, MaxBatchItems)})
		return
	}
	notation, err := parseNotation(req.Notation)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := BatchResponse{Results: make([]Result, 0, len(req.Numbers)+len(req.Numerals))}
	for _, n := range req.Numbers {
		res, _ := s.encodeOne(r, strconv.Itoa(n), notation)
		resp.Results = append(resp.Results, res)
	}
	for _, numeral := range req.Numerals {
		res := Result{Input: numeral}
		n, err := s.codec.Decode(numeral)
		if err != nil {
			_, res.Error = errorToDetail(err)
		} else {
			res.Number, res.Numeral = n, mustEncode(s.codec, n)
		}
		resp.Results = append(resp.Results, res)
	}

	writeJSON(w, http.StatusOK, Envelope{Data: resp})
}

// encodeOne parses raw as an integer and encodes it. On failure the result
// carries the error detail and the error is returned as well.
func (s *Service) encodeOne(r *http.Request, raw string, notation roman.Notation) (Result, error) {
	res := Result{Input: raw, Notation: notation.String()}
	n, err := strconv.Atoi(raw)
	if err != nil {
		err = badRequest{fmt.Errorf("%q is not an integer", raw)}
		_, res.Error = errorToDetail(err)
		return res, err
	}
	numeral, err := s.codec.Encode(n, notation)
	if err != nil {
		s.log.WarnContext(r.Context(), "encode rejected",
			logger.Number(n),
			logger.Notation(notation.String()),
			logger.Error(err),
		)
		_, res.Error = errorToDetail(err)
		return res, err
	}
	res.Number, res.Numeral = n, numeral
	return res, nil
}

func (s *Service) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.InfoContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func parseNotation(s string) (roman.Notation, error) {
	n, err := roman.ParseNotation(s)
	if err != nil {
		return n, badRequest{errors.Join(err, fmt.Errorf("notation %q", s))}
	}
	return n, nil
}

// mustEncode renders a value the codec has just decoded, which is always in
// range.
func mustEncode(c *roman.Codec, n int) string {
	s, err := c.Encode(n, roman.Subtractive)
	if err != nil {
		panic(err)
	}
	return s
}
