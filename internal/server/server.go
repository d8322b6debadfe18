// Package server exposes the conversion engine over HTTP.
//
// The API is JSON in, JSON out:
//
//	POST /api/convert      {"value": 2500, "unit": "m", "target": "km"}
//	GET  /api/units        registered unit symbols with dimensions
//	POST /api/units        register a custom unit
//	GET  /api/prefixes     registered prefixes with exponents
//	POST /api/conversions  register a conversion factor
//	GET  /healthz          liveness probe
//
// Errors are returned as {"error": "...", "code": "..."} with a status
// derived from the engine's error code.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/dimension"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/observability"
	"github.com/unitkit/unitkit/pkg/prefix"
	"github.com/unitkit/unitkit/pkg/quantity"
)

// Server serves the conversion API.
type Server struct {
	engine *convert.Engine
	logger *log.Logger
	router chi.Router
}

// New creates a server over the given engine. A nil logger falls back to
// the default logger.
func New(engine *convert.Engine, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{engine: engine, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/units", s.handleListUnits)
		r.Post("/units", s.handleRegisterUnit)
		r.Get("/prefixes", s.handleListPrefixes)
		r.Post("/conversions", s.handleRegisterConversion)
	})
	return r
}

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-Id"

// requestID assigns a UUID to every request unless the client sent one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
			"id", rec.Header().Get(requestIDHeader),
		)
	})
}

// convertRequest is the body of POST /api/convert.
type convertRequest struct {
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix,omitempty"`
	Unit   string  `json:"unit"`
	Target string  `json:"target,omitempty"`

	Pretty    bool `json:"pretty,omitempty"`
	Precision int  `json:"precision,omitempty"`
	Tenths    bool `json:"tenths,omitempty"`
}

// convertResponse mirrors the resulting quantity.
type convertResponse struct {
	Value      float64 `json:"value"`
	Prefix     string  `json:"prefix"`
	Unit       string  `json:"unit"`
	Dimensions string  `json:"dimensions"`
	Formatted  string  `json:"formatted,omitempty"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	q, err := s.buildQuantity(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	out := q
	if req.Target != "" {
		out, err = s.engine.To(q, req.Target)
	}
	observability.Conversions().OnConvert(r.Context(), req.Unit, req.Target, time.Since(start), err)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := convertResponse{
		Value:      out.Value,
		Prefix:     out.Prefix.Symbol,
		Unit:       s.displayName(out),
		Dimensions: out.Dims.String(),
	}
	if req.Pretty {
		precision := req.Precision
		if precision <= 0 {
			precision = 4
		}
		g := prefix.Thousands
		if req.Tenths {
			g = prefix.Tenths
		}
		resp.Formatted = s.engine.Pretty(out, precision, g)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// buildQuantity assembles the source quantity of a convert request: an
// optional explicit prefix plus a unit expression.
func (s *Server) buildQuantity(req convertRequest) (quantity.Quantity, error) {
	p := prefix.Identity()
	if req.Prefix != "" {
		var err error
		p, err = s.engine.Prefixes().Resolve(req.Prefix)
		if err != nil {
			return quantity.Quantity{}, err
		}
	}

	if vec, ok := s.engine.Units().Lookup(req.Unit); ok {
		q := quantity.New(req.Value, p, vec)
		if name, _ := s.engine.Units().CompositeName(vec); name != req.Unit {
			q.Unit = req.Unit
		}
		return q, nil
	}

	vec, err := s.engine.Units().ParseExpr(req.Unit)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return quantity.New(req.Value, p, vec), nil
}

func (s *Server) displayName(q quantity.Quantity) string {
	if q.Unit != "" {
		return q.Unit
	}
	return s.engine.Units().Name(q.Dims)
}

// unitInfo is one row of GET /api/units.
type unitInfo struct {
	Symbol     string `json:"symbol"`
	Dimensions string `json:"dimensions"`
	Priority   int    `json:"priority"`
}

func (s *Server) handleListUnits(w http.ResponseWriter, r *http.Request) {
	units := s.engine.Units()
	out := []unitInfo{}
	for _, sym := range units.Symbols() {
		vec, _ := units.Lookup(sym)
		prio, _ := units.Priority(sym)
		out = append(out, unitInfo{Symbol: sym, Dimensions: vec.String(), Priority: prio})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// registerUnitRequest is the body of POST /api/units.
type registerUnitRequest struct {
	Symbol            string  `json:"symbol"`
	Length            int     `json:"length,omitempty"`
	Mass              int     `json:"mass,omitempty"`
	Time              int     `json:"time,omitempty"`
	ElectricCurrent   int     `json:"electric_current,omitempty"`
	Temperature       int     `json:"temperature,omitempty"`
	AmountOfSubstance int     `json:"amount_of_substance,omitempty"`
	LuminousIntensity int     `json:"luminous_intensity,omitempty"`
	Priority          int     `json:"priority,omitempty"`
	SI                float64 `json:"si,omitempty"`
}

func (s *Server) handleRegisterUnit(w http.ResponseWriter, r *http.Request) {
	var req registerUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	vec := dimensionVector(req)
	err := s.engine.RegisterUnit(req.Symbol, vec, req.Priority, req.SI)
	observability.Registry().OnRegister(r.Context(), "unit", req.Symbol, err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, unitInfo{
		Symbol:     req.Symbol,
		Dimensions: vec.String(),
		Priority:   req.Priority,
	})
}

// prefixInfo is one row of GET /api/prefixes.
type prefixInfo struct {
	Symbol   string `json:"symbol"`
	Exponent int    `json:"exponent"`
}

func (s *Server) handleListPrefixes(w http.ResponseWriter, r *http.Request) {
	prefixes := s.engine.Prefixes()
	out := []prefixInfo{}
	for _, sym := range prefixes.Symbols() {
		exp, _ := prefixes.Exponent(sym)
		out = append(out, prefixInfo{Symbol: sym, Exponent: exp})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// registerConversionRequest is the body of POST /api/conversions.
type registerConversionRequest struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Factor float64 `json:"factor"`
}

func (s *Server) handleRegisterConversion(w http.ResponseWriter, r *http.Request) {
	var req registerConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	err := s.engine.RegisterConversion(req.From, req.To, req.Factor)
	observability.Registry().OnRegister(r.Context(), "conversion", req.From+"→"+req.To, err)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	s.writeJSON(w, statusForCode(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}

// statusForCode maps engine error codes onto HTTP statuses.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnknownPrefix, errors.ErrCodeUnknownUnit, errors.ErrCodeUnknownConversion:
		return http.StatusNotFound
	case errors.ErrCodeDuplicatePrefix:
		return http.StatusConflict
	case errors.ErrCodeIncompatibleDimensions, errors.ErrCodeInvalidSymbol,
		errors.ErrCodeInvalidInput, errors.ErrCodeDomain:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func dimensionVector(req registerUnitRequest) dimension.Vector {
	return dimension.Vector{
		Length:            req.Length,
		Mass:              req.Mass,
		Time:              req.Time,
		ElectricCurrent:   req.ElectricCurrent,
		Temperature:       req.Temperature,
		AmountOfSubstance: req.AmountOfSubstance,
		LuminousIntensity: req.LuminousIntensity,
	}
}
