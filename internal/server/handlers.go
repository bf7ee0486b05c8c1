package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/spheregrid/pkg/buildinfo"
	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/pipeline"
)

// Response headers set on rendered scenes.
const (
	HeaderSceneID  = "X-Scene-Id"
	HeaderCache    = "X-Cache"
	HeaderWarnings = "X-Scene-Warnings"
)

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// ValidateResponse is the body of POST /v1/validate.
type ValidateResponse struct {
	Valid    bool           `json:"valid"`
	Issues   []errors.Issue `json:"issues"`
	Warnings []errors.Issue `json:"warnings"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(grid.FormatJSON)
	}
	format, err := grid.ParseFormat(name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := grid.Encode(&buf, grid.Default(), format); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", configContentTypes[format])
	w.Write(buf.Bytes())
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	cfg, _, err := s.readConfig(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	policy := grid.PolicyStrict
	if lenient, _ := strconv.ParseBool(r.URL.Query().Get("lenient")); lenient {
		policy = grid.PolicyLenient
	}
	report := grid.Validate(cfg, policy)
	resp := ValidateResponse{
		Valid:    report.OK(),
		Issues:   nonNil(report.Issues),
		Warnings: nonNil(report.Warnings),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) scenes(w http.ResponseWriter, r *http.Request) {
	opts, err := parseOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cfg, body, err := s.readConfig(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	key := cache.Hash(body) + "?" + r.URL.Query().Encode()
	v, err, shared := s.flights.Do(key, func() (any, error) {
		// Detached from the request so one disconnecting caller does not
		// cancel the run for the others sharing it.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), s.timeout)
		defer cancel()
		return s.runner.Execute(ctx, cfg, opts)
	})
	s.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.generations.WithLabelValues(resultError).Inc()
		s.writeError(w, err)
		return
	}
	res := v.(*pipeline.Result)

	result := resultOK
	switch {
	case shared:
		result = resultShared
	case res.CacheInfo.SceneHit && res.CacheInfo.RenderHit:
		result = resultCached
	}
	s.metrics.generations.WithLabelValues(result).Inc()

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(HeaderSceneID, res.Scene.ID)
	w.Header().Set(HeaderWarnings, strconv.Itoa(len(res.Scene.Warnings)))
	if res.CacheInfo.RenderHit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	w.Write(res.Artifacts[format])
}

// parseOptions reads pipeline options from the query string. Exactly one
// output format is rendered per request.
func parseOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "invalid seed %q", v)
		}
		seed := uint32(n)
		opts.Seed = &seed
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > 8 {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "invalid scale %q (want 0 < scale <= 8)", v)
		}
		opts.Scale = f
	}
	opts.Lenient, _ = strconv.ParseBool(q.Get("lenient"))
	opts.Detailed, _ = strconv.ParseBool(q.Get("detailed"))
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

var configContentTypes = map[grid.Format]string{
	grid.FormatJSON: "application/json",
	grid.FormatYAML: "application/yaml",
	grid.FormatTOML: "application/toml",
}

func configFormat(contentType string) grid.Format {
	mt, _, _ := mime.ParseMediaType(contentType)
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return grid.FormatYAML
	case "application/toml", "text/toml":
		return grid.FormatTOML
	}
	return grid.FormatJSON
}

// readConfig decodes the request body and returns it with the raw bytes.
func (s *Server) readConfig(w http.ResponseWriter, r *http.Request) (*grid.Config, []byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, nil, errors.New(errors.ErrCodeInvalidConfig, "configuration exceeds %d bytes", tooLarge.Limit)
		}
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidConfig, "empty request body")
	}
	cfg, err := grid.DecodeBytes(body, configFormat(r.Header.Get("Content-Type")))
	if err != nil {
		return nil, nil, err
	}
	return cfg, body, nil
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat, errors.ErrCodeDuplicateID,
		errors.ErrCodeUnknownTier, errors.ErrCodeUnknownNode, errors.ErrCodeUnknownDomain,
		errors.ErrCodeUnknownResource:
		return http.StatusBadRequest
	case errors.ErrCodeMissingTemplate, errors.ErrCodeDegenerateCurve:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func nonNil(issues []errors.Issue) []errors.Issue {
	if issues == nil {
		return []errors.Issue{}
	}
	return issues
}
