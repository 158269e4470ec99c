package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
	"github.com/serenakung/speech-scene-generator/pkg/pipeline"
	"github.com/serenakung/speech-scene-generator/pkg/usagelog"
)

// Content types per output format.
var contentTypes = map[string]string{
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// handleGenerate runs one generation pass. The request body is a JSON
// pipeline.Options document. With a single requested format the raw artifact
// is returned under its content type; with several, a JSON envelope maps
// format to base64 data (encoding/json encodes []byte as base64).
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid request body: %v", err))
		return
	}
	opts.Logger = s.logger

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(res.Artifacts) == 1 {
		for format, data := range res.Artifacts {
			w.Header().Set("Content-Type", contentTypes[format])
			w.Header().Set("X-Scene-Seed", strconv.FormatUint(res.Seed, 10))
			w.Write(data)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"seed":      res.Seed,
		"cache_hit": res.CacheHit,
		"artifacts": res.Artifacts,
	})
}

// handleAudit reports word bank entries with missing or unreadable images.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	report := s.loader.Audit(r.Context(), s.bank)
	writeJSON(w, http.StatusOK, report)
}

// handleLogCSV streams the usage log as CSV.
func (s *Server) handleLogCSV(w http.ResponseWriter, r *http.Request) {
	var recs []usagelog.Record
	if s.usage != nil {
		var err error
		recs, err = s.usage.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="usage.csv"`)
	if err := usagelog.WriteCSV(w, recs); err != nil {
		s.logger.Warn("csv export failed", "error", err)
	}
}

// writeError maps an error to a status code and JSON body. Validation
// failures are the client's fault; empty pools and failed placement mean the
// request was well-formed but unsatisfiable.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNoSelection, errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidCount, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeEmptyPool, errors.ErrCodeNothingPlaced:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
