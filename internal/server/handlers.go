package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/may-ank-dot/MatchingEngine/internal/extraction"
	"github.com/may-ank-dot/MatchingEngine/internal/metrics"
	"github.com/may-ank-dot/MatchingEngine/internal/types"
)

const maxUploadBytes = 32 << 20

// handleMatch scores one candidate against the submitted jobs and returns
// the ranked results.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	metrics.MatchRequests.Inc()

	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ValidationFailures.Inc()
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	results, err := s.engine.Match(r.Context(), &req)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailures.Inc()
			s.errorResponse(w, http.StatusBadRequest, verr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	s.jsonResponse(w, http.StatusOK, results)
}

// handleParse converts an uploaded document into plain text via the
// extraction collaborator. Extraction failures come back as a distinct
// error, never as silent empty text.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart body: "+err.Error())
		return
	}

	filename, data, ok := firstUpload(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "no file uploaded")
		return
	}

	text, err := extraction.FromBytes(filename, data)
	if err != nil {
		metrics.ExtractionFailures.Inc()
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// firstUpload returns the first file in the multipart form, regardless of
// field name.
func firstUpload(r *http.Request) (string, []byte, bool) {
	if r.MultipartForm == nil {
		return "", nil, false
	}
	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(file)
			_ = file.Close()
			if err != nil {
				continue
			}
			return header.Filename, data, true
		}
	}
	return "", nil, false
}
