package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/mlutz/depline/pkg/buildinfo"
	"github.com/mlutz/depline/pkg/errors"
	"github.com/mlutz/depline/pkg/pipeline"
)

// expandRequest is the JSON body for POST /v1/expand.
type expandRequest struct {
	Text string `json:"text"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleExpand processes a pasted dependency document.
func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	var req expandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON body"))
		return
	}
	s.process(w, r, req.Text)
}

// handleUpload processes an uploaded dependency document. The file is
// read fully before the pipeline runs; the core itself never blocks.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Server.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 4 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, `missing or unreadable "file" form field`))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read uploaded file"))
		return
	}

	s.process(w, r, string(raw))
}

// process runs the pipeline and writes the result or the error.
func (s *Server) process(w http.ResponseWriter, r *http.Request, raw string) {
	res, err := s.runner.Process(r.Context(), raw, pipeline.Options{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

// writeError maps pipeline and validation errors to HTTP statuses: data
// and input errors are the client's fault (400), everything else is ours
// (500). Nothing partial is ever rendered alongside an error.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	if errors.IsDataError(err) || code == errors.ErrCodeInvalidInput {
		status = http.StatusBadRequest
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
