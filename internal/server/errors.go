package server

import (
	"encoding/json"
	"net/http"

	errs "github.com/matzehuels/logtrack/pkg/errors"
	"github.com/matzehuels/logtrack/pkg/observability"
)

type errorBody struct {
	Error     errorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type errorDetail struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch code := errs.GetCode(err); {
	case code == errs.ErrCodeNotFound, code == errs.ErrCodeUnknownExample:
		return http.StatusNotFound
	case code == errs.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errs.IsValidation(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errNotFound(path string) error {
	return errs.New(errs.ErrCodeNotFound, "no route for %s", path)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errs.GetCode(err)
	msg := errs.UserMessage(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{
		Error:     errorDetail{Code: code, Message: msg},
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
