package formhttp

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a request that could not be validated.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error, meta map[string]any) {
	he := classify(err)
	msg := err.Error()
	if he.status == http.StatusInternalServerError {
		msg = http.StatusText(he.status)
	}
	writeJSON(w, he.status, Envelope{
		Meta:  meta,
		Error: &ErrorDetail{Code: he.code, Message: msg},
	})
}
