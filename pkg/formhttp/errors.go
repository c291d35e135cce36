package formhttp

import (
	"errors"
	"net/http"

	gdsvalidation "github.com/nubz/gds-validation"
)

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrBodyTooLarge         = errors.New("request body too large")
)

// httpError pairs a status with a machine readable code for the JSON error
// envelope.
type httpError struct {
	status int
	code   string
}

func classify(err error) httpError {
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return httpError{http.StatusUnsupportedMediaType, "unsupported_media_type"}
	case errors.Is(err, ErrBodyTooLarge):
		return httpError{http.StatusRequestEntityTooLarge, "request_entity_too_large"}
	case errors.Is(err, ErrInvalidForm), errors.Is(err, ErrInvalidJSON):
		return httpError{http.StatusBadRequest, "bad_request"}
	case errors.Is(err, gdsvalidation.ErrPageNotFound):
		return httpError{http.StatusNotFound, "page_not_found"}
	default:
		return httpError{http.StatusInternalServerError, "internal_server_error"}
	}
}
