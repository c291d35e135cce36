package formhttp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	gdsvalidation "github.com/nubz/gds-validation"
)

// DefaultMaxBodyBytes caps a submission when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Bind reads a form submission into a Payload. It accepts
// application/x-www-form-urlencoded, multipart/form-data and application/json
// bodies no larger than maxBytes.
//
// Form fields with one value become strings and repeated fields become lists.
// A trailing "[]" on a field name is dropped and always yields a list, as for
// checkbox groups. Uploaded files are recorded by file name so that file
// fields can be checked for presence.
func Bind(w http.ResponseWriter, r *http.Request, maxBytes int64) (gdsvalidation.Payload, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(ErrInvalidForm, err)
		}
		return fromValues(r.PostForm), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, bodyError(ErrInvalidForm, err)
		}
		defer r.MultipartForm.RemoveAll()
		payload := fromValues(r.MultipartForm.Value)
		addFiles(payload, r.MultipartForm.File)
		return payload, nil

	case "application/json":
		return decodeJSON(r.Body)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func bodyError(kind, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %v", kind, err)
}

func fromValues(values url.Values) gdsvalidation.Payload {
	payload := make(gdsvalidation.Payload, len(values))
	for name, vals := range values {
		key, list := strings.CutSuffix(name, "[]")
		switch {
		case list:
			payload[key] = append(payload.Strings(key), vals...)
		case len(vals) == 1:
			payload[key] = vals[0]
		default:
			payload[key] = append([]string(nil), vals...)
		}
	}
	return payload
}

func addFiles(payload gdsvalidation.Payload, files map[string][]*multipart.FileHeader) {
	for name, headers := range files {
		key, list := strings.CutSuffix(name, "[]")
		names := make([]string, 0, len(headers))
		for _, h := range headers {
			if h.Filename != "" {
				names = append(names, h.Filename)
			}
		}
		switch {
		case len(names) == 0:
			if _, ok := payload[key]; !ok {
				payload[key] = ""
			}
		case list || len(names) > 1:
			payload[key] = names
		default:
			payload[key] = names[0]
		}
	}
}

func decodeJSON(body io.Reader) (gdsvalidation.Payload, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, bodyError(ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	var payload gdsvalidation.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidJSON)
	}
	return payload, nil
}
