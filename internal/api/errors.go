package api

import "net/http"

// HTTPError is an error with a response status and a stable machine-readable
// code.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

// WithMessage returns a copy of e carrying msg.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

var (
	ErrMissingName      = HTTPError{Status: http.StatusBadRequest, Code: "missing_name", Message: "query parameter name is required"}
	ErrInvalidJSON      = HTTPError{Status: http.StatusBadRequest, Code: "invalid_json", Message: "request body is not valid JSON"}
	ErrInvalidBatch     = HTTPError{Status: http.StatusUnprocessableEntity, Code: "invalid_batch"}
	ErrUnknownFamily    = HTTPError{Status: http.StatusNotFound, Code: "unknown_family"}
	ErrMissingUserAgent = HTTPError{Status: http.StatusBadRequest, Code: "missing_user_agent", Message: "query parameter ua or the User-Agent header is required"}
	ErrUnrecognizedUA   = HTTPError{Status: http.StatusUnprocessableEntity, Code: "unrecognized_user_agent", Message: "user agent does not name a known operating system"}
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: "route not found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: "method not allowed"}
	ErrDetectionFailed  = HTTPError{Status: http.StatusServiceUnavailable, Code: "detection_failed", Message: "current operating system could not be identified"}
	ErrInternal         = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal server error"}
)
