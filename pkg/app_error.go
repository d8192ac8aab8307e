package pkg

import (
	"time"
)

// AppError is the error representation handed from handlers to the HTTP layer.
type AppError struct {
	Code       string
	Message    string
	Details    []string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON error envelope returned by every endpoint.
// Message is a string, or a list of strings when Details is set.
type HTTPError struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    any    `json:"message" swaggertype:"string"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationErrors builds a 400 error carrying one message per invalid field.
func NewValidationErrors(details []string) *AppError {
	return &AppError{Code: "INVALID_REQUEST", Message: "Invalid request", Details: details, HTTPStatus: 400}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	var msg any = e.Message
	if len(e.Details) > 0 {
		msg = e.Details
	}
	return HTTPError{
		StatusCode: e.HTTPStatus,
		Code:       e.Code,
		Message:    msg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// ToHTTPErrorAt is ToHTTPError with the request path filled in.
func (e *AppError) ToHTTPErrorAt(path string) HTTPError {
	h := e.ToHTTPError()
	h.Path = path
	return h
}
