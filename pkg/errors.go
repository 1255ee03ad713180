package pkg

import "net/http"

// AppError is the error shape returned by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Meta       map[string]string
	Cause      error
	HTTPStatus int
}

// HTTPError is the JSON envelope written to clients.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Code + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, cause error, status int) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause, HTTPStatus: status}
}

// NewValidationError carries per-field messages in Meta.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Dados inválidos",
		Meta:       fields,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ToHTTPError never exposes Cause.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Meta: e.Meta}
}
