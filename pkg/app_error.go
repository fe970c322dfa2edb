package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error shape handlers translate domain/usecase errors into.
//
// Code is a stable machine-readable identifier, Message is safe to show to
// portal users and Err keeps the underlying cause for logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the failure half of the response envelope.
type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Success: false, Message: e.Message, Error: e.Code}
}

// Internal wraps an unexpected failure, passing the cause message through.
func Internal(err error) *AppError {
	msg := "An internal error occurred"
	if err != nil {
		msg = err.Error()
	}
	return NewDomainError("INTERNAL_ERROR", msg, err, http.StatusInternalServerError)
}
