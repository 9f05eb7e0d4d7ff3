package pkg

import "net/http"

// AppError is the error shape returned by the HTTP layer.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
	HTTPStatus int    `json:"-"`
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError hides wrapped internals for 5xx responses.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil && e.HTTPStatus < http.StatusInternalServerError {
		out.Details = e.Err.Error()
	}
	return out
}
