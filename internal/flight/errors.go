package flight

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status and error code the handler should render.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: msg}
}

func NewSupplierError(err error) *AppError {
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    ErrorCodeSupplierFailure,
		Message: "All flight suppliers failed",
		Err:     err,
	}
}
