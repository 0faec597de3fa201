package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrValidation
	ErrConflict
	ErrUnauthorize
	ErrForbidden
	ErrInvalidPassword
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "internal error",
	ErrNotFound:        "record not found",
	ErrInvalidRequest:  "invalid request",
	ErrValidation:      "missing required fields",
	ErrConflict:        "conflicting record exists",
	ErrUnauthorize:     "unauthorized request",
	ErrForbidden:       "operation not allowed",
	ErrInvalidPassword: "invalid credentials",
	ErrTooManyRequests: "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrValidation:      http.StatusBadRequest,
	ErrConflict:        http.StatusConflict,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrForbidden:       http.StatusForbidden,
	ErrInvalidPassword: http.StatusUnauthorized,
	ErrTooManyRequests: http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrValidation:      "0004",
	ErrConflict:        "0005",
	ErrUnauthorize:     "0006",
	ErrForbidden:       "0007",
	ErrInvalidPassword: "0008",
	ErrTooManyRequests: "0009",
}
