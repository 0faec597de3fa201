package errors

import (
	"fmt"

	"github.com/aquatour/crm-backend/constant"
	"github.com/aquatour/crm-backend/model"
)

type CustomError struct {
	errType  constant.ErrorType
	message  string
	conflict *model.ConflictDetail
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Conflict returns the structured conflict payload, nil for non-conflict
// errors.
func (c CustomError) Conflict() *model.ConflictDetail {
	return c.conflict
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorf keeps the taxonomy type but overrides the message, for
// errors that must name fields or counts.
func SetCustomErrorf(errorType constant.ErrorType, format string, args ...any) CustomError {
	return CustomError{
		errType: errorType,
		message: fmt.Sprintf(format, args...),
	}
}

func SetConflictError(message string, detail *model.ConflictDetail) CustomError {
	return CustomError{
		errType:  constant.ErrConflict,
		message:  message,
		conflict: detail,
	}
}
