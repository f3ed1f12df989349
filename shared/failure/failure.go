package failure

import (
	"errors"
	"net/http"
)

// Machine-readable error codes surfaced in the response envelope.
const (
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeForbidden             = "FORBIDDEN"
	CodeNotFound              = "NOT_FOUND"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
	CodeSlotConflict          = "SLOT_CONFLICT"
	CodeDuplicate             = "DUPLICATE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Failure is a wrapper for error messages using standard HTTP response codes
// plus a stable machine-readable error code for API clients.
type Failure struct {
	Code      int      `json:"code"`
	ErrorCode string   `json:"errorCode"`
	Message   string   `json:"message"`
	Messages  []string `json:"messages,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, ErrorCode: CodeValidationError, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, ErrorCode: CodeValidationError, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, ErrorCode: CodeForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, ErrorCode: CodeForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:      http.StatusBadRequest,
			ErrorCode: CodeValidationError,
			Message:   err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeValidationError,
		Message:   msg,
	}
}

// Validation returns a new Failure carrying every violated rule, so the
// response envelope can list them all.
func Validation(messages []string) error {
	message := "validation failed"
	if len(messages) > 0 {
		message = messages[0]
	}

	return &Failure{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeValidationError,
		Message:   message,
		Messages:  messages,
	}
}

// BusinessRuleViolation returns a new Failure for a request that is well
// formed but breaks a domain rule (illegal transition, inactive catalog
// entry, schedule window, short cancellation reason).
func BusinessRuleViolation(msg string) error {
	return &Failure{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeBusinessRuleViolation,
		Message:   msg,
	}
}

// SlotConflict returns a new Failure for a booking that collides with an
// active booking on the same service center, date and time.
func SlotConflict(msg string) error {
	return &Failure{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeSlotConflict,
		Message:   msg,
	}
}

// Unauthorized returns a new Failure with code for unauthenticated requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:      http.StatusUnauthorized,
		ErrorCode: CodeUnauthenticated,
		Message:   msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:      http.StatusInternalServerError,
			ErrorCode: CodeInternalError,
			Message:   err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:      http.StatusNotFound,
		ErrorCode: CodeNotFound,
		Message:   entityName,
	}
}

// Conflict returns a new Failure for duplicate-resource situations.
func Conflict(message string) error {
	return &Failure{
		Code:      http.StatusConflict,
		ErrorCode: CodeDuplicate,
		Message:   message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:      http.StatusForbidden,
		ErrorCode: CodeForbidden,
		Message:   msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessages returns every message attached to an error interface.
func GetMessages(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) && len(fail.Messages) > 0 {
		return fail.Messages
	}

	return []string{err.Error()}
}

// GetErrorCode returns the machine-readable code of an error interface.
func GetErrorCode(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.ErrorCode
	}

	return CodeInternalError
}
