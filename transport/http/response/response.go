package response

import (
	"encoding/json"
	"net/http"

	"autocare/shared/constant"
	"autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/logger"
)

// Envelope is the uniform response shape of the API. The error fields are
// always present and null on success; pagination appears only on list
// responses.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data"`
	Error      *string         `json:"error"`
	Errors     []string        `json:"errors"`
	ErrorCode  *string         `json:"errorCode"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

// WithJSON sends a success envelope wrapping the payload.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithPagination sends a success envelope wrapping a list payload and its
// pagination block.
func WithPagination(writer http.ResponseWriter, code int, jsonPayload any, pagination dto.Pagination) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload, Pagination: &pagination})
}

// WithMessage sends a success envelope with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Data: map[string]string{"message": message}})
}

// WithError sends a failure envelope; status, code and messages come from
// the error taxonomy.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()
	errorCode := failure.GetErrorCode(err)

	response(writer, code, Envelope{
		Success:   false,
		Error:     &errMsg,
		Errors:    failure.GetMessages(err),
		ErrorCode: &errorCode,
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{
		Code:      http.StatusTooManyRequests,
		ErrorCode: failure.CodeBusinessRuleViolation,
		Message:   constant.ResponseErrorRequestLimitExceeded,
	})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{
		Code:      http.StatusServiceUnavailable,
		ErrorCode: failure.CodeInternalError,
		Message:   constant.ResponseErrorPrepareShutdown,
	})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{
		Code:      http.StatusServiceUnavailable,
		ErrorCode: failure.CodeInternalError,
		Message:   constant.ResponseErrorUnhealthy,
	})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(body)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
