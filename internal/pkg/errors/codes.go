package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + message; handlers map them to
// HTTP responses and logs stay in English.

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeEventNotFound        = "EVENT_NOT_FOUND"
	CodeMalformedFilter      = "MALFORMED_PROPERTY_FILTER"
	CodeAllRecipientsFailed  = "ALL_RECIPIENTS_FAILED"
)

// User/preference error codes.
const (
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeInvalidPrefs   = "INVALID_PREFERENCES"
	CodeUnknownChannel = "UNKNOWN_CHANNEL"
)

// Provider/channel error codes.
const (
	CodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	CodeProviderSendFailed  = "PROVIDER_SEND_FAILED"
	CodeSlackURLRejected    = "SLACK_URL_REJECTED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeMalformedJSON    = "MALFORMED_JSON"
	CodeValidationFailed = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrEventNotFoundf creates an event not found error.
func ErrEventNotFoundf(className string, targetID int) *AppError {
	return &AppError{
		Code:       CodeEventNotFound,
		Message:    fmt.Sprintf("%s with id %d not found", className, targetID),
		HTTPStatus: http.StatusNotFound,
	}
}

// ErrMalformedFilterf creates a malformed property filter error. This is a
// hard error: a corrupt filter string in stored preferences must surface
// instead of being skipped.
func ErrMalformedFilterf(expr string) *AppError {
	return &AppError{
		Code:       CodeMalformedFilter,
		Message:    "property filter expression is malformed: " + expr,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrAllRecipientsFailedf creates an aggregate batch failure error.
func ErrAllRecipientsFailedf(total int) *AppError {
	return &AppError{
		Code:       CodeAllRecipientsFailed,
		Message:    fmt.Sprintf("notification construction failed for all %d candidate users", total),
		HTTPStatus: http.StatusBadRequest,
	}
}
