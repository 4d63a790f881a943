package errors

import "net/http"

// Error code constants. Errors carry code + params; the frontend handles
// i18n translation. Backend logs are always in English.

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeNotificationWrite    = "NOTIFICATION_WRITE_FAILED"
)

// Preference error codes.
const (
	CodePreferenceInvalid   = "PREFERENCE_INVALID"
	CodeDigestTimeInvalid   = "DIGEST_TIME_INVALID"
	CodeDigestPeriodInvalid = "DIGEST_PERIOD_INVALID"
	CodePreferenceWriteFail = "PREFERENCE_WRITE_FAILED"
)

// Push error codes.
const (
	CodePushSubscriptionInvalid  = "PUSH_SUBSCRIPTION_INVALID"
	CodePushSubscriptionNotFound = "PUSH_SUBSCRIPTION_NOT_FOUND"
	CodePushNotConfigured        = "PUSH_NOT_CONFIGURED"
)

// Email/template error codes.
const (
	CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	CodeTemplateDisabled = "TEMPLATE_DISABLED"
	CodeEmailSendFailed  = "EMAIL_SEND_FAILED"
)

// Cron error codes.
const (
	CodeCronUnauthorized = "CRON_UNAUTHORIZED"
	CodeCronRunFailed    = "CRON_RUN_FAILED"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Transport-level error codes shared across handlers.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInvalidBody  = "INVALID_BODY"
	CodeInternal     = "INTERNAL_ERROR"
)

// Convenience constructors using predefined codes.

// ErrNotificationNotFoundf creates a notification not found error.
func ErrNotificationNotFoundf(notificationID string) *AppError {
	err := &AppError{
		Code:       CodeNotificationNotFound,
		Message:    "notification not found",
		HTTPStatus: http.StatusNotFound,
	}
	return err.WithParams(map[string]interface{}{"id": notificationID})
}

// ErrUnauthorizedf creates a 401 for a request with no caller identity.
func ErrUnauthorizedf() *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    "authentication required",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// ErrCronUnauthorizedf creates a 401 for a bad or missing cron secret.
func ErrCronUnauthorizedf() *AppError {
	return &AppError{
		Code:       CodeCronUnauthorized,
		Message:    "invalid cron secret",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// ErrDigestTimeInvalidf creates a bad request error for a malformed HH:mm value.
func ErrDigestTimeInvalidf(value string) *AppError {
	return &AppError{
		Code:       CodeDigestTimeInvalid,
		Message:    "digest time must be HH:mm: " + value,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrInvalidRequestFieldf creates a bad request error for a rejected field.
func ErrInvalidRequestFieldf(fieldName string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequestField,
		Message:    "request contains invalid field: " + fieldName,
		HTTPStatus: http.StatusBadRequest,
	}
}
