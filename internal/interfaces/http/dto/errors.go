package dto

import "net/http"

// Error codes surfaced to clients. Domain errors carry these codes
// directly; the HTTP layer only maps them to status codes.
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeNotFoundPerson  = "NOT_FOUND_PERSON"
	ErrCodeNotFoundID      = "NOT_FOUND_ID"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeInternal        = "INTERNAL"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInvalidArgument: http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeNotFoundPerson:  http.StatusNotFound,
	ErrCodeNotFoundID:      http.StatusNotFound,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Unknown codes
// map to 500 so a forgotten mapping never leaks as a false success.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
