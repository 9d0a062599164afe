package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrNotFoundPerson = NewDomainError("NOT_FOUND_PERSON", "Person not found")
	ErrNotFoundID     = NewDomainError("NOT_FOUND_ID", "Identifier is missing or unknown")
	ErrInvalidInput   = NewDomainError("INVALID_ARGUMENT", "Invalid input provided")
	ErrUnauthorized   = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState   = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// NewInvalidArgument creates an INVALID_ARGUMENT error with a specific message
func NewInvalidArgument(message string) *DomainError {
	return NewDomainError("INVALID_ARGUMENT", message)
}
