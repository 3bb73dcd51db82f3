package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("account has no role record")
	ErrRoleConflict       = errors.New("account matches more than one role record")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Persistence errors
	ErrPersistence = errors.New("persistence failure")

	// Operation errors
	ErrNotImplemented = errors.New("operation not implemented")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentCodeExists = errors.New("student code already in use")
)

// Coordinator errors
var (
	ErrCoordinatorNotFound = errors.New("coordinator not found")
	ErrStaffCodeExists     = errors.New("staff code already in use")
)

// Project errors
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrNoProjectAssigned = errors.New("no project assigned")
)

// HTTP surface errors
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrBadRequest       = errors.New("bad request")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
