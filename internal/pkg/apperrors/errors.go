package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Domain lookups. Each wraps ErrResourceNotFound so the HTTP layer maps them to 404.
var (
	ErrCollegeNotFound    = fmt.Errorf("college not found: %w", ErrResourceNotFound)
	ErrCourseNotFound     = fmt.Errorf("course not found: %w", ErrResourceNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department not found: %w", ErrResourceNotFound)
	ErrSemesterNotFound   = fmt.Errorf("semester not found: %w", ErrResourceNotFound)
	ErrSubjectNotFound    = fmt.Errorf("subject not found: %w", ErrResourceNotFound)
	ErrFacultyNotFound    = fmt.Errorf("faculty not found: %w", ErrResourceNotFound)
	ErrStudentNotFound    = fmt.Errorf("student not found: %w", ErrResourceNotFound)
	ErrEnrollmentNotFound = fmt.Errorf("student enrollment not found: %w", ErrResourceNotFound)
	ErrOfferingNotFound   = fmt.Errorf("course department not offered by college: %w", ErrResourceNotFound)
	ErrSubjectNotOffered  = fmt.Errorf("subject not offered in semester: %w", ErrResourceNotFound)
)

// Uniqueness violations. Each wraps ErrConflict so the HTTP layer maps them to 409.
var (
	ErrCollegeNameExists     = fmt.Errorf("college name already registered: %w", ErrConflict)
	ErrCollegeEmailExists    = fmt.Errorf("college email already registered: %w", ErrConflict)
	ErrEmailAlreadyExists    = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrAssignmentExists      = fmt.Errorf("faculty already assigned to subject: %w", ErrConflict)
	ErrDepartmentHasStaff    = fmt.Errorf("department mapping has faculty or students: %w", ErrConflict)
	ErrLegacyRecordNotUnique = fmt.Errorf("registration already exists: %w", ErrConflict)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NotFoundf wraps a domain not-found sentinel with a formatted message
func NotFoundf(sentinel error, format string, args ...interface{}) error {
	return &CustomError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is reports whether err matches target or any of errList
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

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// Message returns the most specific human-readable message carried by err.
// Domain sentinels are rendered without their category suffix.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	for _, sentinel := range domainErrors {
		if errors.Is(err, sentinel) {
			return trimCategory(sentinel)
		}
	}
	return err.Error()
}

var domainErrors = []error{
	ErrCollegeNotFound, ErrCourseNotFound, ErrDepartmentNotFound, ErrSemesterNotFound,
	ErrSubjectNotFound, ErrFacultyNotFound, ErrStudentNotFound, ErrEnrollmentNotFound,
	ErrOfferingNotFound, ErrSubjectNotOffered,
	ErrCollegeNameExists, ErrCollegeEmailExists, ErrEmailAlreadyExists, ErrAssignmentExists,
	ErrDepartmentHasStaff, ErrLegacyRecordNotUnique,
}

func trimCategory(err error) string {
	msg := err.Error()
	if inner := errors.Unwrap(err); inner != nil {
		msg = strings.TrimSuffix(msg, ": "+inner.Error())
	}
	return msg
}
