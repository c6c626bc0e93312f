// cmd/veriscope/error.go
package main

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeProvider ErrorType = "provider"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeAuth     ErrorType = "auth"
	ErrorTypeDatabase ErrorType = "database"
	ErrorTypeInternal ErrorType = "internal"
)

// VeriscopeError is the custom error type for the application
type VeriscopeError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Inner   error     `json:"inner,omitempty"`
}

func (e *VeriscopeError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap exposes the wrapped error to errors.Is / errors.As
func (e *VeriscopeError) Unwrap() error {
	return e.Inner
}

// NewError creates a new VeriscopeError
func NewError(errType ErrorType, code string, message string, inner error) *VeriscopeError {
	return &VeriscopeError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// Common error constructors
func NewProviderError(code string, message string, inner error) *VeriscopeError {
	return NewError(ErrorTypeProvider, code, message, inner)
}

func NewConfigError(code string, message string, inner error) *VeriscopeError {
	return NewError(ErrorTypeConfig, code, message, inner)
}

func NewAuthError(code string, message string, inner error) *VeriscopeError {
	return NewError(ErrorTypeAuth, code, message, inner)
}

func NewDatabaseError(code string, message string, inner error) *VeriscopeError {
	return NewError(ErrorTypeDatabase, code, message, inner)
}

// Error codes
const (
	// Provider error codes
	ErrProviderTimeout = "PROVIDER_001"
	ErrProviderParse   = "PROVIDER_002"
	ErrProviderStatus  = "PROVIDER_003"

	// Config error codes
	ErrConfigLoad       = "CONFIG_001"
	ErrConfigValidation = "CONFIG_002"

	// Auth error codes
	ErrAuthCredentials = "AUTH_001"
	ErrAuthToken       = "AUTH_002"
	ErrAuthDuplicate   = "AUTH_003"

	// Database error codes
	ErrDatabaseConnection = "DB_001"
	ErrDatabaseQuery      = "DB_002"
)

// IsTransient determines if an error is likely temporary
func IsTransient(err error) bool {
	if ve, ok := err.(*VeriscopeError); ok {
		switch ve.Code {
		case ErrProviderTimeout, ErrProviderStatus, ErrDatabaseConnection:
			return true
		}
	}
	return false
}
