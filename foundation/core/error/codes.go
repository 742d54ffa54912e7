// File: codes.go
// Title: Error Code Definitions
// Description: Classification codes shared by the engines, the service layer and
//              every presentation surface.
// Author: algebralab team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-03-02 v0.2.0: Algebra codes (parse, equation, isolation)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Algebra
	CodeParse     Code = "PARSE_ERROR"
	CodeEquation  Code = "EQUATION_ERROR"
	CodeIsolation Code = "ISOLATION_ERROR"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Service
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeParse, CodeEquation, CodeIsolation,
		CodeDatabaseError,
		CodeServiceUnavailable, CodeServiceInitialization,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParse, CodeEquation, CodeIsolation:
		return "algebra"
	case CodeDatabaseError:
		return "storage"
	case CodeServiceUnavailable, CodeServiceInitialization:
		return "service"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// UserFacing reports whether the message of an error with this code is meant
// to be shown to the user verbatim.
func (c Code) UserFacing() bool {
	switch c {
	case CodeParse, CodeEquation, CodeIsolation, CodeInvalidInput, CodeNotFound:
		return true
	default:
		return false
	}
}
