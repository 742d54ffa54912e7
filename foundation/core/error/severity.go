// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of a failure.
// Author: algebralab team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-03-02 v0.2.0: Mapping for algebra codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a failed calculation caused by the input
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh is a failing dependency such as the history database
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical
	case CodeDatabaseError, CodeServiceInitialization, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeParse, CodeEquation, CodeIsolation, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
