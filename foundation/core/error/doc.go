// Package error provides the coded error type used across algebralab.
//
// Package: error
// Title: algebralab Error Handling
// Description: Structured errors with a classification code, a severity, free-form
//              details and the operation that failed. The service layer wraps the
//              domain errors of the algebra engines into this type so that the CLI,
//              the terminal UI and the network endpoints can classify failures
//              without knowing the engine packages.
// Author: algebralab team
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-03-02 v0.2.0: Algebra codes, dropped localisation and request metadata
//
// Usage:
//
//	err := mdwerror.Wrap(parseErr, "polynomial could not be read").
//		WithCode(mdwerror.CodeParse).
//		WithOperation("service.Divide").
//		WithDetail("input", text)
//
//	if mdwerror.HasCode(err, mdwerror.CodeParse) {
//		// show inline error
//	}
package error
