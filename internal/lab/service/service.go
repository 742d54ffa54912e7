// ============================================================================
// algebralab - Algebra teaching toolkit
// ============================================================================
//
// Package:     service
// Description: Facade over the algebra engines used by every front end
// Author:      algebralab team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package service runs the algebra engines for the CLI, the TUI and the
// server. Each call is independent; it logs its duration, classifies
// failures with foundation error codes and records successful calculations
// in the history store when one is configured.
package service

import (
	"context"
	"errors"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	mdwlog "github.com/algebralab/algebralab/foundation/core/log"
	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/translate"
	"github.com/algebralab/algebralab/internal/history/store"
	"github.com/algebralab/algebralab/pkg/core/logging"
)

// History books, one per tool.
const (
	BookDivision  = "division"
	BookComplex   = "complex"
	BookLinear    = "linear"
	BookFormula   = "formula"
	BookIsolate   = "isolate"
	BookWorksheet = "worksheet"
	BookProducts  = "notable-products"
	BookClassify  = "classify"
	BookTranslate = "translate"
)

// ErrHistoryDisabled is returned by History when no store is configured.
var ErrHistoryDisabled = errors.New("history is disabled")

// Config holds service configuration
type Config struct {
	// Precision is the number of decimals of formatted results
	Precision int

	// History is optional; nil disables recording
	History store.Store

	// Translator is optional; nil uses the default pattern set
	Translator *translate.Translator
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{Precision: complexnum.DefaultPrecision}
}

// Service is the algebralab calculation service
type Service struct {
	logger     *logging.Logger
	history    store.Store
	translator *translate.Translator
	precision  int
}

// New creates a new service
func New(cfg Config) *Service {
	if cfg.Precision <= 0 {
		cfg.Precision = complexnum.DefaultPrecision
	}
	if cfg.Translator == nil {
		cfg.Translator = translate.New()
	}
	return &Service{
		logger:     logging.New("lab-service"),
		history:    cfg.History,
		translator: cfg.Translator,
		precision:  cfg.Precision,
	}
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(l *logging.Logger) {
	s.logger = l
}

// Translator returns the pattern translator
func (s *Service) Translator() *translate.Translator {
	return s.translator
}

// HistoryStore returns the history store, nil when disabled
func (s *Service) HistoryStore() store.Store {
	return s.history
}

// RequireHistory returns the history store or a SERVICE_UNAVAILABLE error
// when recording is disabled
func (s *Service) RequireHistory() (store.Store, error) {
	if s.history == nil {
		return nil, mdwerror.Wrap(ErrHistoryDisabled, "history").
			WithCode(mdwerror.CodeServiceUnavailable).
			WithOperation("service.history")
	}
	return s.history, nil
}

// Precision returns the number of decimals used for results
func (s *Service) Precision() int {
	return s.precision
}

// Close releases the history store
func (s *Service) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}

func (s *Service) start(op string, input string) *mdwlog.Timer {
	s.logger.Debug("calculation started", "operation", op, "input", input)
	return s.logger.StartTimer(op).WithField("input", input)
}

// finish stops the timer and returns err classified.
func (s *Service) finish(timer *mdwlog.Timer, op string, err error) error {
	if err == nil {
		timer.Stop()
		return nil
	}
	classified := Classify(op, err)
	timer.StopWithError(classified)
	return classified
}

// record adds a history entry. Failures are logged, never returned: the
// history list is best-effort.
func (s *Service) record(ctx context.Context, book, kind, input, output string) {
	if s.history == nil {
		return
	}
	entry := &store.Entry{Book: book, Kind: kind, Input: input, Output: output}
	if err := s.history.Add(ctx, entry); err != nil {
		s.logger.Warn("failed to record history", "book", book, "error", err)
	}
}

// Classify wraps err with the foundation code matching its algebra type:
// PARSE_ERROR, EQUATION_ERROR or ISOLATION_ERROR. Unmatched patterns are
// NOT_FOUND and everything else is INVALID_INPUT.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *mdwerror.Error
	if errors.As(err, &existing) {
		return err
	}

	var (
		parseErr     *algebra.ParseError
		equationErr  *algebra.EquationError
		isolationErr *algebra.IsolationError
		code         mdwerror.Code
	)
	switch {
	case errors.As(err, &parseErr),
		errors.Is(err, algebra.ErrEmptyPolynomial),
		errors.Is(err, algebra.ErrDivisionByZero):
		code = mdwerror.CodeParse
	case errors.As(err, &equationErr):
		code = mdwerror.CodeEquation
	case errors.As(err, &isolationErr):
		code = mdwerror.CodeIsolation
	case errors.Is(err, translate.ErrNoMatch):
		code = mdwerror.CodeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = mdwerror.CodeTimeout
	default:
		code = mdwerror.CodeInvalidInput
	}
	return mdwerror.Wrap(err, op).WithCode(code).WithOperation("service." + op)
}

// Message returns the text to show a user for err: the engine message
// without the operation prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *mdwerror.Error
	if errors.As(err, &e) && e.Unwrap() != nil {
		return e.Unwrap().Error()
	}
	return err.Error()
}

// Render is the inline form used by text front ends: "Error: <message>".
func Render(err error) string {
	return "Error: " + Message(err)
}
