// ============================================================================
// algebralab - Algebra teaching toolkit
// ============================================================================
//
// Package:     store
// Description: SQLite-backed history of recent calculations
// Author:      algebralab team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"
)

// DefaultCapacity is the number of entries kept per book.
const DefaultCapacity = 10

// Entry is one recorded calculation.
type Entry struct {
	ID        string                 `json:"id" yaml:"id"`
	Book      string                 `json:"book" yaml:"book"`
	Kind      string                 `json:"kind" yaml:"kind"`
	Input     string                 `json:"input" yaml:"input"`
	Output    string                 `json:"output" yaml:"output"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at" yaml:"created_at"`
}

// Store defines the interface for history persistence
type Store interface {
	Add(ctx context.Context, entry *Entry) error
	List(ctx context.Context, book string, limit int) ([]*Entry, error)
	Clear(ctx context.Context, book string) (int64, error)
	Books(ctx context.Context) (map[string]int, error)
	Export(ctx context.Context, book string, format string, w io.Writer) error
	Close() error
}

// SQLiteStore implements Store using SQLite. Each book keeps at most
// Capacity entries; adding beyond that drops the oldest.
type SQLiteStore struct {
	db       *sql.DB
	mu       sync.RWMutex
	capacity int
}

// Config holds configuration for the SQLite store
type Config struct {
	Path     string
	Capacity int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path:     "./data/history.db",
		Capacity: DefaultCapacity,
	}
}

// New creates a new SQLite-based history store
func New(cfg Config) (*SQLiteStore, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db, capacity: cfg.Capacity}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		book TEXT NOT NULL,
		kind TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_book_seq ON history(book, seq DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Capacity returns the per-book entry limit.
func (s *SQLiteStore) Capacity() int { return s.capacity }

// Add records an entry and trims its book to the capacity.
func (s *SQLiteStore) Add(ctx context.Context, entry *Entry) error {
	if entry.Book == "" {
		return fmt.Errorf("history entry needs a book")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	var metadataJSON []byte
	if entry.Metadata != nil {
		metadataJSON, _ = json.Marshal(entry.Metadata)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, book, kind, input, output, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Book, entry.Kind, entry.Input, entry.Output, metadataJSON, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE book = ? AND seq NOT IN (
			SELECT seq FROM history WHERE book = ? ORDER BY seq DESC LIMIT ?
		)
	`, entry.Book, entry.Book, s.capacity); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns the entries of a book, newest first. An empty book lists
// all books; limit <= 0 means no limit.
func (s *SQLiteStore) List(ctx context.Context, book string, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, book, kind, input, output, metadata, created_at FROM history WHERE 1=1`
	var args []interface{}
	if book != "" {
		query += " AND book = ?"
		args = append(args, book)
	}
	query += " ORDER BY seq DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var metadataJSON sql.NullString
		if err := rows.Scan(&e.ID, &e.Book, &e.Kind, &e.Input, &e.Output, &metadataJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if metadataJSON.Valid && metadataJSON.String != "" {
			_ = json.Unmarshal([]byte(metadataJSON.String), &e.Metadata)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Clear deletes the entries of a book, or of every book when book is empty.
func (s *SQLiteStore) Clear(ctx context.Context, book string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res sql.Result
	var err error
	if book == "" {
		res, err = s.db.ExecContext(ctx, `DELETE FROM history`)
	} else {
		res, err = s.db.ExecContext(ctx, `DELETE FROM history WHERE book = ?`, book)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

// Books returns the number of entries per book.
func (s *SQLiteStore) Books(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT book, COUNT(*) FROM history GROUP BY book`)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}
	defer rows.Close()

	books := make(map[string]int)
	for rows.Next() {
		var book string
		var n int
		if err := rows.Scan(&book, &n); err != nil {
			return nil, fmt.Errorf("failed to scan history count: %w", err)
		}
		books[book] = n
	}
	return books, rows.Err()
}

// Export writes the entries of a book as "json" or "yaml".
func (s *SQLiteStore) Export(ctx context.Context, book string, format string, w io.Writer) error {
	entries, err := s.List(ctx, book, 0)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*Entry{}
	}

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
