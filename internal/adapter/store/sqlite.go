// Package store provides the durable key/value store adapter backed by
// SQLite.
package store

import (
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang-netman/internal/port"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (namespace, key)
);
`

// SQLiteStore implements the KVStore port on a single SQLite database in
// WAL mode. Buckets buffer writes in a transaction until Commit, which
// keeps a namespace either fully updated or untouched across power loss.
type SQLiteStore struct {
	db *sql.DB

	mu     sync.Mutex
	closed bool
}

// Ensure SQLiteStore implements the KVStore port
var _ port.KVStore = (*SQLiteStore)(nil)

// Open opens or creates the database at path and prepares the schema.
func Open(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	// Serialize access through one connection; the daemon is the only
	// writer and SQLite locks at database granularity anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Open returns a bucket scoped to the given namespace.
func (s *SQLiteStore) Open(namespace string) (port.KVBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, port.ErrClosed
	}
	if namespace == "" {
		return nil, fmt.Errorf("empty namespace")
	}
	return &bucket{store: s, namespace: namespace}, nil
}

// Close releases the database. Open buckets become unusable.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// bucket is a namespaced transactional view of the store.
type bucket struct {
	store     *SQLiteStore
	namespace string

	mu     sync.Mutex
	tx     *sql.Tx
	closed bool
}

// Ensure bucket implements the KVBucket port
var _ port.KVBucket = (*bucket)(nil)

// begin returns the pending transaction, starting one on first use so
// reads observe earlier uncommitted writes of the same bucket.
func (b *bucket) begin() (*sql.Tx, error) {
	if b.closed {
		return nil, port.ErrClosed
	}
	if b.tx == nil {
		tx, err := b.store.db.Begin()
		if err != nil {
			return nil, fmt.Errorf("failed to begin store transaction: %w", err)
		}
		b.tx = tx
	}
	return b.tx, nil
}

// GetBlob reads a raw byte value.
func (b *bucket) GetBlob(key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = tx.QueryRow(
		`SELECT value FROM entries WHERE namespace = ? AND key = ?`,
		b.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// SetBlob writes a raw byte value.
func (b *bucket) SetBlob(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO entries (namespace, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		b.namespace, key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// GetU32 reads an unsigned 32-bit value.
func (b *bucket) GetU32(key string) (uint32, error) {
	value, err := b.GetBlob(key)
	if err != nil {
		return 0, err
	}
	if len(value) != 4 {
		return 0, fmt.Errorf("key %s holds %d bytes, want 4", key, len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

// SetU32 writes an unsigned 32-bit value.
func (b *bucket) SetU32(key string, value uint32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, value)
	return b.SetBlob(key, buf)
}

// EraseAll removes every key in the namespace.
func (b *bucket) EraseAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM entries WHERE namespace = ?`, b.namespace); err != nil {
		return fmt.Errorf("failed to erase namespace %s: %w", b.namespace, err)
	}
	return nil
}

// Commit makes all pending writes durable. A commit with no pending writes
// is a no-op.
func (b *bucket) Commit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return port.ErrClosed
	}
	if b.tx == nil {
		return nil
	}
	tx := b.tx
	b.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit store transaction: %w", err)
	}
	return nil
}

// Close releases the bucket, discarding uncommitted writes.
func (b *bucket) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.tx != nil {
		tx := b.tx
		b.tx = nil
		if err := tx.Rollback(); err != nil {
			return fmt.Errorf("failed to roll back store transaction: %w", err)
		}
	}
	return nil
}
