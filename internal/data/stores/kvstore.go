package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/reel/internal/core/kv"
	"github.com/colonyops/reel/internal/data/db"
)

// PrefStore implements kv.KV over the preferences table.
type PrefStore struct {
	db *db.DB
}

var _ kv.KV = (*PrefStore)(nil)

// NewPrefStore creates a new SQLite-backed preference store.
func NewPrefStore(db *db.DB) *PrefStore {
	return &PrefStore{db: db}
}

// Get retrieves and deserializes a value by key.
// Returns an error wrapping sql.ErrNoRows if the key does not exist.
func (s *PrefStore) Get(ctx context.Context, key string, dest any) error {
	var raw string
	err := s.db.Conn().QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE key = ?", key,
	).Scan(&raw)
	if err != nil {
		return fmt.Errorf("pref get %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("pref get %q unmarshal: %w", key, err)
	}

	return nil
}

// Set stores a value, replacing any previous one.
func (s *PrefStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("pref set %q marshal: %w", key, err)
	}

	_, err = s.db.Conn().ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("pref set %q: %w", key, err)
	}

	return nil
}

// Delete removes a key.
func (s *PrefStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Conn().ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key); err != nil {
		return fmt.Errorf("pref delete %q: %w", key, err)
	}
	return nil
}

// Has returns whether a key exists.
func (s *PrefStore) Has(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.Conn().QueryRowContext(ctx,
		"SELECT 1 FROM preferences WHERE key = ?", key,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pref has %q: %w", key, err)
	}
	return true, nil
}

// ListKeys returns all keys in sorted order.
func (s *PrefStore) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.Conn().QueryContext(ctx, "SELECT key FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("pref list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("pref list keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
