package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DataStore is the key/value interface the storage layer persists documents
// through. Values are opaque strings (JSON documents in practice).
type DataStore interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Snapshot(ctx context.Context) (map[string]string, error)
	Restore(ctx context.Context, items map[string]string) error
}

// StorageRepo implements DataStore on the local_storage table
type StorageRepo struct {
	db *sql.DB
}

// NewStorageRepo creates a repository wrapping the given database connection
func NewStorageRepo(db *sql.DB) *StorageRepo {
	return &StorageRepo{db: db}
}

// GetItem returns the value stored under key; ok is false when the key is absent
func (r *StorageRepo) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores value under key, replacing any previous value
func (r *StorageRepo) SetItem(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (r *StorageRepo) RemoveItem(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order
func (r *StorageRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM local_storage ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Snapshot returns every key with its value
func (r *StorageRepo) Snapshot(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM local_storage`)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items[key] = value
	}
	return items, rows.Err()
}

// Restore writes all items in a single transaction. Keys not in items are kept.
func (r *StorageRepo) Restore(ctx context.Context, items map[string]string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for key, value := range items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
			`, key, value)
			if err != nil {
				return fmt.Errorf("failed to restore key %q: %w", key, err)
			}
		}
		return nil
	})
}
