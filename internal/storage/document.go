package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnchanged can be returned from an Update callback to skip the write
var ErrUnchanged = errors.New("document unchanged")

// KV is the subset of the key/value store a Document needs
type KV interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
}

// Document is a typed JSON document stored under a single key.
// Update serializes read-modify-write cycles within the process.
type Document[T any] struct {
	mu    sync.Mutex
	store KV
	key   string
}

// NewDocument binds a document type to key in store
func NewDocument[T any](store KV, key string) *Document[T] {
	return &Document[T]{store: store, key: key}
}

// Key returns the storage key
func (d *Document[T]) Key() string {
	return d.key
}

// Load reads the document. A missing key yields the zero value; a value that
// does not parse is logged and also yields the zero value.
func (d *Document[T]) Load(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

// Save replaces the stored document with v
func (d *Document[T]) Save(ctx context.Context, v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(ctx, v)
}

// Update loads the document, passes it to fn and saves the result if fn
// returns nil. Returning ErrUnchanged skips the save without an error; any
// other error is returned as is and nothing is written.
func (d *Document[T]) Update(ctx context.Context, fn func(*T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := d.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&v); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}
		return err
	}
	return d.save(ctx, v)
}

func (d *Document[T]) load(ctx context.Context) (T, error) {
	var v T
	raw, ok, err := d.store.GetItem(ctx, d.key)
	if err != nil {
		return v, fmt.Errorf("loading %s: %w", d.key, err)
	}
	if !ok {
		return v, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("discarding malformed stored document", "key", d.key, "error", err)
		var zero T
		return zero, nil
	}
	return v, nil
}

func (d *Document[T]) save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.key, err)
	}
	if err := d.store.SetItem(ctx, d.key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", d.key, err)
	}
	return nil
}
