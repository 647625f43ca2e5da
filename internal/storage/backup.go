package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

var (
	// ErrUnknownKey is returned by Import for keys lifeos does not own
	ErrUnknownKey = errors.New("unknown storage key")
	// ErrInvalidBackup is returned by Import when the input is not a JSON object
	ErrInvalidBackup = errors.New("invalid backup")
)

// Snapshotter reads and restores the whole store
type Snapshotter interface {
	Snapshot(ctx context.Context) (map[string]string, error)
	Restore(ctx context.Context, items map[string]string) error
}

// Export writes every lifeos document as one JSON object keyed by storage
// key. Stored values that are not valid JSON are skipped.
func Export(ctx context.Context, store Snapshotter, w io.Writer) error {
	items, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}

	out := make(map[string]json.RawMessage, len(items))
	for _, key := range slices.Sorted(maps.Keys(items)) {
		if !IsKnownKey(key) || !json.Valid([]byte(items[key])) {
			continue
		}
		out[key] = json.RawMessage(items[key])
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// Import reads an object produced by Export and restores it. Documents not
// present in the input are left untouched. It returns the restored keys.
func Import(ctx context.Context, store Snapshotter, r io.Reader) ([]string, error) {
	var in map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	items := make(map[string]string, len(in))
	for key, raw := range in {
		if !IsKnownKey(key) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		items[key] = string(raw)
	}

	if err := store.Restore(ctx, items); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(items)), nil
}
