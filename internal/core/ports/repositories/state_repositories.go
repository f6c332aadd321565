package repositories

import "context"

// StateStore is the durable key-value capability the application state lives
// behind. Reads after a write must return the last written value for a key
// within the same session; the concrete backing (database, file, remote
// store) is an adapter concern.
type StateStore interface {
	// Load returns the serialized state for key, or apperrors.ErrNotFound
	// when nothing was ever saved under it.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save persists value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
