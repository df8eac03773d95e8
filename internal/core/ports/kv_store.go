package ports

import "context"

// KeyValueStore is the durable persistence port: a mapping from string keys
// to raw JSON documents. Collaborators write under disjoint keys; the order
// core owns a single key holding the full serialized collection, rewritten
// wholesale on every mutation.
type KeyValueStore interface {
	// Get returns the raw value for key. The second result is false when
	// the key is absent; that is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes the raw value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
