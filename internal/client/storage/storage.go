// Package storage provides the durable per-profile key/value store the
// session layer persists its token into. Exactly one key is used in
// production; the store itself is generic.
package storage

import "context"

// Store is a small durable key/value surface.
//
// Get reports absence as an empty string with a nil error; only real
// storage failures produce errors. Delete on a missing key is a no-op.
type Store interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
