// Package kv is the device-local key-value store every client service
// persists through. Values are opaque bytes (JSON text in practice); a
// missing key is reported as ok=false, distinct from an empty value.
package kv

import "context"

// Store is implemented by the SQLite backend and the in-memory backend.
//
// Backend failures are wrapped with common.ErrStorageRead or
// common.ErrStorageWrite. SetMany and multi-key Delete are all-or-nothing.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}
