// Package store defines the key-value store every repository persists through,
// plus the available backends. Values are opaque JSON documents; the store
// never interprets them.
package store

import "context"

// Store is the injected persistence interface. Get returns (nil, nil) for a
// missing key, mirroring a null lookup rather than an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
