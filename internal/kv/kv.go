// Package kv provides the durable key-value capability the storefront
// persists client state into (cart blob, session). Implementations range
// from an in-memory map for tests to Redis and Postgres for real installs.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
