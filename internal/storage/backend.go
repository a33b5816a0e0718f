// Package storage defines the document backend shared by the account and
// record stores, and the layout that maps users to document keys.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Backend.Read when no document exists under key.
var ErrNotFound = errors.New("document not found")

// Backend reads and writes whole JSON documents by key.
//
// Write must replace the document atomically from a reader's point of view.
// Backends do no locking: concurrent writers race and the last one wins.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}
