// Package storage provides the content-addressable blob store behind
// document uploads. The extraction pipeline only ever opens blobs for
// reading; it never mutates them.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// BlobStore is an opaque content-addressable store.
type BlobStore interface {
	// Put stores content under key. Storing the same key twice is a no-op
	// for identical content (keys are content hashes).
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Open returns a reader for the blob at key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// ContentKey derives the store key for a blob: hex SHA-256 of its content.
func ContentKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
