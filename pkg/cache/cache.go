// Package cache stores rendered diagrams so identical frames are not laid
// out by Graphviz twice.
//
// Entries are addressed by [ArtifactKey], which hashes the DOT source with
// the output options. Equal keys always mean equal bytes, so entries need no
// invalidation; an optional TTL bounds disk use.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey(dot, "svg", 0)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey identifies the rendering of dot in format at scale.
// Scale only matters for raster formats; pass 0 otherwise.
func ArtifactKey(dot, format string, scale float64) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(scale, 'g', -1, 64)))
	h.Write([]byte{0})
	h.Write([]byte(dot))
	return "artifact:" + format + ":" + hex.EncodeToString(h.Sum(nil))
}
