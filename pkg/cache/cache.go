// Package cache stores generated scenes and rendered artifacts.
//
// # Backends
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry under the user cache directory, for the CLI
//   - [RedisCache]: shared cache for `logtrack serve` deployments
//   - [MongoCache]: document store with a TTL index on expires_at
//
// All backends implement [Cache]. Keys come from a [Keyer] so that CLI and
// server agree on what identifies a scene or an artifact.
//
//	c, err := cache.Open(ctx, cache.Options{Backend: "file"})
//	key := cache.NewDefaultKeyer().SceneKey("two", defHash)
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Entry lifetimes. Scenes are cheap to regenerate; artifacts are not.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// keyVersion is mixed into every key so a change in the serialized formats
// invalidates old entries.
const keyVersion = "v1"

// ArtifactKeyOpts identifies how a scene was rendered.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// SceneKey identifies a generated scene by its example name and the hash
	// of its effective definition.
	SceneKey(example, definitionHash string) string
	// ArtifactKey identifies one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "scene:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(example, definitionHash string) string {
	return hashKey("scene", keyVersion, example, definitionHash)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", keyVersion, sceneHash, opts)
}

// KeyType returns the namespace of a key ("scene", "artifact"), skipping
// any scope prefix added by [ScopedKeyer].
func KeyType(key string) string {
	for _, t := range []string{"scene", "artifact"} {
		if strings.HasPrefix(key, t+":") || strings.Contains(key, ":"+t+":") {
			return t
		}
	}
	return "other"
}
