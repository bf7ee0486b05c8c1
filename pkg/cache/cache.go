// Package cache stores generated scenes and rendered artifacts.
//
// A [Cache] is a plain byte store with per-entry TTLs. Keys are derived by a
// [Keyer] from content hashes, so a changed config or option always lands
// on a fresh key and nothing needs explicit invalidation.
//
// Backends:
//
//   - [FileCache]: one file per entry under a directory, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
//   - [MongoCache]: shared cache for deployments that already run MongoDB
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Default TTLs. Scenes and artifacts are pure functions of their keys, so
// the TTL only bounds storage growth.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store keyed by strings.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SceneKeyOpts holds the generation options that change a scene.
type SceneKeyOpts struct {
	Seed    uint32 `json:"seed"`
	Lenient bool   `json:"lenient"`
}

// ArtifactKeyOpts holds the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// SceneKey keys a generated scene by the hash of its canonical config.
	SceneKey(configHash string, opts SceneKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) SceneKey(configHash string, opts SceneKeyOpts) string {
	return hashKey("scene", configHash, opts)
}

func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, sceneHash, opts)
}
