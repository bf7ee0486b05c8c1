package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/spheregrid/pkg/assemble"
	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
	"github.com/matzehuels/spheregrid/pkg/observability"
	"github.com/matzehuels/spheregrid/pkg/render/sink"
	"github.com/matzehuels/spheregrid/pkg/scene"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner can serve concurrent calls.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer
// uses cache.DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs generate → render for cfg.
func (r *Runner) Execute(ctx context.Context, cfg *grid.Config, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	start := time.Now()
	s, configHash, hit, err := r.GenerateWithCacheInfo(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Scene = s
	result.ConfigHash = configHash
	result.CacheInfo.SceneHit = hit
	result.Stats.GenerateTime = time.Since(start)
	result.Stats.NodeCount = len(cfg.Nodes)
	result.Stats.EdgeCount = len(s.Layer(assemble.LayerConnectors).Children)
	result.Stats.Warnings = len(s.Warnings)

	r.Logger.Info("generated scene",
		"id", s.ID,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	start = time.Now()
	artifacts, sceneHash, hit, err := r.RenderWithCacheInfo(ctx, s, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SceneHash = sceneHash
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(start)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo returns the scene for cfg, the config hash, and
// whether the scene came from the cache.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, cfg *grid.Config, opts Options) (*scene.Scene, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}
	if cfg == nil {
		return nil, "", false, errors.New(errors.ErrCodeInvalidConfig, "configuration is nil")
	}

	canonical, err := grid.Canonical(cfg)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "canonicalize config")
	}
	configHash := cache.Hash(canonical)
	key := r.Keyer.SceneKey(configHash, opts.SceneKeyOpts(cfg))

	if !opts.Refresh {
		if data, ok := r.get(ctx, observability.KindScene, key); ok {
			if s, err := sink.ReadJSON(data); err == nil {
				return s, configHash, true, nil
			}
			// Undecodable entry: regenerate and overwrite.
		}
	}

	genOpts := []assemble.Option{
		assemble.WithPolicy(opts.Policy()),
		assemble.WithLogger(opts.Logger),
	}
	if opts.Seed != nil {
		genOpts = append(genOpts, assemble.WithSeed(*opts.Seed))
	}
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, len(cfg.Nodes))
	start := time.Now()
	s, err := assemble.Generate(cfg, genOpts...)
	hooks.OnGenerateComplete(ctx, len(cfg.Nodes), time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	if data, err := sink.RenderJSON(s, sink.WithCompactJSON()); err == nil {
		r.set(ctx, observability.KindScene, key, data, cache.TTLScene)
	}
	return s, configHash, false, nil
}

// Generate is GenerateWithCacheInfo without the cache details.
func (r *Runner) Generate(ctx context.Context, cfg *grid.Config, opts Options) (*scene.Scene, error) {
	s, _, _, err := r.GenerateWithCacheInfo(ctx, cfg, opts)
	return s, err
}

// RenderWithCacheInfo renders every requested format of s. Cached
// artifacts are reused; the rest are rendered concurrently. It returns the
// artifacts, the scene hash, and whether every artifact was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *scene.Scene, cfg *grid.Config, opts Options) (map[string][]byte, string, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", false, err
	}

	sceneData, err := sink.RenderJSON(s, sink.WithCompactJSON())
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			if data, ok := r.get(ctx, observability.KindArtifact, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))); ok {
				artifacts[format] = data
				continue
			}
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, sceneHash, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range missing {
		g.Go(func() error {
			data, err := Render(gctx, s, cfg, format, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	for _, format := range missing {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		r.set(ctx, observability.KindArtifact, key, artifacts[format], cache.TTLArtifact)
	}
	return artifacts, sceneHash, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads key, retrying transient backend failures. Errors count as a
// miss; the cache never fails a run.
func (r *Runner) get(ctx context.Context, kind, key string) ([]byte, bool) {
	var (
		data []byte
		hit  bool
	)
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, kind)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, kind)
	return nil, false
}

func (r *Runner) set(ctx context.Context, kind, key string, data []byte, ttl time.Duration) {
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
