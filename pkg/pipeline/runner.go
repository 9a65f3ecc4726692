package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/logtrack/pkg/cache"
	"github.com/matzehuels/logtrack/pkg/core/catalog"
	"github.com/matzehuels/logtrack/pkg/core/primitive"
	"github.com/matzehuels/logtrack/pkg/observability"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer uses [cache.DefaultKeyer]; a nil
// cache disables caching.
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

// Execute runs generate → render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	genStart := time.Now()
	scene, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Scene = scene
	result.Stats.GenerateTime = time.Since(genStart)
	result.CacheInfo.SceneHit = hit
	result.Stats.Tracks = len(scene.Tracks)
	for _, c := range scene.Curves {
		result.Stats.Samples += len(c.Samples)
	}
	result.Stats.Polylines, result.Stats.Labels = primitive.Count(scene.Primitives)

	opts.Logger.Info("generated scene",
		"scene", scene.Definition.Name,
		"tracks", result.Stats.Tracks,
		"primitives", result.Stats.Primitives(),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit
	result.SceneHash, _ = SceneHash(scene)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"style", opts.Style,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds the scene, consulting the cache unless
// opts.Refresh is set, and reports whether it was a cache hit.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (scene *catalog.Scene, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	def, err := opts.Definition()
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, string(def.Name))
	start := time.Now()
	defer func() {
		n := 0
		if scene != nil {
			n = len(scene.Primitives)
		}
		hooks.OnGenerateComplete(ctx, string(def.Name), n, time.Since(start), err)
	}()

	defHash, err := cache.HashJSON(def)
	if err != nil {
		return nil, false, fmt.Errorf("hash definition: %w", err)
	}
	key := r.Keyer.SceneKey(string(def.Name), defHash)

	if !opts.Refresh {
		if data, ok, gerr := r.Cache.Get(ctx, key); gerr == nil && ok {
			if cached, uerr := UnmarshalScene(data); uerr == nil {
				return cached, true, nil
			}
			opts.Logger.Debug("discarding unreadable cached scene", "key", key)
		} else if gerr != nil {
			opts.Logger.Warn("scene cache lookup failed", "err", gerr)
		}
	}

	scene, err = def.Build()
	if err != nil {
		return nil, false, err
	}

	if data, merr := MarshalScene(scene); merr == nil {
		if serr := r.Cache.Set(ctx, key, data, cache.TTLScene); serr != nil {
			opts.Logger.Warn("scene cache write failed", "err", serr)
		}
	}
	return scene, false, nil
}

// Generate is GenerateWithCacheInfo without the hit flag.
func (r *Runner) Generate(ctx context.Context, opts Options) (*catalog.Scene, error) {
	scene, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return scene, err
}

// RenderWithCacheInfo renders every requested format. The hit flag is true
// only when all artifacts came from the cache; otherwise every format is
// rendered and written back.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene *catalog.Scene, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if scene == nil {
		return nil, false, fmt.Errorf("no scene to render")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	sceneHash, err := SceneHash(scene)
	if err != nil {
		return nil, false, fmt.Errorf("hash scene: %w", err)
	}

	if !opts.Refresh {
		artifacts = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
			data, ok, gerr := r.Cache.Get(ctx, key)
			if gerr != nil || !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	artifacts, err = Render(scene, opts)
	if err != nil {
		return nil, false, err
	}
	var werr *multierror.Error
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if serr := r.Cache.Set(ctx, key, artifacts[format], cache.TTLArtifact); serr != nil {
			werr = multierror.Append(werr, fmt.Errorf("%s: %w", format, serr))
		}
	}
	if werr.ErrorOrNil() != nil {
		opts.Logger.Warn("artifact cache write failed", "failed", werr.Len(), "err", werr)
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, scene *catalog.Scene, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
