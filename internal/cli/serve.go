package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/internal/server"
	"github.com/matzehuels/spheregrid/pkg/cache"
	"github.com/matzehuels/spheregrid/pkg/observability"
	"github.com/matzehuels/spheregrid/pkg/pipeline"
)

// Environment variables read by serve when the matching flag is unset.
const (
	envAddr  = "SPHEREGRID_ADDR"
	envRedis = "REDIS_URL"
	envMongo = "MONGO_URI"
)

// serveOptions holds the flags of the serve command.
type serveOptions struct {
	addr    string
	redis   string
	mongo   string
	mongoDB string
	prefix  string
	timeout time.Duration
	maxBody int64
	noCache bool
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API for rendering and validating grids.

Results are cached in Redis (--redis), MongoDB (--mongo) or the local cache
directory, in that order of preference. Flags fall back to the environment:

  SPHEREGRID_ADDR   listen address
  REDIS_URL         Redis connection URL
  MONGO_URI         MongoDB connection URI

A .env file in the working directory is loaded first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.addr = flagOrEnv(cmd, "addr", envAddr)
			opts.redis = flagOrEnv(cmd, "redis", envRedis)
			opts.mongo = flagOrEnv(cmd, "mongo", envMongo)
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis URL, e.g. redis://localhost:6379/0")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI, e.g. mongodb://localhost:27017")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", cache.DefaultMongoDatabase, "MongoDB database")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "cache key namespace for shared backends")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "per-request pipeline timeout")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum configuration size in bytes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	cc, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if opts.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.prefix)
	}
	runner := pipeline.NewRunner(cc, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(runner,
		server.WithLogger(c.Logger),
		server.WithTimeout(opts.timeout),
		server.WithMaxBodyBytes(opts.maxBody),
	)
	observability.SetPipelineHooks(srv.Hooks())
	observability.SetCacheHooks(srv.Hooks())
	defer observability.Reset()

	return srv.ListenAndServe(ctx, opts.addr)
}

// serverCache picks the cache backend for the server.
func (c *CLI) serverCache(ctx context.Context, opts serveOptions) (cache.Cache, error) {
	switch {
	case opts.noCache:
		c.Logger.Info("cache disabled")
		return cache.NewNullCache(), nil
	case opts.redis != "":
		c.Logger.Info("using redis cache")
		return cache.NewRedisCache(ctx, opts.redis, cache.WithRedisTTL(cache.TTLScene))
	case opts.mongo != "":
		c.Logger.Info("using mongo cache", "db", opts.mongoDB)
		return cache.NewMongoCache(ctx, opts.mongo, opts.mongoDB)
	}
	c.Logger.Info("using file cache", "dir", c.cachePath())
	return c.newCache(false)
}

// flagOrEnv returns the flag value if it was set explicitly, then the
// environment variable key, then the flag default.
func flagOrEnv(cmd *cobra.Command, name, key string) string {
	value, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) {
		return value
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return value
}
