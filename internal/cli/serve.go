package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcakit/ishikawa/internal/api"
	"github.com/rcakit/ishikawa/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	redisAddr string        // Redis address; enables the shared cache backend
	redisPass string        // Redis password
	redisDB   int           // Redis database number
	cacheDir  string        // file cache directory, used when Redis is not configured
	cacheTTL  time.Duration // artifact TTL
	noCache   bool          // disable artifact memoization
}

// newServeCmd creates the serve command for running the HTTP rendering
// service. Cache backend selection: Redis when --redis is set, otherwise a
// file cache, or none with --no-cache.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		cacheTTL: 24 * time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the shared artifact cache (e.g., localhost:6379)")
	cmd.Flags().StringVar(&opts.redisPass, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory (default: user cache dir)")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "artifact cache TTL")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact memoization")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled, then
// drains in-flight requests before returning.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := serveCache(opts)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := api.NewServer(c, logger, api.WithCacheTTL(opts.cacheTTL))
	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// serveCache builds the artifact cache backend for the HTTP service.
func serveCache(opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(opts.redisAddr, opts.redisPass, opts.redisDB), nil
	}
	dir := opts.cacheDir
	if dir == "" {
		var err error
		dir, err = defaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.NewFileCache(dir)
}
