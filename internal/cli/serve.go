package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlutz/depline/internal/server"
	"github.com/mlutz/depline/pkg/cache"
	"github.com/mlutz/depline/pkg/config"
	"github.com/mlutz/depline/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the depline HTTP API",
		Long: `Run the depline HTTP API.

The API accepts a dependency document as pasted text (POST /v1/expand)
or as an uploaded file (POST /v1/expand/upload) and responds with the
normalized input and the expanded output.

Configuration is read from an optional TOML file; --addr overrides the
configured listen address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	store, err := serveCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, c.Logger)
	defer runner.Close()

	return server.New(cfg, runner, c.Logger).Run(ctx)
}

// serveCache builds the cache backend selected in the config.
func serveCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	case config.BackendNone:
		return cache.NewNullCache(), nil
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}
