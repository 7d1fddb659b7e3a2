package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treegraft/treegraft/internal/server"
	"github.com/treegraft/treegraft/pkg/archive"
	"github.com/treegraft/treegraft/pkg/cache"
	"github.com/treegraft/treegraft/pkg/config"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noArchive  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the treegraft HTTP API server",
		Long: `Run the HTTP API server.

The cache backend and archive database come from the config file
(~/.config/treegraft/config.toml by default). Without a reachable
MongoDB the archive endpoints can be disabled with --no-archive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg, noArchive)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "disable the tree archive endpoints")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config, noArchive bool) error {
	logger := loggerFromContext(ctx)

	srvCache, err := serverCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer srvCache.Close()

	var store archive.Store
	if !noArchive {
		s, err := archive.NewMongoStore(ctx, archive.MongoConfig{
			URI:        cfg.Archive.MongoURI,
			Database:   cfg.Archive.Database,
			Collection: cfg.Archive.Collection,
		})
		if err != nil {
			return fmt.Errorf("connect archive (use --no-archive to skip): %w", err)
		}
		defer func() { _ = s.Close(context.Background()) }()
		store = s
	}

	srv := server.New(server.Options{
		Logger: logger,
		Cache:  srvCache,
		Store:  store,
	})
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

// serverCache builds the cache backend named by the config.
func serverCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	case "file":
		return cache.NewFileCache(cfg.Dir)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
