// Package config loads application configuration from TOML files.
//
// Configuration lives at ~/.config/treegraft/config.toml by default and
// configures the cache backend, the archive database, and the server.
// Every field has a sensible default so a missing file is not an error.
//
// Example config:
//
//	[cache]
//	backend = "file"            # "file", "redis", or "none"
//	dir = "~/.cache/treegraft"  # file backend only
//	redis_addr = "localhost:6379"
//
//	[archive]
//	mongo_uri = "mongodb://localhost:27017"
//	database = "treegraft"
//
//	[server]
//	addr = ":8080"
//
//	[render]
//	default_format = "svg"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Archive ArchiveConfig `toml:"archive"`
	Server  ServerConfig  `toml:"server"`
	Render  RenderConfig  `toml:"render"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`

	// RedisAddr is the host:port of the Redis server for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// ArchiveConfig configures the tree document store.
type ArchiveConfig struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RenderConfig sets rendering defaults for the CLI.
type RenderConfig struct {
	// DefaultFormat is used by the render command when no --format flag
	// is given: "svg", "dot", "pdf", or "png".
	DefaultFormat string `toml:"default_format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend:   "file",
			Dir:       "~/.cache/treegraft",
			RedisAddr: "localhost:6379",
		},
		Archive: ArchiveConfig{
			MongoURI:   "mongodb://localhost:27017",
			Database:   "treegraft",
			Collection: "trees",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Render: RenderConfig{
			DefaultFormat: "svg",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "treegraft", "config.toml"), nil
}

// Load reads configuration from the given path, applying defaults for
// unset fields. A missing file yields the defaults. An empty path uses
// [DefaultPath].
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.Cache.Backend {
	case "file", "redis", "none":
	default:
		return cfg, fmt.Errorf("config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}
	switch cfg.Render.DefaultFormat {
	case "svg", "dot", "pdf", "png":
	default:
		return cfg, fmt.Errorf("config %s: unknown render format %q", path, cfg.Render.DefaultFormat)
	}

	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)
	return cfg, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
