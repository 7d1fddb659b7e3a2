package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Archive.Database != "treegraft" {
		t.Errorf("Archive.Database = %q, want treegraft", cfg.Archive.Database)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9090"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	// Unset sections keep defaults
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want default file", cfg.Cache.Backend)
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "redis"
redis_addr = "redis:6379"

[archive]
mongo_uri = "mongodb://db:27017"
database = "phylo"
collection = "runs"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Archive.MongoURI != "mongodb://db:27017" || cfg.Archive.Collection != "runs" {
		t.Errorf("archive config = %+v", cfg.Archive)
	}
}

func TestLoadRenderFormat(t *testing.T) {
	path := writeConfig(t, `
[render]
default_format = "png"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Render.DefaultFormat != "png" {
		t.Errorf("Render.DefaultFormat = %q, want png", cfg.Render.DefaultFormat)
	}

	bad := writeConfig(t, `
[render]
default_format = "gif"
`)
	if _, err := Load(bad); err == nil {
		t.Error("Load should reject unknown render format")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "memcached"
`)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject unknown cache backend")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[cache\nbackend=")
	if _, err := Load(path); err == nil {
		t.Error("Load should reject malformed TOML")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}

	got := expandHome("~/.cache/treegraft")
	if !strings.HasPrefix(got, home) {
		t.Errorf("expandHome = %q, want prefix %q", got, home)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}
