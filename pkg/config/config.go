// Package config loads the optional logtrack configuration file.
//
// The file lives at $XDG_CONFIG_HOME/logtrack/config.toml (see [Path]) and
// supplies defaults that command-line flags override:
//
//	[render]
//	style = "paper"
//	width = 800
//	formats = ["svg", "png"]
//
//	[cache]
//	backend = "redis"
//	ttl = "72h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
// A missing file is not an error; [Load] then returns [Default].
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/logtrack/pkg/cache"
	errs "github.com/matzehuels/logtrack/pkg/errors"
)

// EnvPath overrides the config file location.
const EnvPath = "LOGTRACK_CONFIG"

// Config is the decoded configuration file.
type Config struct {
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Render holds rendering defaults.
type Render struct {
	Style   string   `toml:"style"`
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Formats []string `toml:"formats"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend string        `toml:"backend"`
	TTL     time.Duration `toml:"ttl"`
	Dir     string        `toml:"dir"`
	Redis   Redis         `toml:"redis"`
	Mongo   Mongo         `toml:"mongo"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Server configures `logtrack serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: Render{Style: "dark", Formats: []string{"svg"}},
		Cache:  Cache{Backend: cache.BackendFile},
		Server: Server{Addr: ":8080"},
	}
}

// Path returns the config file location: $LOGTRACK_CONFIG if set, otherwise
// config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logtrack", "config.toml"), nil
}

// Load reads the config file at [Path]. A missing file yields [Default].
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path over [Default].
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read decodes a config from r over [Default]. Unknown keys are rejected.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errs.New(errs.ErrCodeInvalidInput, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Cache.TTL < 0 {
		return Config{}, errs.New(errs.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	return cfg, nil
}

// CacheOptions converts the [cache] section for [cache.Open].
func (c Cache) CacheOptions() cache.Options {
	return cache.Options{
		Backend: c.Backend,
		Dir:     c.Dir,
		Redis: cache.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		},
	}
}
