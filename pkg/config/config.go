// Package config loads graphwalk settings from a TOML file.
//
// All settings are optional. A missing file, or a file that only sets some
// keys, falls back to [Default] for everything else:
//
//	[canvas]
//	width  = 700
//	height = 480
//	radius = 22
//
//	[animation]
//	interval = "700ms"
//
//	[log]
//	level = "info"
//
//	[cache]
//	dir = ""       # default: the user cache dir
//	ttl = "720h"   # 0 keeps rendered diagrams forever
//
// The default graph topology is fixed and cannot be configured.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphwalk/pkg/anim"
	"github.com/matzehuels/graphwalk/pkg/graph"
)

// AppName names the config directory.
const AppName = "graphwalk"

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds every user-tunable setting.
type Config struct {
	Canvas    graph.Canvas `toml:"canvas"`
	Animation Animation    `toml:"animation"`
	Log       Log          `toml:"log"`
	Cache     Cache        `toml:"cache"`
}

// Animation configures the traversal animation.
type Animation struct {
	Interval time.Duration `toml:"interval"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
}

// Cache configures the rendered diagram cache.
type Cache struct {
	Dir string        `toml:"dir"`
	TTL time.Duration `toml:"ttl"`
}

// DefaultCacheTTL bounds how long rendered diagrams are kept.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas:    graph.DefaultCanvas,
		Animation: Animation{Interval: anim.DefaultInterval},
		Log:       Log{Level: "info"},
		Cache:     Cache{TTL: DefaultCacheTTL},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Canvas.Radius <= 0 {
		return fmt.Errorf("canvas.radius must be > 0, got %v", c.Canvas.Radius)
	}
	if c.Canvas.Width < 2*c.Canvas.Radius || c.Canvas.Height < 2*c.Canvas.Radius {
		return fmt.Errorf("canvas %vx%v is smaller than one node (radius %v)", c.Canvas.Width, c.Canvas.Height, c.Canvas.Radius)
	}
	if c.Animation.Interval <= 0 {
		return fmt.Errorf("animation.interval must be > 0, got %v", c.Animation.Interval)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0, got %v", c.Cache.TTL)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Load reads the config at path on top of Default.
//
// A missing file is not an error. Unknown keys are returned in undecoded
// (sorted, dotted form) so callers can warn about typos.
func Load(path string) (cfg Config, undecoded []string, err error) {
	if path == "" {
		return Default(), nil, nil
	}

	text, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil, nil
		}
		return Default(), nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, undecoded, err = Parse(string(text))
	if err != nil {
		return cfg, nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, undecoded, nil
}

// Parse decodes TOML text on top of Default and validates the result.
// On error it returns Default.
func Parse(text string) (cfg Config, undecoded []string, err error) {
	cfg = Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Default(), nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), nil, fmt.Errorf("invalid config: %w", err)
	}

	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	sort.Strings(undecoded)
	return cfg, undecoded, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/graphwalk/config.toml, falling back
// to ~/.config/graphwalk/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// CacheDir returns Cache.Dir, or graphwalk/render below the user cache
// directory when unset.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "render"), nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) (string, error) {
	var b strings.Builder
	enc := toml.NewEncoder(&b)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return b.String(), nil
}
