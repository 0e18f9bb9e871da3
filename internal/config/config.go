// Package config loads editor configuration: built-in defaults patched
// from config files. Files may be YAML or TOML; a missing or unreadable
// file leaves the defaults untouched.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPatchFiles are consulted in order; later files win.
var DefaultPatchFiles = []string{"/etc/jex", "~/.jex", ".jex"}

// Config is the effective editor configuration.
type Config struct {
	Preview PreviewConfig `yaml:"preview" toml:"preview"`
	Keys    KeysConfig    `yaml:"keys" toml:"keys"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// PreviewConfig tunes the preview pane.
type PreviewConfig struct {
	// MaxSize caps how large a value the preview materializes, e.g.
	// "1 MiB", "512 KiB", or a byte count.
	MaxSize string `yaml:"max_size" toml:"max_size"`
	// MinPercent and MaxPercent bound the pane split.
	MinPercent int `yaml:"min_percent" toml:"min_percent"`
	MaxPercent int `yaml:"max_percent" toml:"max_percent"`
	// Percent is the initial split.
	Percent int `yaml:"percent" toml:"percent"`
}

// KeysConfig selects the keybinding mode.
type KeysConfig struct {
	Mode string `yaml:"mode" toml:"mode"`
}

// LogConfig configures the log sink.
type LogConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level int8   `yaml:"level" toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preview: PreviewConfig{
			MaxSize:    "1 MiB",
			MinPercent: 20,
			MaxPercent: 80,
			Percent:    65,
		},
		Keys: KeysConfig{Mode: "vim"},
	}
}

// patch mirrors Config with optional fields; only set fields override.
type patch struct {
	Preview struct {
		MaxSize    *string `yaml:"max_size" toml:"max_size"`
		MinPercent *int    `yaml:"min_percent" toml:"min_percent"`
		MaxPercent *int    `yaml:"max_percent" toml:"max_percent"`
		Percent    *int    `yaml:"percent" toml:"percent"`
	} `yaml:"preview" toml:"preview"`
	Keys struct {
		Mode *string `yaml:"mode" toml:"mode"`
	} `yaml:"keys" toml:"keys"`
	Log struct {
		File  *string `yaml:"file" toml:"file"`
		Level *int8   `yaml:"level" toml:"level"`
	} `yaml:"log" toml:"log"`
}

// Load builds the effective config: defaults, then the standard patch
// files, then the explicit path if given.
func Load(explicit string) Config {
	cfg := Default()
	paths := DefaultPatchFiles
	if explicit != "" {
		paths = append(append([]string{}, paths...), explicit)
	}
	return cfg.PatchFromFiles(paths...)
}

// PatchFromFiles applies each readable, parseable file in order. Files
// that are missing or malformed are skipped.
func (c Config) PatchFromFiles(paths ...string) Config {
	for _, path := range paths {
		data, err := os.ReadFile(expandHome(path))
		if err != nil {
			continue
		}
		p, err := parsePatch(path, data)
		if err != nil {
			continue
		}
		c = c.apply(p)
	}
	return c
}

// parsePatch decodes by extension; extensionless files try YAML first,
// then TOML.
func parsePatch(path string, data []byte) (patch, error) {
	var p patch
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return p, toml.Unmarshal(data, &p)
	case ".yaml", ".yml", ".json":
		return p, yaml.Unmarshal(data, &p)
	}
	if err := yaml.Unmarshal(data, &p); err == nil {
		return p, nil
	}
	p = patch{}
	return p, toml.Unmarshal(data, &p)
}

func (c Config) apply(p patch) Config {
	if p.Preview.MaxSize != nil {
		c.Preview.MaxSize = *p.Preview.MaxSize
	}
	if p.Preview.MinPercent != nil {
		c.Preview.MinPercent = *p.Preview.MinPercent
	}
	if p.Preview.MaxPercent != nil {
		c.Preview.MaxPercent = *p.Preview.MaxPercent
	}
	if p.Preview.Percent != nil {
		c.Preview.Percent = *p.Preview.Percent
	}
	if p.Keys.Mode != nil {
		c.Keys.Mode = *p.Keys.Mode
	}
	if p.Log.File != nil {
		c.Log.File = *p.Log.File
	}
	if p.Log.Level != nil {
		c.Log.Level = *p.Log.Level
	}
	return c
}

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

// MaxSizeBytes parses the preview size limit. Plain integers are bytes;
// KiB, MiB and GiB suffixes are accepted with an optional space.
func (c Config) MaxSizeBytes() (int64, error) {
	s := strings.TrimSpace(c.Preview.MaxSize)
	if s == "" {
		return 1 << 20, nil
	}
	mult := int64(1)
	upper := strings.ToUpper(s)
	for suffix, m := range map[string]int64{"KIB": 1 << 10, "MIB": 1 << 20, "GIB": 1 << 30} {
		if strings.HasSuffix(upper, suffix) {
			mult = m
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid preview max_size %q: %w", c.Preview.MaxSize, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid preview max_size %q: negative", c.Preview.MaxSize)
	}
	return n * mult, nil
}
