// Package config resolves orienteer settings from defaults, a YAML file, a
// .env file and ORIENTEER_* environment variables, in increasing priority.
// Command-line flags are applied on top by the caller.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orienteer/internal/logger"
)

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// FileName is the configuration file looked up under the XDG config dirs.
const FileName = "orienteer/config.yaml"

// Config holds every tunable of the command surface.
type Config struct {
	Budget    int64         `yaml:"budget"`
	Parallel  bool          `yaml:"parallel"`
	Workers   int           `yaml:"workers"`
	Timeout   time.Duration `yaml:"timeout"`
	LogLevel  string        `yaml:"logLevel"`
	LogFormat string        `yaml:"logFormat"`
	StorePath string        `yaml:"storePath"`
	Seed      int64         `yaml:"seed"`
	SpawnRate float64       `yaml:"spawnRate"`
	MapSize   int           `yaml:"mapSize"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Budget:    50,
		LogLevel:  "info",
		LogFormat: logger.FormatAuto,
		StorePath: filepath.Join(xdg.DataHome, "orienteer", "orienteer.db"),
		SpawnRate: 0.5,
		MapSize:   10,
	}
}

// Option customizes Load.
type Option func(*loader)

type loader struct {
	envFiles []string
	lookup   func(string) (string, bool)
}

// WithEnvFiles replaces the .env files read by Load. Missing files are
// skipped.
func WithEnvFiles(names ...string) Option {
	return func(l *loader) { l.envFiles = names }
}

// WithLookup replaces os.LookupEnv as the process environment source.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(l *loader) { l.lookup = fn }
}

// Load resolves the configuration. An empty path searches the XDG config
// directories for FileName and uses defaults when none exists; an explicit
// path must exist.
func Load(path string, opts ...Option) (*Config, error) {
	l := &loader{envFiles: []string{".env"}, lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}

	cfg := Default()
	if path == "" {
		if found, err := xdg.SearchConfigFile(FileName); err == nil {
			path = found
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	env, err := l.environ()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return errors.Wrapf(err, "config: parse %s", path)
	}

	return nil
}

// environ merges the .env files under the process environment.
func (l *loader) environ() (func(string) (string, bool), error) {
	dotenv := map[string]string{}
	for _, name := range l.envFiles {
		vals, err := godotenv.Read(name)
		if err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				continue
			}

			return nil, errors.Wrapf(err, "config: read %s", name)
		}
		for k, v := range vals {
			dotenv[k] = v
		}
	}

	return func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]

		return v, ok
	}, nil
}

const envPrefix = "ORIENTEER_"

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}
	parse := func(key string, set func(string) error) error {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return nil
		}
		if err := set(v); err != nil {
			return errors.Wrapf(ErrInvalid, "%s%s=%q: %v", envPrefix, key, v, err)
		}

		return nil
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("STORE", &c.StorePath)

	steps := []struct {
		key string
		set func(string) error
	}{
		{"BUDGET", func(v string) (err error) { c.Budget, err = strconv.ParseInt(v, 10, 64); return }},
		{"PARALLEL", func(v string) (err error) { c.Parallel, err = strconv.ParseBool(v); return }},
		{"WORKERS", func(v string) (err error) { c.Workers, err = strconv.Atoi(v); return }},
		{"TIMEOUT", func(v string) (err error) { c.Timeout, err = time.ParseDuration(v); return }},
		{"SEED", func(v string) (err error) { c.Seed, err = strconv.ParseInt(v, 10, 64); return }},
		{"SPAWN_RATE", func(v string) (err error) { c.SpawnRate, err = strconv.ParseFloat(v, 64); return }},
		{"MAP_SIZE", func(v string) (err error) { c.MapSize, err = strconv.Atoi(v); return }},
	}
	for _, s := range steps {
		if err := parse(s.key, s.set); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	switch {
	case c.Budget <= 0:
		return errors.Wrapf(ErrInvalid, "budget %d must be positive", c.Budget)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers %d must not be negative", c.Workers)
	case c.Timeout < 0:
		return errors.Wrapf(ErrInvalid, "timeout %s must not be negative", c.Timeout)
	case c.SpawnRate < 0 || c.SpawnRate > 1:
		return errors.Wrapf(ErrInvalid, "spawn rate %g not in [0,1]", c.SpawnRate)
	case c.MapSize < 1:
		return errors.Wrapf(ErrInvalid, "map size %d must be at least 1", c.MapSize)
	case c.StorePath == "":
		return errors.Wrap(ErrInvalid, "store path is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log level: %v", err)
	}
	switch c.LogFormat {
	case logger.FormatAuto, logger.FormatText, logger.FormatJSON:
	default:
		return errors.Wrapf(ErrInvalid, "log format %q", c.LogFormat)
	}

	return nil
}
