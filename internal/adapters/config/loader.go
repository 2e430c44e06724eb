// Package config loads the lintsync workspace configuration.
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LINTSYNC_"
	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

var logFormats = []string{"auto", "pretty", "json"}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
// Sources, lowest precedence first: lintsync.yaml, .env, the process environment.
type Loader struct {
	environ func() []string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// newLoaderWithEnviron creates a Loader with a fixed environment (used for testing).
func newLoaderWithEnviron(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// Load reads the configuration of the workspace rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	vars, err := l.variables(cwd)
	if err != nil {
		return nil, err
	}

	var overrides environment
	if err := env.ParseWithOptions(&overrides, env.Options{
		Environment: vars,
		Prefix:      EnvPrefix,
	}); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	path := filepath.Join(cwd, domain.ConfigFileName)
	if overrides.ConfigPath != nil && *overrides.ConfigPath != "" {
		path = *overrides.ConfigPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
	}

	file, err := Read(path)
	if err != nil {
		return nil, err
	}

	cfg := file.toDomain()
	cfg.Root = cwd
	overrides.apply(cfg)
	applyDefaults(cfg, cwd)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// variables merges .env into the process environment; the process wins.
func (l *Loader) variables(cwd string) (map[string]string, error) {
	vars, err := godotenv.Read(filepath.Join(cwd, DotEnvFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", DotEnvFile)
		}
		vars = make(map[string]string)
	}
	for k, v := range env.ToMap(l.environ()) {
		vars[k] = v
	}
	return vars, nil
}

// Read parses a configuration file. A missing file yields an empty File.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &f, nil
}

func (f *File) toDomain() *domain.Config {
	return &domain.Config{
		Server: domain.ServerConfig{
			URL:          f.Server.URL,
			Organization: f.Server.Organization,
			Token:        f.Server.Token,
			Timeout:      f.Server.Timeout,
			Retries:      f.Server.Retries,
		},
		StorageDir: f.Storage,
		Binding: domain.ProjectBinding{
			ProjectKey:       f.Project.Key,
			IdePathPrefix:    canonicalPrefix(f.Project.IdePrefix),
			ServerPathPrefix: canonicalPrefix(f.Project.ServerPrefix),
		},
		Modules:     slices.Clone(f.Modules),
		Parallelism: f.Parallelism,
		Ignore:      slices.Clone(f.Ignore),
		Log: domain.LogConfig{
			Format: f.Log.Format,
			File:   f.Log.File,
			Level:  f.Log.Level,
		},
	}
}

func (e *environment) apply(cfg *domain.Config) {
	set(&cfg.Server.URL, e.ServerURL)
	set(&cfg.Server.Organization, e.Organization)
	set(&cfg.Server.Token, e.Token)
	set(&cfg.Server.Timeout, e.Timeout)
	set(&cfg.Server.Retries, e.Retries)
	set(&cfg.StorageDir, e.StorageDir)
	set(&cfg.Binding.ProjectKey, e.ProjectKey)
	set(&cfg.Parallelism, e.Parallelism)
	set(&cfg.Log.Format, e.LogFormat)
	set(&cfg.Log.File, e.LogFile)
	set(&cfg.Log.Level, e.LogLevel)
	if len(e.Modules) > 0 {
		cfg.Modules = e.Modules
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func applyDefaults(cfg *domain.Config, cwd string) {
	if cfg.StorageDir == "" {
		cfg.StorageDir = filepath.Join(cwd, domain.DefaultStoragePath())
	} else if !filepath.IsAbs(cfg.StorageDir) {
		cfg.StorageDir = filepath.Join(cwd, cfg.StorageDir)
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(cwd, cfg.Log.File)
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "auto"
	}
}

// canonicalPrefix converts a prefix to slash form without surrounding separators.
func canonicalPrefix(p string) string {
	return strings.Trim(filepath.ToSlash(p), "/")
}

// Validate checks a merged configuration.
func Validate(cfg *domain.Config) error {
	if cfg.Server.URL != "" {
		u, err := url.Parse(cfg.Server.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "server url must be an absolute http(s) url"), "server_url", cfg.Server.URL)
		}
	}
	if cfg.Parallelism < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "parallelism must be at least 1"), "parallelism", cfg.Parallelism)
	}
	if !slices.Contains(logFormats, cfg.Log.Format) {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown log format"), "log_format", cfg.Log.Format)
	}
	for _, m := range cfg.Modules {
		if strings.TrimSpace(m) == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidModuleKey, "empty module key in configuration"), "modules", cfg.Modules)
		}
	}
	return nil
}
