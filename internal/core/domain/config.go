package domain

import "time"

// Config is the merged configuration of a lintsync workspace.
type Config struct {
	// Root is the workspace directory the configuration was loaded from.
	Root        string
	Server      ServerConfig
	StorageDir  string
	Binding     ProjectBinding
	Modules     []string
	Parallelism int
	Ignore      []string
	Log         LogConfig
}

// ServerConfig describes how to reach the server.
type ServerConfig struct {
	URL          string
	Organization string
	Token        string
	Timeout      time.Duration
	Retries      uint
}

// LogConfig controls log output.
type LogConfig struct {
	// Format is one of auto, pretty or json.
	Format string
	// File enables a rotating debug log at the given path.
	File  string
	Level string
}

// ModuleKeys returns the modules to update, defaulting to the bound project.
func (c *Config) ModuleKeys() []string {
	if len(c.Modules) > 0 {
		return c.Modules
	}
	if c.Binding.ProjectKey != "" {
		return []string{c.Binding.ProjectKey}
	}
	return nil
}
