package config

import "time"

// File is the structure of lintsync.yaml.
type File struct {
	Server      ServerDTO  `yaml:"server"`
	Storage     string     `yaml:"storage"`
	Project     ProjectDTO `yaml:"project"`
	Modules     []string   `yaml:"modules"`
	Parallelism int        `yaml:"parallelism"`
	Ignore      []string   `yaml:"ignore"`
	Log         LogDTO     `yaml:"log"`
}

// ServerDTO describes the server connection.
type ServerDTO struct {
	URL          string        `yaml:"url"`
	Organization string        `yaml:"organization"`
	Token        string        `yaml:"token"`
	Timeout      time.Duration `yaml:"timeout"`
	Retries      uint          `yaml:"retries"`
}

// ProjectDTO binds the workspace to a server project.
type ProjectDTO struct {
	Key          string `yaml:"key"`
	IdePrefix    string `yaml:"idePrefix"`
	ServerPrefix string `yaml:"serverPrefix"`
}

// LogDTO controls logging.
type LogDTO struct {
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
}

// environment lists the variables that override the file.
// Unset variables leave the file value untouched.
type environment struct {
	ConfigPath   *string        `env:"CONFIG"`
	ServerURL    *string        `env:"SERVER_URL"`
	Organization *string        `env:"ORGANIZATION"`
	Token        *string        `env:"TOKEN"`
	Timeout      *time.Duration `env:"TIMEOUT"`
	Retries      *uint          `env:"RETRIES"`
	StorageDir   *string        `env:"STORAGE_DIR"`
	ProjectKey   *string        `env:"PROJECT_KEY"`
	Modules      []string       `env:"MODULES" envSeparator:","`
	Parallelism  *int           `env:"PARALLELISM"`
	LogFormat    *string        `env:"LOG_FORMAT"`
	LogFile      *string        `env:"LOG_FILE"`
	LogLevel     *string        `env:"LOG_LEVEL"`
}
