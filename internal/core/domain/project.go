package domain

import (
	"iter"
	"strings"
)

// FileKeySeparator joins a module key and a module relative path.
const FileKeySeparator = ":"

// ModulePath binds a module key to its path prefix relative to the project root.
// Paths use '/' and carry no trailing separator.
type ModulePath struct {
	Key  string
	Path string
}

// ProjectConfiguration is the flattened module tree of a project.
// Entries keep the order reported by the server; keys are unique.
type ProjectConfiguration struct {
	Modules []ModulePath
}

// NewProjectConfiguration builds a table from the given entries.
// A repeated key replaces the earlier entry in place.
func NewProjectConfiguration(entries ...ModulePath) ProjectConfiguration {
	var c ProjectConfiguration
	for _, e := range entries {
		c.Set(e.Key, e.Path)
	}
	return c
}

// Set records the path of a module, replacing an existing entry in place.
func (c *ProjectConfiguration) Set(key, path string) {
	for i := range c.Modules {
		if c.Modules[i].Key == key {
			c.Modules[i].Path = path
			return
		}
	}
	c.Modules = append(c.Modules, ModulePath{Key: key, Path: path})
}

// PathOf returns the path prefix of a module.
func (c ProjectConfiguration) PathOf(key string) (string, bool) {
	for _, m := range c.Modules {
		if m.Key == key {
			return m.Path, true
		}
	}
	return "", false
}

// Len returns the number of modules.
func (c ProjectConfiguration) Len() int {
	return len(c.Modules)
}

// All yields the entries in table order.
func (c ProjectConfiguration) All() iter.Seq[ModulePath] {
	return func(yield func(ModulePath) bool) {
		for _, m := range c.Modules {
			if !yield(m) {
				return
			}
		}
	}
}

// ModuleConfiguration is what the server reports for one module.
type ModuleConfiguration struct {
	// ModuleKey is the key the snapshot was installed under.
	ModuleKey string
	// QualityProfilesByLanguage maps a language key to the bound quality profile key.
	QualityProfilesByLanguage map[string]string
	// Settings holds the module settings that differ from the global ones.
	Settings map[string]string
	// Project is the module path table of the enclosing project.
	Project ProjectConfiguration
}

// ProjectBinding ties a local workspace root to a server project root.
type ProjectBinding struct {
	ProjectKey       string
	IdePathPrefix    string
	ServerPathPrefix string
}

// NewFileKey builds the server identity of a file.
func NewFileKey(moduleKey, relativePath string) string {
	return moduleKey + FileKeySeparator + relativePath
}

// RelativePath strips the module qualifier from a file key.
// Module keys may contain the separator themselves, so the key must be known.
func RelativePath(fileKey, moduleKey string) (string, bool) {
	return strings.CutPrefix(fileKey, moduleKey+FileKeySeparator)
}
