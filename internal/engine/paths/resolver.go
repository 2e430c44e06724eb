// Package paths translates file identities between the workspace, the server
// project tree and server file keys.
package paths

import (
	"strings"

	"go.trai.ch/lintsync/internal/core/domain"
)

// Separator joins path segments in server paths and module prefixes.
const Separator = "/"

// Resolver is stateless; the zero value is ready to use and safe for concurrent use.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() Resolver {
	return Resolver{}
}

// ServerPathToFileKey returns the file key of a server path.
//
// The owning module is the one with the longest non-empty path prefix of serverPath.
// On equal lengths the entry found later in the table wins. Without a match the file
// belongs to the project itself and keeps its whole path.
func (Resolver) ServerPathToFileKey(cfg domain.ProjectConfiguration, projectKey, serverPath string) string {
	moduleKey := projectKey
	matched := 0
	strip := 0

	for m := range cfg.All() {
		if m.Path == "" || !strings.HasPrefix(serverPath, m.Path) {
			continue
		}
		if matched <= len(m.Path) {
			moduleKey = m.Key
			matched = len(m.Path)
			strip = matched + len(Separator)
		}
	}

	// A module path equal to the whole server path leaves nothing past it.
	strip = min(strip, len(serverPath))

	return domain.NewFileKey(moduleKey, serverPath[strip:])
}

// IdePathToServerPath rewrites a workspace path into a server path.
// It reports false when idePath is not under the bound workspace root.
func (Resolver) IdePathToServerPath(b domain.ProjectBinding, idePath string) (string, bool) {
	rest, ok := strings.CutPrefix(idePath, b.IdePathPrefix)
	if !ok {
		return "", false
	}
	if b.IdePathPrefix != "" {
		rest = trimOne(rest)
	}
	if b.ServerPathPrefix == "" {
		return rest, true
	}
	return b.ServerPathPrefix + Separator + rest, true
}

// IdePathToFileKey resolves a workspace path straight to a file key.
// It reports false when idePath is outside the project.
func (r Resolver) IdePathToFileKey(cfg domain.ProjectConfiguration, b domain.ProjectBinding, idePath string) (string, bool) {
	serverPath, ok := r.IdePathToServerPath(b, idePath)
	if !ok {
		return "", false
	}
	return r.ServerPathToFileKey(cfg, b.ProjectKey, serverPath), true
}

// FileKeyToServerPath joins a module relative path with the module prefix.
// An unknown module is treated as the project root, since the table may lag
// behind the issue data.
func (Resolver) FileKeyToServerPath(cfg domain.ProjectConfiguration, moduleKey, relativePath string) string {
	prefix, _ := cfg.PathOf(moduleKey)
	if prefix == "" {
		return relativePath
	}
	return prefix + Separator + relativePath
}

// SplitFileKey finds the module qualifier of a file key.
// Module keys may contain ':' so the longest known module key prefix wins;
// otherwise the project key is tried.
func (Resolver) SplitFileKey(cfg domain.ProjectConfiguration, projectKey, fileKey string) (moduleKey, relativePath string, ok bool) {
	for m := range cfg.All() {
		rel, found := domain.RelativePath(fileKey, m.Key)
		if found && len(m.Key) > len(moduleKey) {
			moduleKey, relativePath, ok = m.Key, rel, true
		}
	}
	if ok {
		return moduleKey, relativePath, true
	}
	if rel, found := domain.RelativePath(fileKey, projectKey); found {
		return projectKey, rel, true
	}
	return "", "", false
}

func trimOne(s string) string {
	if s == "" {
		return s
	}
	return s[1:]
}
