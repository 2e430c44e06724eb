package app

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/engine/issues"
	"go.trai.ch/zerr"
)

// Resolution is the server identity of one workspace file.
type Resolution struct {
	// Path is the workspace relative path.
	Path string
	// FileKey is empty when the file is outside the project.
	FileKey string
	// ModuleKey and RelativePath split FileKey.
	ModuleKey    string
	RelativePath string
}

// Inside reports whether the file belongs to the project.
func (r Resolution) Inside() bool {
	return r.FileKey != ""
}

// Resolve maps workspace files to file keys using the installed project snapshot.
// Files outside the project are reported without a key, not as an error.
func (a *App) Resolve(filePaths []string) ([]Resolution, error) {
	project, err := a.projectConfiguration()
	if err != nil {
		return nil, err
	}

	out := make([]Resolution, 0, len(filePaths))
	for _, p := range filePaths {
		out = append(out, a.resolve(project, a.workspacePath(p)))
	}
	return out, nil
}

// Map resolves every workspace file below dir.
func (a *App) Map(dir string) ([]Resolution, error) {
	project, err := a.projectConfiguration()
	if err != nil {
		return nil, err
	}

	base := a.workspacePath(dir)
	root := a.cfg.Root
	if base != "." {
		root = filepath.Join(a.cfg.Root, filepath.FromSlash(base))
	}

	var out []Resolution
	for rel := range a.walker.WalkFiles(root, a.cfg.Ignore) {
		p := rel
		if base != "." {
			p = base + "/" + rel
		}
		out = append(out, a.resolve(project, p))
	}
	return out, nil
}

// Issues returns the server issues of a workspace file from every installed
// module snapshot, in snapshot order. An issue found in several snapshots is
// reported once.
func (a *App) Issues(filePath string) ([]*domain.Issue, error) {
	project, err := a.projectConfiguration()
	if err != nil {
		return nil, err
	}

	path := a.workspacePath(filePath)
	res := a.resolve(project, path)
	if !res.Inside() {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutsideProject, "no file key for path"), "path", path)
	}

	snapshots, err := a.snapshotKeys()
	if err != nil {
		return nil, err
	}

	// A project snapshot also holds the issues of its submodules, so the same
	// issue can be stored under several installed snapshots.
	var recs []*domain.ServerIssue
	seen := make(map[string]bool)
	for _, key := range snapshots {
		dir := filepath.Join(a.store.ModuleDir(key), domain.ServerIssuesDirName)
		found, err := a.issueStores.Open(dir).Load(res.FileKey)
		if err != nil {
			return nil, zerr.With(err, "module_key", key)
		}
		for _, rec := range found {
			if rec.Key != "" && seen[rec.Key] {
				continue
			}
			seen[rec.Key] = true
			recs = append(recs, rec)
		}
	}
	return issues.ToDomainIssues(recs, path), nil
}

func (a *App) resolve(project domain.ProjectConfiguration, path string) Resolution {
	res := Resolution{Path: path}
	if path == ".." || strings.HasPrefix(path, "../") {
		return res
	}

	fileKey, ok := a.resolver.IdePathToFileKey(project, a.cfg.Binding, path)
	if !ok {
		return res
	}
	res.FileKey = fileKey
	res.ModuleKey, res.RelativePath, _ = a.resolver.SplitFileKey(project, a.cfg.Binding.ProjectKey, fileKey)
	return res
}

// projectConfiguration returns the module table of the bound project.
func (a *App) projectConfiguration() (domain.ProjectConfiguration, error) {
	key := a.cfg.Binding.ProjectKey
	if key == "" {
		return domain.ProjectConfiguration{}, domain.ErrMissingProjectKey
	}
	cfg, err := a.store.ReadModuleConfiguration(key)
	if err != nil {
		return domain.ProjectConfiguration{}, err
	}
	return cfg.Project, nil
}

// snapshotKeys returns the configured modules that have a snapshot, or every
// installed module when none is configured.
func (a *App) snapshotKeys() ([]string, error) {
	installed, err := a.store.ListModules()
	if err != nil {
		return nil, err
	}
	if len(a.cfg.Modules) == 0 {
		return installed, nil
	}

	keys := make([]string, 0, len(a.cfg.Modules))
	for _, k := range a.cfg.Modules {
		if slices.Contains(installed, k) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
