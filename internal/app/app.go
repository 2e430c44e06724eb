// Package app implements the application layer for lintsync.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/lintsync/internal/engine/paths"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ModuleUpdater refreshes the snapshot of one module.
type ModuleUpdater interface {
	Update(ctx context.Context, moduleKey string) error
}

// GlobalUpdater refreshes the global snapshot.
type GlobalUpdater interface {
	Update(ctx context.Context) error
}

// App represents the main application logic.
type App struct {
	cfg         *domain.Config
	modules     ModuleUpdater
	global      GlobalUpdater
	store       ports.Storage
	issueStores ports.IssueStoreFactory
	files       ports.FileLister
	walker      ports.Walker
	verifier    ports.Verifier
	logger      ports.Logger
	resolver    paths.Resolver
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	modules ModuleUpdater,
	global GlobalUpdater,
	store ports.Storage,
	issueStores ports.IssueStoreFactory,
	files ports.FileLister,
	walker ports.Walker,
	verifier ports.Verifier,
	log ports.Logger,
) *App {
	return &App{
		cfg:         cfg,
		modules:     modules,
		global:      global,
		store:       store,
		issueStores: issueStores,
		files:       files,
		walker:      walker,
		verifier:    verifier,
		logger:      log,
		resolver:    paths.NewResolver(),
	}
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	// Modules to refresh. Empty means the configured modules.
	Modules []string
	// Global refreshes the global snapshot first.
	Global bool
	// Parallelism bounds concurrent module updates. Zero means the configured value.
	Parallelism int
}

// UpdateGlobal refreshes the global snapshot.
func (a *App) UpdateGlobal(ctx context.Context) error {
	if err := a.global.Update(ctx); err != nil {
		return errors.Join(domain.ErrUpdateFailed, err)
	}
	return nil
}

// Update refreshes module snapshots concurrently. The first failure cancels the
// updates that have not installed yet.
func (a *App) Update(ctx context.Context, opts UpdateOptions) error {
	keys := opts.Modules
	if len(keys) == 0 {
		keys = a.cfg.ModuleKeys()
	}
	if len(keys) == 0 {
		return domain.ErrNoModulesSpecified
	}

	if opts.Global {
		if err := a.UpdateGlobal(ctx); err != nil {
			return err
		}
	}

	limit := opts.Parallelism
	if limit <= 0 {
		limit = a.cfg.Parallelism
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for _, key := range dedupe(keys) {
		g.Go(func() error {
			return a.modules.Update(ctx, key)
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrUpdateFailed, err)
	}
	return nil
}

// Clean removes the storage root.
func (a *App) Clean(_ context.Context) error {
	root := a.store.Root()
	a.logger.Info("removing storage", "path", root)
	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove storage"), "path", root)
	}
	return nil
}

// Files lists the file keys the server knows for a project.
// An empty project key selects the bound project.
func (a *App) Files(ctx context.Context, projectKey string) ([]string, error) {
	if projectKey == "" {
		projectKey = a.cfg.Binding.ProjectKey
	}
	if projectKey == "" {
		return nil, domain.ErrMissingProjectKey
	}
	return a.files.ListFiles(ctx, projectKey)
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// workspacePath converts p into a slash separated path relative to the workspace root.
func (a *App) workspacePath(p string) string {
	if filepath.IsAbs(p) {
		if rel, err := filepath.Rel(a.cfg.Root, p); err == nil {
			p = rel
		}
	}
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "./")
}
