// Package update refreshes the local snapshots from the server.
package update

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/lintsync/internal/engine/paths"
	"go.trai.ch/zerr"
)

// Steps reported in update errors.
const (
	StepLock        = "lock"
	StepReadGlobal  = "read_global"
	StepStage       = "stage"
	StepFetchConfig = "fetch_configuration"
	StepValidate    = "validate"
	StepWriteConfig = "write_configuration"
	StepFetchIssues = "fetch_issues"
	StepWriteIssues = "write_issues"
	StepWriteStatus = "write_status"
	StepInstall     = "install"
)

// ModuleUpdater replaces the snapshot of one module at a time.
// Updates of the same module key are serialized; different keys run in parallel.
type ModuleUpdater struct {
	store       ports.Storage
	stager      ports.Stager
	configs     ports.ModuleConfigFetcher
	issues      ports.IssueFetcher
	issueStores ports.IssueStoreFactory
	tracer      ports.Tracer
	log         ports.Logger

	resolver paths.Resolver
	locks    *keyLock
	opts     options
}

// NewModuleUpdater creates a new ModuleUpdater.
func NewModuleUpdater(
	store ports.Storage,
	stager ports.Stager,
	configs ports.ModuleConfigFetcher,
	issues ports.IssueFetcher,
	issueStores ports.IssueStoreFactory,
	tracer ports.Tracer,
	log ports.Logger,
	opts ...Option,
) *ModuleUpdater {
	return &ModuleUpdater{
		store:       store,
		stager:      stager,
		configs:     configs,
		issues:      issues,
		issueStores: issueStores,
		tracer:      tracer,
		log:         log,
		resolver:    paths.NewResolver(),
		locks:       newKeyLock(),
		opts:        newOptions(opts),
	}
}

// Update downloads the module and atomically installs it as its new snapshot.
//
// The module configuration must only reference quality profiles present in the
// global snapshot; otherwise the update fails with domain.ErrStaleGlobalCache.
// On any failure the previous snapshot stays in place. Cancellation of ctx is
// honored up to the install step.
func (u *ModuleUpdater) Update(ctx context.Context, moduleKey string) (err error) {
	if strings.TrimSpace(moduleKey) == "" {
		return domain.ErrInvalidModuleKey
	}

	ctx, span := u.tracer.Start(ctx, "update.module", ports.WithAttribute("module_key", moduleKey))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	release, err := u.locks.acquire(ctx, moduleKey)
	if err != nil {
		return stepError(err, moduleKey, StepLock)
	}
	defer release()

	tx := &transaction{u: u, moduleKey: moduleKey}
	return tx.run(ctx)
}

// transaction is a single module update. It is owned by one goroutine.
type transaction struct {
	u         *ModuleUpdater
	moduleKey string
	state     State
	staged    string
}

func (tx *transaction) run(ctx context.Context) error {
	u := tx.u

	global, err := u.store.ReadGlobalProperties()
	if err != nil {
		return tx.fail(StepReadGlobal, err)
	}
	profiles, err := u.store.ReadQualityProfiles()
	if err != nil {
		return tx.fail(StepReadGlobal, err)
	}

	staged, err := u.stager.Stage()
	if err != nil {
		return tx.fail(StepStage, err)
	}
	tx.staged = staged
	tx.transition(StateStaging)
	defer tx.discard()

	cfg, err := tx.fetchConfiguration(ctx, global)
	if err != nil {
		return tx.fail(StepFetchConfig, err)
	}

	tx.transition(StateValidating)
	if err := validateProfiles(tx.moduleKey, cfg, profiles); err != nil {
		return tx.fail(StepValidate, err)
	}
	cfg.ModuleKey = tx.moduleKey
	if err := u.store.WriteModuleConfiguration(staged, cfg); err != nil {
		return tx.fail(StepWriteConfig, err)
	}

	count, step, err := tx.storeIssues(ctx, cfg)
	if err != nil {
		return tx.fail(step, err)
	}

	status := domain.StorageStatus{
		StorageVersion:  domain.StorageVersion,
		ClientUserAgent: u.opts.userAgent,
		ToolVersion:     u.opts.toolVersion,
		UpdateTimestamp: u.opts.now(),
	}
	if err := u.store.WriteStatus(staged, status); err != nil {
		return tx.fail(StepWriteStatus, err)
	}

	if err := ctx.Err(); err != nil {
		return tx.fail(StepInstall, err)
	}

	_, span := u.tracer.Start(ctx, "update.install", ports.WithAttribute("module_key", tx.moduleKey))
	err = u.stager.Install(staged, u.store.ModuleDir(tx.moduleKey))
	span.RecordError(err)
	span.End()
	if err != nil {
		return tx.fail(StepInstall, err)
	}

	tx.transition(StateInstalled)
	u.log.Info("module updated", "module_key", tx.moduleKey, "issues", count, "modules", cfg.Project.Len())
	return nil
}

func (tx *transaction) fetchConfiguration(
	ctx context.Context,
	global *domain.GlobalProperties,
) (*domain.ModuleConfiguration, error) {
	ctx, span := tx.u.tracer.Start(ctx, "update.fetch_configuration", ports.WithAttribute("module_key", tx.moduleKey))
	defer span.End()

	cfg, err := tx.u.configs.FetchModuleConfiguration(ctx, tx.moduleKey, global)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cfg, nil
}

// storeIssues drains the issue stream into the staged issue store.
// It returns the number of stored issues and, on failure, the failing step.
func (tx *transaction) storeIssues(ctx context.Context, cfg *domain.ModuleConfiguration) (int, string, error) {
	u := tx.u
	ctx, span := u.tracer.Start(ctx, "update.fetch_issues", ports.WithAttribute("module_key", tx.moduleKey))
	defer span.End()

	w, err := u.issueStores.Create(filepath.Join(tx.staged, domain.ServerIssuesDirName))
	if err != nil {
		span.RecordError(err)
		return 0, StepWriteIssues, err
	}

	count := 0
	for rec, err := range u.issues.FetchIssues(ctx, tx.moduleKey) {
		if err != nil {
			_ = w.Close()
			span.RecordError(err)
			return count, StepFetchIssues, err
		}
		if err := w.Append(tx.fileKey(cfg, rec), rec); err != nil {
			_ = w.Close()
			span.RecordError(err)
			return count, StepWriteIssues, err
		}
		count++
	}

	if err := w.Close(); err != nil {
		span.RecordError(err)
		return count, StepWriteIssues, err
	}
	span.SetAttribute("issues", count)
	return count, "", nil
}

// fileKey returns the file an issue belongs to. Records naming their module are
// trusted; otherwise the module is derived from the path and the module table.
func (tx *transaction) fileKey(cfg *domain.ModuleConfiguration, rec *domain.ServerIssue) string {
	if rec.ModuleKey != "" {
		return domain.NewFileKey(rec.ModuleKey, rec.Path)
	}
	return tx.u.resolver.ServerPathToFileKey(cfg.Project, tx.moduleKey, rec.Path)
}

func (tx *transaction) transition(s State) {
	tx.state = s
	tx.u.log.Debug("module update state", "module_key", tx.moduleKey, "state", string(s))
	if tx.u.opts.observe != nil {
		tx.u.opts.observe(tx.moduleKey, s)
	}
}

func (tx *transaction) fail(step string, err error) error {
	tx.transition(StateAborted)
	return stepError(err, tx.moduleKey, step)
}

// discard removes the staging directory unless it was installed.
func (tx *transaction) discard() {
	if tx.state == StateInstalled || tx.staged == "" {
		return
	}
	if err := tx.u.stager.Discard(tx.staged); err != nil {
		tx.u.log.Warn("failed to discard staging directory", "path", tx.staged, "error", err.Error())
	}
}

// validateProfiles checks that every profile the module is bound to is known.
// Languages are checked in sorted order so the reported profile is stable.
func validateProfiles(moduleKey string, cfg *domain.ModuleConfiguration, known *domain.QualityProfiles) error {
	for _, lang := range slices.Sorted(maps.Keys(cfg.QualityProfilesByLanguage)) {
		key := cfg.QualityProfilesByLanguage[lang]
		if known.Contains(key) {
			continue
		}
		msg := fmt.Sprintf(
			"module '%s' is associated to quality profile '%s' that is not in storage, update the global storage first",
			moduleKey, key,
		)
		err := zerr.Wrap(domain.ErrStaleGlobalCache, msg)
		err = zerr.With(err, "module_key", moduleKey)
		err = zerr.With(err, "language", lang)
		return zerr.With(err, "quality_profile", key)
	}
	return nil
}

func stepError(err error, moduleKey, step string) error {
	wrapped := zerr.Wrap(err, "module update failed")
	wrapped = zerr.With(wrapped, "module_key", moduleKey)
	return zerr.With(wrapped, "step", step)
}
