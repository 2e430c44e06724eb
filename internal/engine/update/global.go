package update

import (
	"context"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// GlobalUpdater replaces the global snapshot: server properties and quality profiles.
type GlobalUpdater struct {
	fetcher ports.GlobalFetcher
	store   ports.Storage
	stager  ports.Stager
	tracer  ports.Tracer
	log     ports.Logger

	sem  *semaphore.Weighted
	opts options
}

// NewGlobalUpdater creates a new GlobalUpdater.
func NewGlobalUpdater(
	fetcher ports.GlobalFetcher,
	store ports.Storage,
	stager ports.Stager,
	tracer ports.Tracer,
	log ports.Logger,
	opts ...Option,
) *GlobalUpdater {
	return &GlobalUpdater{
		fetcher: fetcher,
		store:   store,
		stager:  stager,
		tracer:  tracer,
		log:     log,
		sem:     semaphore.NewWeighted(1),
		opts:    newOptions(opts),
	}
}

// Update downloads the global state and installs it as the new global snapshot.
func (g *GlobalUpdater) Update(ctx context.Context) (err error) {
	ctx, span := g.tracer.Start(ctx, "update.global")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	if err := g.sem.Acquire(ctx, 1); err != nil {
		return globalStepError(err, StepLock)
	}
	defer g.sem.Release(1)

	props, err := g.fetcher.FetchGlobalProperties(ctx)
	if err != nil {
		return globalStepError(err, StepFetchConfig)
	}
	profiles, err := g.fetcher.FetchQualityProfiles(ctx)
	if err != nil {
		return globalStepError(err, StepFetchConfig)
	}

	staged, err := g.stager.Stage()
	if err != nil {
		return globalStepError(err, StepStage)
	}
	installed := false
	defer func() {
		if installed {
			return
		}
		if err := g.stager.Discard(staged); err != nil {
			g.log.Warn("failed to discard staging directory", "path", staged, "error", err.Error())
		}
	}()

	if err := g.store.WriteGlobalProperties(staged, props); err != nil {
		return globalStepError(err, StepWriteConfig)
	}
	if err := g.store.WriteQualityProfiles(staged, profiles); err != nil {
		return globalStepError(err, StepWriteConfig)
	}
	status := domain.StorageStatus{
		StorageVersion:  domain.StorageVersion,
		ClientUserAgent: g.opts.userAgent,
		ToolVersion:     g.opts.toolVersion,
		UpdateTimestamp: g.opts.now(),
	}
	if err := g.store.WriteStatus(staged, status); err != nil {
		return globalStepError(err, StepWriteStatus)
	}

	if err := ctx.Err(); err != nil {
		return globalStepError(err, StepInstall)
	}
	if err := g.stager.Install(staged, g.store.GlobalDir()); err != nil {
		return globalStepError(err, StepInstall)
	}
	installed = true

	g.log.Info("global storage updated",
		"properties", len(props.Properties),
		"quality_profiles", len(profiles.Profiles))
	return nil
}

func globalStepError(err error, step string) error {
	return zerr.With(zerr.Wrap(err, "global update failed"), "step", step)
}
