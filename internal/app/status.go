package app

import (
	"errors"
	"time"

	"go.trai.ch/lintsync/internal/core/domain"
)

// snapshotEntries must exist in every complete module snapshot.
var snapshotEntries = []string{domain.StorageStatusFile, domain.ModuleConfigurationFile}

// SnapshotState summarizes an installed snapshot.
type SnapshotState string

const (
	// SnapshotMissing indicates no snapshot is installed.
	SnapshotMissing SnapshotState = "missing"
	// SnapshotIncomplete indicates required files are absent.
	SnapshotIncomplete SnapshotState = "incomplete"
	// SnapshotIncompatible indicates another storage version wrote the snapshot.
	SnapshotIncompatible SnapshotState = "incompatible"
	// SnapshotOutdated indicates the module predates the global snapshot.
	SnapshotOutdated SnapshotState = "outdated"
	// SnapshotOK indicates a usable snapshot.
	SnapshotOK SnapshotState = "ok"
)

// SnapshotReport describes one snapshot.
type SnapshotReport struct {
	Key       string
	State     SnapshotState
	UpdatedAt time.Time
	Version   string
	// Modules is the size of the module table; zero for the global snapshot.
	Modules int
}

// StatusReport describes the whole storage.
type StatusReport struct {
	Global  SnapshotReport
	Modules []SnapshotReport
}

// Status inspects the global snapshot and the given module snapshots.
// Without keys every installed module is reported.
func (a *App) Status(keys []string) (*StatusReport, error) {
	report := &StatusReport{Global: SnapshotReport{Key: "global", State: SnapshotMissing}}

	global, err := a.store.ReadGlobalStatus()
	switch {
	case errors.Is(err, domain.ErrGlobalStorageMissing):
	case err != nil:
		return nil, err
	default:
		report.Global.UpdatedAt = global.UpdateTimestamp
		report.Global.Version = global.ToolVersion
		report.Global.State = SnapshotOK
		if !global.Compatible() {
			report.Global.State = SnapshotIncompatible
		}
	}

	if len(keys) == 0 {
		keys, err = a.store.ListModules()
		if err != nil {
			return nil, err
		}
	}

	for _, key := range keys {
		r, err := a.moduleReport(key, report.Global)
		if err != nil {
			return nil, err
		}
		report.Modules = append(report.Modules, r)
	}
	return report, nil
}

func (a *App) moduleReport(key string, global SnapshotReport) (SnapshotReport, error) {
	r := SnapshotReport{Key: key, State: SnapshotMissing}

	complete, err := a.verifier.VerifySnapshot(a.store.ModuleDir(key), snapshotEntries)
	if err != nil {
		return r, err
	}
	if !complete {
		if _, statErr := a.store.ReadModuleStatus(key); errors.Is(statErr, domain.ErrSnapshotNotFound) {
			return r, nil
		}
		r.State = SnapshotIncomplete
		return r, nil
	}

	status, err := a.store.ReadModuleStatus(key)
	if err != nil {
		return r, err
	}
	r.UpdatedAt = status.UpdateTimestamp
	r.Version = status.ToolVersion

	if !status.Compatible() {
		r.State = SnapshotIncompatible
		return r, nil
	}

	cfg, err := a.store.ReadModuleConfiguration(key)
	if err != nil {
		return r, err
	}
	r.Modules = cfg.Project.Len()

	r.State = SnapshotOK
	if global.State == SnapshotOK && status.UpdateTimestamp.Before(global.UpdatedAt) {
		r.State = SnapshotOutdated
	}
	return r, nil
}
