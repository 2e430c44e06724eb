package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Stager assembles snapshots under a temp directory and renames them into place.
// The temp directory must be on the same filesystem as every install destination.
type Stager struct {
	tempDir string
}

// NewStager creates a Stager using tempDir as the staging area.
func NewStager(tempDir string) *Stager {
	return &Stager{tempDir: tempDir}
}

// Stage creates a fresh, uniquely named directory.
func (s *Stager) Stage() (string, error) {
	if err := os.MkdirAll(s.tempDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", s.tempDir)
	}
	dir, err := os.MkdirTemp(s.tempDir, "stage-")
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrStagingFailed.Error()), "path", s.tempDir)
	}
	return dir, nil
}

// Install replaces dest with staged.
//
// An existing dest is first renamed aside, so a failed install can put it back
// and readers never see a mix of both. The aside copy is removed afterwards.
func (s *Stager) Install(staged, dest string) error {
	for _, dir := range []string{filepath.Dir(dest), s.tempDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dir)
		}
	}

	var retiredDir, retired string
	if _, err := os.Lstat(dest); err == nil {
		retiredDir, err = os.MkdirTemp(s.tempDir, "retired-")
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dest)
		}
		retired = filepath.Join(retiredDir, "snapshot")
		if err := os.Rename(dest, retired); err != nil {
			_ = os.Remove(retiredDir)
			return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dest)
		}
	} else if !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dest)
	}

	if err := os.Rename(staged, dest); err != nil {
		if retired != "" {
			if restoreErr := os.Rename(retired, dest); restoreErr == nil {
				_ = os.Remove(retiredDir)
			}
		}
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", dest)
	}

	if retiredDir != "" {
		_ = os.RemoveAll(retiredDir)
	}
	return nil
}

// Discard removes a staged directory.
func (s *Stager) Discard(staged string) error {
	if err := os.RemoveAll(staged); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to discard staging directory"), "path", staged)
	}
	return nil
}
