package domain

import "go.trai.ch/zerr"

var (
	// ErrStaleGlobalCache is returned when a module references a quality profile that
	// is not present in the cached global storage.
	ErrStaleGlobalCache = zerr.New("global storage is outdated, run a global update first")

	// ErrGlobalStorageMissing is returned when a module update runs before any global update.
	ErrGlobalStorageMissing = zerr.New("global storage not found, run a global update first")

	// ErrSnapshotNotFound is returned when no snapshot is installed for a module.
	ErrSnapshotNotFound = zerr.New("module storage not found")

	// ErrIncompatibleStorage is returned when a snapshot was written with another storage version.
	ErrIncompatibleStorage = zerr.New("storage was written by an incompatible version")

	// ErrStagingFailed is returned when a staging directory cannot be created or written.
	ErrStagingFailed = zerr.New("failed to stage storage")

	// ErrInstallFailed is returned when a staged snapshot cannot be moved into place.
	ErrInstallFailed = zerr.New("failed to install storage")

	// ErrStoreReadFailed is returned when a storage record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read storage")

	// ErrStoreWriteFailed is returned when a storage record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write storage")

	// ErrDecodeFailed is returned when a persisted or received record is malformed.
	ErrDecodeFailed = zerr.New("failed to decode record")

	// ErrServerRequestFailed is returned when a request to the server fails.
	ErrServerRequestFailed = zerr.New("server request failed")

	// ErrServerResponseInvalid is returned when the server answers with an unexpected payload.
	ErrServerResponseInvalid = zerr.New("invalid server response")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the merged configuration is not usable.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrMissingServerURL is returned when a command needs the server but none is configured.
	ErrMissingServerURL = zerr.New("server url is not configured")

	// ErrMissingProjectKey is returned when no project key is bound.
	ErrMissingProjectKey = zerr.New("project key is not configured")

	// ErrInvalidModuleKey is returned when a module key is empty or cannot be recovered.
	ErrInvalidModuleKey = zerr.New("invalid module key")

	// ErrNoModulesSpecified is returned when an update has no module to refresh.
	ErrNoModulesSpecified = zerr.New("no modules specified")

	// ErrUpdateFailed is returned when at least one module update failed.
	ErrUpdateFailed = zerr.New("storage update failed")

	// ErrOutsideProject is returned when a workspace path is not under the bound project root.
	ErrOutsideProject = zerr.New("file is outside the project")
)
