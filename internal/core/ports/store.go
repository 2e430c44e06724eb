package ports

import "go.trai.ch/lintsync/internal/core/domain"

// Storage reads installed snapshots and writes records into staged ones.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Storage interface {
	// Root returns the storage root directory.
	Root() string
	// GlobalDir returns where the global snapshot is installed.
	GlobalDir() string
	// ModuleDir returns where the snapshot of a module is installed.
	ModuleDir(moduleKey string) string

	ReadGlobalProperties() (*domain.GlobalProperties, error)
	ReadQualityProfiles() (*domain.QualityProfiles, error)
	ReadGlobalStatus() (*domain.StorageStatus, error)
	ReadModuleConfiguration(moduleKey string) (*domain.ModuleConfiguration, error)
	ReadModuleStatus(moduleKey string) (*domain.StorageStatus, error)
	// ListModules returns the keys of every installed module snapshot.
	ListModules() ([]string, error)

	WriteModuleConfiguration(dir string, cfg *domain.ModuleConfiguration) error
	WriteGlobalProperties(dir string, props *domain.GlobalProperties) error
	WriteQualityProfiles(dir string, profiles *domain.QualityProfiles) error
	WriteStatus(dir string, status domain.StorageStatus) error
}
