// Package storage implements the on-disk layout of global and module snapshots.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/lintsync/internal/adapters/codec"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of decoded module configurations kept in memory.
const DefaultCacheSize = 64

var _ ports.Storage = (*Manager)(nil)

// Manager reads and writes snapshot records below a storage root.
// Decoded module configurations are cached and revalidated against the
// modification time of the snapshot status record, which changes on every install.
type Manager struct {
	root    string
	configs *lru.Cache[string, cachedConfig]
}

type cachedConfig struct {
	statusMtime int64
	cfg         *domain.ModuleConfiguration
}

// NewManager creates a Manager rooted at root.
func NewManager(root string) (*Manager, error) {
	return NewManagerWithCacheSize(root, DefaultCacheSize)
}

// NewManagerWithCacheSize creates a Manager with a custom cache size.
func NewManagerWithCacheSize(root string, size int) (*Manager, error) {
	cache, err := lru.New[string, cachedConfig](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create storage cache"), "size", size)
	}
	return &Manager{root: root, configs: cache}, nil
}

// Root returns the storage root directory.
func (m *Manager) Root() string {
	return m.root
}

// GlobalDir returns where the global snapshot is installed.
func (m *Manager) GlobalDir() string {
	return filepath.Join(m.root, domain.GlobalDirName)
}

// ModuleDir returns where the snapshot of a module is installed.
func (m *Manager) ModuleDir(moduleKey string) string {
	return filepath.Join(m.root, domain.ModulesDirName, domain.EncodeForFs(moduleKey))
}

// ReadGlobalProperties reads the cached server settings.
func (m *Manager) ReadGlobalProperties() (*domain.GlobalProperties, error) {
	data, err := m.readGlobal(domain.GlobalPropertiesFile)
	if err != nil {
		return nil, err
	}
	props, err := codec.UnmarshalGlobalProperties(data)
	if err != nil {
		return nil, zerr.With(err, "file", domain.GlobalPropertiesFile)
	}
	return props, nil
}

// ReadQualityProfiles reads the cached quality profile set.
func (m *Manager) ReadQualityProfiles() (*domain.QualityProfiles, error) {
	data, err := m.readGlobal(domain.QualityProfilesFile)
	if err != nil {
		return nil, err
	}
	profiles, err := codec.UnmarshalQualityProfiles(data)
	if err != nil {
		return nil, zerr.With(err, "file", domain.QualityProfilesFile)
	}
	return profiles, nil
}

// ReadGlobalStatus reads the status of the global snapshot.
func (m *Manager) ReadGlobalStatus() (*domain.StorageStatus, error) {
	data, err := m.readGlobal(domain.StorageStatusFile)
	if err != nil {
		return nil, err
	}
	return codec.UnmarshalStorageStatus(data)
}

// ReadModuleStatus reads the status of a module snapshot.
func (m *Manager) ReadModuleStatus(moduleKey string) (*domain.StorageStatus, error) {
	data, err := m.readModule(moduleKey, domain.StorageStatusFile)
	if err != nil {
		return nil, err
	}
	status, err := codec.UnmarshalStorageStatus(data)
	if err != nil {
		return nil, zerr.With(err, "module_key", moduleKey)
	}
	return status, nil
}

// ReadModuleConfiguration reads the configuration of an installed module.
// Snapshots written with another storage version are refused.
func (m *Manager) ReadModuleConfiguration(moduleKey string) (*domain.ModuleConfiguration, error) {
	statusPath := filepath.Join(m.ModuleDir(moduleKey), domain.StorageStatusFile)
	info, err := os.Stat(statusPath)
	if err != nil {
		return nil, m.moduleReadError(moduleKey, statusPath, err)
	}
	mtime := info.ModTime().UnixNano()

	if cached, ok := m.configs.Get(moduleKey); ok && cached.statusMtime == mtime {
		return cached.cfg, nil
	}

	status, err := m.ReadModuleStatus(moduleKey)
	if err != nil {
		return nil, err
	}
	if !status.Compatible() {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrIncompatibleStorage, "cannot read module storage"),
			"module_key", moduleKey), "storage_version", status.StorageVersion)
	}

	data, err := m.readModule(moduleKey, domain.ModuleConfigurationFile)
	if err != nil {
		return nil, err
	}
	cfg, err := codec.UnmarshalModuleConfiguration(data)
	if err != nil {
		return nil, zerr.With(err, "module_key", moduleKey)
	}

	m.configs.Add(moduleKey, cachedConfig{statusMtime: mtime, cfg: cfg})
	return cfg, nil
}

// ListModules returns the keys of every installed module, sorted.
// Keys too long for a directory name are read back from the module configuration.
func (m *Manager) ListModules() ([]string, error) {
	dir := filepath.Join(m.root, domain.ModulesDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", dir)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		key, ok := m.moduleKeyOf(filepath.Join(dir, e.Name()), e.Name())
		if !ok {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *Manager) moduleKeyOf(dir, name string) (string, bool) {
	if !domain.IsHashedFsName(name) {
		key, err := domain.DecodeFromFs(name)
		return key, err == nil
	}
	data, err := os.ReadFile(filepath.Join(dir, domain.ModuleConfigurationFile))
	if err != nil {
		return "", false
	}
	cfg, err := codec.UnmarshalModuleConfiguration(data)
	if err != nil || cfg.ModuleKey == "" || domain.EncodeForFs(cfg.ModuleKey) != name {
		return "", false
	}
	return cfg.ModuleKey, true
}

// WriteModuleConfiguration writes a module configuration into dir.
func (m *Manager) WriteModuleConfiguration(dir string, cfg *domain.ModuleConfiguration) error {
	return writeRecord(dir, domain.ModuleConfigurationFile, codec.MarshalModuleConfiguration(cfg))
}

// WriteGlobalProperties writes the server settings into dir.
func (m *Manager) WriteGlobalProperties(dir string, props *domain.GlobalProperties) error {
	return writeRecord(dir, domain.GlobalPropertiesFile, codec.MarshalGlobalProperties(props))
}

// WriteQualityProfiles writes the quality profile set into dir.
func (m *Manager) WriteQualityProfiles(dir string, profiles *domain.QualityProfiles) error {
	return writeRecord(dir, domain.QualityProfilesFile, codec.MarshalQualityProfiles(profiles))
}

// WriteStatus writes a status record into dir.
func (m *Manager) WriteStatus(dir string, status domain.StorageStatus) error {
	return writeRecord(dir, domain.StorageStatusFile, codec.MarshalStorageStatus(status))
}

func (m *Manager) readGlobal(name string) ([]byte, error) {
	path := filepath.Join(m.GlobalDir(), name)
	//nolint:gosec // Path is built from the storage root and a fixed file name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrGlobalStorageMissing, "cannot read global storage"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	return data, nil
}

func (m *Manager) readModule(moduleKey, name string) ([]byte, error) {
	path := filepath.Join(m.ModuleDir(moduleKey), name)
	//nolint:gosec // Path is built from the storage root and an encoded module key
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, m.moduleReadError(moduleKey, path, err)
	}
	return data, nil
}

func (m *Manager) moduleReadError(moduleKey, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrSnapshotNotFound, "cannot read module storage"), "module_key", moduleKey)
	}
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "module_key", moduleKey), "path", path)
}

func writeRecord(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	//nolint:gosec // Path is built from a staging directory and a fixed file name
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}
