package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

const (
	// WorkDirName is the name of the internal workspace directory.
	WorkDirName = ".lintsync"

	// StorageDirName is the name of the storage root inside the workspace directory.
	StorageDirName = "storage"

	// GlobalDirName is the directory holding the global snapshot.
	GlobalDirName = "global"

	// ModulesDirName is the directory holding one snapshot per module.
	ModulesDirName = "modules"

	// TempDirName is the staging area. It lives inside the storage root so that
	// installing a staged snapshot is a rename on the same filesystem.
	TempDirName = ".tmp"

	// ModuleConfigurationFile is the persisted module configuration record.
	ModuleConfigurationFile = "module_configuration.pb"

	// ServerIssuesDirName is the issue store directory of a module snapshot.
	ServerIssuesDirName = "server_issues"

	// StorageStatusFile is the status record written last into every snapshot.
	StorageStatusFile = "storage_status.pb"

	// GlobalPropertiesFile is the persisted global server settings.
	GlobalPropertiesFile = "global_properties.pb"

	// QualityProfilesFile is the persisted set of known quality profiles.
	QualityProfilesFile = "quality_profiles.pb"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "lintsync.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// StorageVersion is the format version of the whole storage tree.
	// Readers refuse snapshots carrying another value.
	StorageVersion = 2

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// MaxFsNameLen is the longest directory name EncodeForFs returns.
	MaxFsNameLen = 255

	// hashedNameMark separates the kept prefix of an over-long name from the key hash.
	// EncodeForFs always escapes '~', so it only appears in hashed names.
	hashedNameMark = "~"
)

// DefaultWorkPath returns the default root directory for lintsync metadata.
func DefaultWorkPath() string {
	return WorkDirName
}

// DefaultStoragePath returns the default storage root.
// It joins .lintsync and storage.
func DefaultStoragePath() string {
	return filepath.Join(WorkDirName, StorageDirName)
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins .lintsync and debug.log.
func DefaultDebugLogPath() string {
	return filepath.Join(WorkDirName, DebugLogFile)
}

// EncodeForFs turns an arbitrary key into a single safe directory name.
// Letters, digits, '.', '_' and '-' are kept, every other byte is percent encoded.
// A name longer than MaxFsNameLen is cut and suffixed with '~' and the xxhash
// of the whole key. Such names cannot be decoded back.
func EncodeForFs(key string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(key))
	for i := range len(key) {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	// "." and ".." are valid keys but not valid directory names.
	out := b.String()
	if out == "." || out == ".." {
		out = strings.ReplaceAll(out, ".", "%2E")
	}
	if len(out) > MaxFsNameLen {
		out = hashedName(out, key)
	}
	return out
}

func hashedName(encoded, key string) string {
	suffix := fmt.Sprintf("%s%016x", hashedNameMark, xxhash.Sum64String(key))
	cut := MaxFsNameLen - len(suffix)
	// Keep escapes whole.
	if i := strings.LastIndexByte(encoded[cut-2:cut], '%'); i >= 0 {
		cut -= 2 - i
	}
	return encoded[:cut] + suffix
}

// IsHashedFsName reports whether name was shortened by EncodeForFs.
func IsHashedFsName(name string) bool {
	return strings.Contains(name, hashedNameMark)
}

// DecodeFromFs reverses EncodeForFs. Hashed names are rejected with ErrInvalidModuleKey.
func DecodeFromFs(name string) (string, error) {
	if IsHashedFsName(name) {
		return "", zerr.With(zerr.Wrap(ErrInvalidModuleKey, "directory name is hashed"), "name", name)
	}
	return url.PathUnescape(name)
}
