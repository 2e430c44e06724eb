package domain

import (
	"slices"
	"time"
)

// StorageStatus is written last into every snapshot and describes who wrote it.
type StorageStatus struct {
	StorageVersion  int
	ClientUserAgent string
	ToolVersion     string
	UpdateTimestamp time.Time
}

// Compatible reports whether the status was written with the current storage format.
func (s StorageStatus) Compatible() bool {
	return s.StorageVersion == StorageVersion
}

// GlobalProperties holds the server wide settings.
type GlobalProperties struct {
	Properties map[string]string
}

// QualityProfile is a named rule set bound to one language.
type QualityProfile struct {
	Key      string
	Name     string
	Language string
	Default  bool
}

// QualityProfiles is the set of profiles known to the server.
type QualityProfiles struct {
	Profiles []QualityProfile
}

// Contains reports whether a profile with the given key is known.
func (q QualityProfiles) Contains(key string) bool {
	return slices.ContainsFunc(q.Profiles, func(p QualityProfile) bool {
		return p.Key == key
	})
}
