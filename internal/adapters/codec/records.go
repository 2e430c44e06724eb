package codec

import (
	"time"

	"go.trai.ch/lintsync/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

// MarshalModuleConfiguration encodes a module configuration.
//
//	1: repeated entry quality profile by language
//	2: repeated entry settings
//	3: repeated module path {1: key, 2: path}, in table order
//	4: string module key
func MarshalModuleConfiguration(cfg *domain.ModuleConfiguration) []byte {
	var b []byte
	b = appendStringMap(b, 1, cfg.QualityProfilesByLanguage)
	b = appendStringMap(b, 2, cfg.Settings)
	for m := range cfg.Project.All() {
		var entry []byte
		entry = appendString(entry, 1, m.Key)
		entry = appendString(entry, 2, m.Path)
		b = appendMessage(b, 3, entry)
	}
	b = appendString(b, 4, cfg.ModuleKey)
	return b
}

// UnmarshalModuleConfiguration decodes a module configuration.
func UnmarshalModuleConfiguration(b []byte) (*domain.ModuleConfiguration, error) {
	cfg := &domain.ModuleConfiguration{
		QualityProfilesByLanguage: make(map[string]string),
		Settings:                  make(map[string]string),
	}
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(typ, b, func(m []byte) error {
				return decodeEntry(m, cfg.QualityProfilesByLanguage)
			})
		case 2:
			return consumeMessage(typ, b, func(m []byte) error {
				return decodeEntry(m, cfg.Settings)
			})
		case 3:
			return consumeMessage(typ, b, func(m []byte) error {
				var mp domain.ModulePath
				err := fields(m, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
					switch num {
					case 1:
						return consumeString(typ, b, &mp.Key), nil
					case 2:
						return consumeString(typ, b, &mp.Path), nil
					default:
						return skip, nil
					}
				})
				cfg.Project.Set(mp.Key, mp.Path)
				return err
			})
		case 4:
			return consumeString(typ, b, &cfg.ModuleKey), nil
		default:
			return skip, nil
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// MarshalGlobalProperties encodes the server settings as repeated entries in field 1.
func MarshalGlobalProperties(p *domain.GlobalProperties) []byte {
	return appendStringMap(nil, 1, p.Properties)
}

// UnmarshalGlobalProperties decodes the server settings.
func UnmarshalGlobalProperties(b []byte) (*domain.GlobalProperties, error) {
	p := &domain.GlobalProperties{Properties: make(map[string]string)}
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skip, nil
		}
		return consumeMessage(typ, b, func(m []byte) error {
			return decodeEntry(m, p.Properties)
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// MarshalQualityProfiles encodes the profiles in field 1,
// each as {1: key, 2: name, 3: language, 4: default}.
func MarshalQualityProfiles(q *domain.QualityProfiles) []byte {
	var b []byte
	for _, p := range q.Profiles {
		var m []byte
		m = appendString(m, 1, p.Key)
		m = appendString(m, 2, p.Name)
		m = appendString(m, 3, p.Language)
		m = appendBool(m, 4, p.Default)
		b = appendMessage(b, 1, m)
	}
	return b
}

// UnmarshalQualityProfiles decodes the known quality profiles.
func UnmarshalQualityProfiles(b []byte) (*domain.QualityProfiles, error) {
	q := &domain.QualityProfiles{}
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skip, nil
		}
		return consumeMessage(typ, b, func(m []byte) error {
			var p domain.QualityProfile
			err := fields(m, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
				switch num {
				case 1:
					return consumeString(typ, b, &p.Key), nil
				case 2:
					return consumeString(typ, b, &p.Name), nil
				case 3:
					return consumeString(typ, b, &p.Language), nil
				case 4:
					return consumeBool(typ, b, &p.Default), nil
				default:
					return skip, nil
				}
			})
			q.Profiles = append(q.Profiles, p)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// MarshalStorageStatus encodes a status record.
//
//	1: storage version
//	2: client user agent
//	3: tool version
//	4: update timestamp in epoch milliseconds
func MarshalStorageStatus(s domain.StorageStatus) []byte {
	var b []byte
	b = appendInt64(b, 1, int64(s.StorageVersion))
	b = appendString(b, 2, s.ClientUserAgent)
	b = appendString(b, 3, s.ToolVersion)
	if !s.UpdateTimestamp.IsZero() {
		b = appendInt64(b, 4, s.UpdateTimestamp.UnixMilli())
	}
	return b
}

// UnmarshalStorageStatus decodes a status record.
func UnmarshalStorageStatus(b []byte) (*domain.StorageStatus, error) {
	s := &domain.StorageStatus{}
	var millis int64
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(typ, b, &s.StorageVersion), nil
		case 2:
			return consumeString(typ, b, &s.ClientUserAgent), nil
		case 3:
			return consumeString(typ, b, &s.ToolVersion), nil
		case 4:
			return consumeInt64(typ, b, &millis), nil
		default:
			return skip, nil
		}
	})
	if err != nil {
		return nil, err
	}
	if millis != 0 {
		s.UpdateTimestamp = time.UnixMilli(millis)
	}
	return s, nil
}
