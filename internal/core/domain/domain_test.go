package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lintsync/internal/core/domain"
)

func TestProjectConfiguration_SetKeepsOrder(t *testing.T) {
	t.Parallel()

	cfg := domain.NewProjectConfiguration(
		domain.ModulePath{Key: "modA", Path: "dirA"},
		domain.ModulePath{Key: "modB", Path: "dirB"},
		domain.ModulePath{Key: "modA", Path: "dirA2"},
	)

	assert.Equal(t, 2, cfg.Len())
	assert.Equal(t, []domain.ModulePath{
		{Key: "modA", Path: "dirA2"},
		{Key: "modB", Path: "dirB"},
	}, slices.Collect(cfg.All()))

	path, ok := cfg.PathOf("modB")
	assert.True(t, ok)
	assert.Equal(t, "dirB", path)

	_, ok = cfg.PathOf("missing")
	assert.False(t, ok)
}

func TestFileKey(t *testing.T) {
	t.Parallel()

	key := domain.NewFileKey("org.example:app", "src/Main.java")
	assert.Equal(t, "org.example:app:src/Main.java", key)

	rel, ok := domain.RelativePath(key, "org.example:app")
	assert.True(t, ok)
	assert.Equal(t, "src/Main.java", rel)

	_, ok = domain.RelativePath(key, "org.example:other")
	assert.False(t, ok)
}

func TestQualityProfiles_Contains(t *testing.T) {
	t.Parallel()

	qp := domain.QualityProfiles{Profiles: []domain.QualityProfile{
		{Key: "java-sonar-way", Language: "java"},
		{Key: "js-sonar-way", Language: "js"},
	}}

	assert.True(t, qp.Contains("js-sonar-way"))
	assert.False(t, qp.Contains("qp-missing"))
	assert.False(t, domain.QualityProfiles{}.Contains(""))
}

func TestStorageStatus_Compatible(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.StorageStatus{StorageVersion: domain.StorageVersion}.Compatible())
	assert.False(t, domain.StorageStatus{StorageVersion: domain.StorageVersion + 1}.Compatible())
}

func TestConfig_ModuleKeys(t *testing.T) {
	t.Parallel()

	cfg := &domain.Config{Binding: domain.ProjectBinding{ProjectKey: "proj"}}
	assert.Equal(t, []string{"proj"}, cfg.ModuleKeys())

	cfg.Modules = []string{"a", "b"}
	assert.Equal(t, []string{"a", "b"}, cfg.ModuleKeys())

	assert.Nil(t, (&domain.Config{}).ModuleKeys())
}
