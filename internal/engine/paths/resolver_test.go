package paths_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/engine/paths"
)

func table(entries ...string) domain.ProjectConfiguration {
	var cfg domain.ProjectConfiguration
	for i := 0; i+1 < len(entries); i += 2 {
		cfg.Set(entries[i], entries[i+1])
	}
	return cfg
}

func TestServerPathToFileKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        domain.ProjectConfiguration
		projectKey string
		serverPath string
		want       string
	}{
		{
			name:       "longest prefix wins",
			cfg:        table("modA", "dirA", "modB", "dirA/sub"),
			projectKey: "proj",
			serverPath: "dirA/sub/File.java",
			want:       "modB:File.java",
		},
		{
			name:       "longest prefix wins regardless of order",
			cfg:        table("modB", "dirA/sub", "modA", "dirA"),
			projectKey: "proj",
			serverPath: "dirA/sub/File.java",
			want:       "modB:File.java",
		},
		{
			name:       "shorter prefix when longer does not match",
			cfg:        table("modA", "dirA", "modB", "dirA/sub"),
			projectKey: "proj",
			serverPath: "dirA/other/File.java",
			want:       "modA:other/File.java",
		},
		{
			name:       "empty table falls back to project",
			cfg:        domain.ProjectConfiguration{},
			projectKey: "proj1",
			serverPath: "src/Main.java",
			want:       "proj1:src/Main.java",
		},
		{
			name:       "no match keeps whole path",
			cfg:        table("modA", "dirA"),
			projectKey: "proj1",
			serverPath: "src/Main.java",
			want:       "proj1:src/Main.java",
		},
		{
			name:       "empty prefix entries are skipped",
			cfg:        table("root", "", "modA", "dirA"),
			projectKey: "proj",
			serverPath: "src/Main.java",
			want:       "proj:src/Main.java",
		},
		{
			name:       "later entry wins equal length",
			cfg:        table("first", "dirA", "second", "dirA"),
			projectKey: "proj",
			serverPath: "dirA/x.go",
			want:       "second:x.go",
		},
		{
			name:       "module keys with colons",
			cfg:        table("org.example:app:core", "core"),
			projectKey: "org.example:app",
			serverPath: "core/src/A.java",
			want:       "org.example:app:core:src/A.java",
		},
		{
			name:       "plain string prefix also matches sibling names",
			cfg:        table("modA", "dirA"),
			projectKey: "proj",
			serverPath: "dirAB/x",
			want:       "modA:/x",
		},
		{
			name:       "path equal to module prefix",
			cfg:        table("modA", "dirA"),
			projectKey: "proj",
			serverPath: "dirA",
			want:       "modA:",
		},
	}

	r := paths.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.ServerPathToFileKey(tt.cfg, tt.projectKey, tt.serverPath))
		})
	}
}

func TestIdePathToServerPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding domain.ProjectBinding
		idePath string
		want    string
		wantOK  bool
	}{
		{
			name:    "identity with empty prefixes",
			idePath: "a/b.txt",
			want:    "a/b.txt",
			wantOK:  true,
		},
		{
			name:    "strip ide prefix",
			binding: domain.ProjectBinding{IdePathPrefix: "local"},
			idePath: "local/a/b.txt",
			want:    "a/b.txt",
			wantOK:  true,
		},
		{
			name:    "add server prefix",
			binding: domain.ProjectBinding{ServerPathPrefix: "remote"},
			idePath: "a/b.txt",
			want:    "remote/a/b.txt",
			wantOK:  true,
		},
		{
			name:    "both prefixes",
			binding: domain.ProjectBinding{IdePathPrefix: "local/x", ServerPathPrefix: "remote/y"},
			idePath: "local/x/a/b.txt",
			want:    "remote/y/a/b.txt",
			wantOK:  true,
		},
		{
			name:    "outside ide root",
			binding: domain.ProjectBinding{IdePathPrefix: "local"},
			idePath: "other/a/b.txt",
			wantOK:  false,
		},
		{
			name:    "path equal to ide root",
			binding: domain.ProjectBinding{IdePathPrefix: "local"},
			idePath: "local",
			want:    "",
			wantOK:  true,
		},
	}

	r := paths.NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := r.IdePathToServerPath(tt.binding, tt.idePath)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdePathToFileKey(t *testing.T) {
	t.Parallel()

	r := paths.NewResolver()
	cfg := table("modA", "dirA", "modB", "dirA/sub")
	b := domain.ProjectBinding{ProjectKey: "proj", IdePathPrefix: "ws", ServerPathPrefix: ""}

	key, ok := r.IdePathToFileKey(cfg, b, "ws/dirA/sub/File.java")
	require.True(t, ok)
	assert.Equal(t, "modB:File.java", key)

	key, ok = r.IdePathToFileKey(cfg, b, "ws/README.md")
	require.True(t, ok)
	assert.Equal(t, "proj:README.md", key)

	_, ok = r.IdePathToFileKey(cfg, b, "elsewhere/README.md")
	assert.False(t, ok)
}

func TestFileKeyToServerPath(t *testing.T) {
	t.Parallel()

	r := paths.NewResolver()
	cfg := table("modA", "dirA", "root", "")

	assert.Equal(t, "dirA/x/Y.java", r.FileKeyToServerPath(cfg, "modA", "x/Y.java"))
	assert.Equal(t, "x/Y.java", r.FileKeyToServerPath(cfg, "root", "x/Y.java"))
	assert.Equal(t, "x/Y.java", r.FileKeyToServerPath(cfg, "unknown", "x/Y.java"))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	r := paths.NewResolver()
	cfg := table(
		"modA", "dirA",
		"modB", "dirA/sub",
		"modC", "lib",
		"modD", "lib/deep/er",
	)
	relatives := []string{"File.java", "x/y/Z.go", "a.txt"}

	for m := range cfg.All() {
		for _, rel := range relatives {
			t.Run(fmt.Sprintf("%s/%s", m.Key, rel), func(t *testing.T) {
				t.Parallel()
				serverPath := r.FileKeyToServerPath(cfg, m.Key, rel)
				assert.Equal(t, domain.NewFileKey(m.Key, rel), r.ServerPathToFileKey(cfg, "proj", serverPath))
			})
		}
	}
}

func TestSplitFileKey(t *testing.T) {
	t.Parallel()

	r := paths.NewResolver()
	cfg := table("org:app", "", "org:app:core", "core")

	module, rel, ok := r.SplitFileKey(cfg, "org:app", "org:app:core:src/A.java")
	require.True(t, ok)
	assert.Equal(t, "org:app:core", module)
	assert.Equal(t, "src/A.java", rel)

	module, rel, ok = r.SplitFileKey(domain.ProjectConfiguration{}, "proj", "proj:README.md")
	require.True(t, ok)
	assert.Equal(t, "proj", module)
	assert.Equal(t, "README.md", rel)

	_, _, ok = r.SplitFileKey(cfg, "proj", "other:README.md")
	assert.False(t, ok)
}
