package issuestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/adapters/codec"
	"go.trai.ch/lintsync/internal/adapters/issuestore"
	"go.trai.ch/lintsync/internal/core/domain"
)

func issue(key string) *domain.ServerIssue {
	return &domain.ServerIssue{Key: key, RuleRepository: "go", RuleKey: "S1"}
}

func keys(issues []*domain.ServerIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Key)
	}
	return out
}

func TestStore_AppendLoad(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "server_issues")
	f := issuestore.NewFactory()

	w, err := f.Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Append("mod:a.go", issue("1")))
	require.NoError(t, w.Append("mod:b.go", issue("2")))
	require.NoError(t, w.Append("mod:a.go", issue("3")))
	require.NoError(t, w.Close())

	r := f.Open(dir)

	got, err := r.Load("mod:a.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, keys(got))

	got, err = r.Load("mod:b.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, keys(got))

	got, err = r.Load("mod:missing.go")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_NothingVisibleBeforeClose(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := issuestore.NewFactory()

	w, err := f.Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Append("mod:a.go", issue("1")))

	got, err := f.Open(dir).Load("mod:a.go")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, w.Close())
	got, err = f.Open(dir).Load("mod:a.go")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_FlushesInBatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := issuestore.NewFactoryWithThreshold(1)

	w, err := f.Create(dir)
	require.NoError(t, err)
	for _, k := range []string{"1", "2", "3"} {
		require.NoError(t, w.Append("mod:a.go", issue(k)))
	}

	// Every append crossed the threshold, so everything is already on disk.
	got, err := f.Open(dir).Load("mod:a.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, keys(got))

	require.NoError(t, w.Close())
	require.Error(t, w.Append("mod:a.go", issue("4")))
}

func TestStore_HashCollisionsShareBucket(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := issuestore.NewFactory()

	w, err := f.Create(dir)
	require.NoError(t, err)
	require.NoError(t, w.Append("mod:a.go", issue("1")))
	require.NoError(t, w.Close())

	// Simulate another key landing in the same bucket.
	path := issuestore.BucketPath(dir, "mod:a.go")
	other := codec.AppendDelimited(nil, codec.MarshalStoredIssue("mod:other.go", issue("x")))
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // test path
	require.NoError(t, err)
	_, err = fh.Write(other)
	require.NoError(t, err)
	require.NoError(t, fh.Close())

	got, err := f.Open(dir).Load("mod:a.go")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, keys(got))
}

func TestStore_CorruptBucket(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := issuestore.BucketPath(dir, "mod:a.go")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte{0x05, 0x01}, 0o600))

	_, err := issuestore.NewFactory().Open(dir).Load("mod:a.go")
	require.Error(t, err)
}

func TestBucketPath(t *testing.T) {
	t.Parallel()

	p := issuestore.BucketPath("root", "mod:a.go")

	assert.Equal(t, "root", filepath.Dir(filepath.Dir(p)))
	assert.Len(t, filepath.Base(p), 14+len(".pb"))
	assert.Len(t, filepath.Base(filepath.Dir(p)), 2)
	assert.Equal(t, p, issuestore.BucketPath("root", "mod:a.go"))
}
