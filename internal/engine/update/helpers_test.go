package update_test

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/lintsync/internal/adapters/fs"
	"go.trai.ch/lintsync/internal/adapters/issuestore"
	"go.trai.ch/lintsync/internal/adapters/storage"
	"go.trai.ch/lintsync/internal/adapters/telemetry"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports/mocks"
	"go.trai.ch/lintsync/internal/engine/update"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeServer serves canned module data. config may block to model slow servers.
type fakeServer struct {
	mu       sync.Mutex
	config   func(ctx context.Context, moduleKey string) (*domain.ModuleConfiguration, error)
	issues   []*domain.ServerIssue
	issueErr error
	onIssue  func(i int)

	props    *domain.GlobalProperties
	profiles *domain.QualityProfiles
}

func (f *fakeServer) FetchModuleConfiguration(
	ctx context.Context,
	moduleKey string,
	_ *domain.GlobalProperties,
) (*domain.ModuleConfiguration, error) {
	return f.config(ctx, moduleKey)
}

func (f *fakeServer) FetchIssues(_ context.Context, _ string) iter.Seq2[*domain.ServerIssue, error] {
	f.mu.Lock()
	issues, issueErr, onIssue := f.issues, f.issueErr, f.onIssue
	f.mu.Unlock()

	return func(yield func(*domain.ServerIssue, error) bool) {
		for i, issue := range issues {
			if onIssue != nil {
				onIssue(i)
			}
			if !yield(issue, nil) {
				return
			}
		}
		if issueErr != nil {
			yield(nil, issueErr)
		}
	}
}

func (f *fakeServer) FetchGlobalProperties(context.Context) (*domain.GlobalProperties, error) {
	return f.props, nil
}

func (f *fakeServer) FetchQualityProfiles(context.Context) (*domain.QualityProfiles, error) {
	return f.profiles, nil
}

func staticConfig(cfg *domain.ModuleConfiguration) func(context.Context, string) (*domain.ModuleConfiguration, error) {
	return func(context.Context, string) (*domain.ModuleConfiguration, error) {
		return cfg, nil
	}
}

type harness struct {
	root   string
	store  *storage.Manager
	stager *fsadapter.Stager
	issues *issuestore.Factory
	log    *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	root := filepath.Join(t.TempDir(), "storage")
	store, err := storage.NewManager(root)
	require.NoError(t, err)

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return &harness{
		root:   root,
		store:  store,
		stager: fsadapter.NewStager(filepath.Join(root, domain.TempDirName)),
		issues: issuestore.NewFactory(),
		log:    log,
	}
}

// seedGlobal installs a global snapshot knowing the given profile keys.
func (h *harness) seedGlobal(t *testing.T, profileKeys ...string) {
	t.Helper()

	srv := &fakeServer{
		props:    &domain.GlobalProperties{Properties: map[string]string{"sonar.global": "1"}},
		profiles: &domain.QualityProfiles{},
	}
	for _, k := range profileKeys {
		srv.profiles.Profiles = append(srv.profiles.Profiles, domain.QualityProfile{Key: k, Language: k})
	}
	g := update.NewGlobalUpdater(srv, h.store, h.stager, telemetry.NewNoOpTracer(), h.log,
		update.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, g.Update(context.Background()))
}

func (h *harness) updater(srv *fakeServer, opts ...update.Option) *update.ModuleUpdater {
	opts = append([]update.Option{
		update.WithClient("lintsync/test", "1.2.3"),
		update.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	return update.NewModuleUpdater(h.store, h.stager, srv, srv, h.issues, telemetry.NewNoOpTracer(), h.log, opts...)
}

// snapshot returns every file below dir keyed by relative path.
func snapshot(t *testing.T, dir string) map[string][]byte {
	t.Helper()

	files := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path) //nolint:gosec // test path
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		files[rel] = data
		return nil
	})
	require.NoError(t, err)
	return files
}

// stagingLeftovers lists entries left in the staging area.
func (h *harness) stagingLeftovers(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(h.root, domain.TempDirName))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func telemetryNoop() *telemetry.NoOpTracer {
	return telemetry.NewNoOpTracer()
}
