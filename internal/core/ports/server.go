package ports

import (
	"context"
	"iter"

	"go.trai.ch/lintsync/internal/core/domain"
)

//go:generate mockgen -source=server.go -destination=mocks/mock_server.go -package=mocks

// ModuleConfigFetcher downloads the configuration of one module.
type ModuleConfigFetcher interface {
	// FetchModuleConfiguration returns the quality profile bindings, the settings that
	// differ from the given global properties and the module path table of the project.
	FetchModuleConfiguration(
		ctx context.Context,
		moduleKey string,
		global *domain.GlobalProperties,
	) (*domain.ModuleConfiguration, error)
}

// IssueFetcher downloads the issues of one module.
type IssueFetcher interface {
	// FetchIssues returns a lazy sequence that can be consumed once.
	// The sequence stops after yielding the first error.
	FetchIssues(ctx context.Context, moduleKey string) iter.Seq2[*domain.ServerIssue, error]
}

// GlobalFetcher downloads the server wide state.
type GlobalFetcher interface {
	FetchGlobalProperties(ctx context.Context) (*domain.GlobalProperties, error)
	FetchQualityProfiles(ctx context.Context) (*domain.QualityProfiles, error)
}

// FileLister lists the files the server knows for a project.
type FileLister interface {
	// ListFiles returns the file keys of the project in server order.
	ListFiles(ctx context.Context, projectKey string) ([]string, error)
}
