package ports

import "go.trai.ch/lintsync/internal/core/domain"

//go:generate mockgen -source=issue_store.go -destination=mocks/mock_issue_store.go -package=mocks

// IssueStoreFactory creates issue stores rooted at a directory.
type IssueStoreFactory interface {
	// Create starts a new store in dir for writing.
	Create(dir string) (IssueWriter, error)
	// Open returns a read view on an existing store.
	Open(dir string) IssueReader
}

// IssueWriter appends issues grouped by file key.
type IssueWriter interface {
	Append(fileKey string, issue *domain.ServerIssue) error
	// Close flushes pending writes. The store is complete only after Close succeeds.
	Close() error
}

// IssueReader loads the issues of one file.
type IssueReader interface {
	// Load returns the issues of a file in the order they were appended.
	// An unknown file key yields no issues and no error.
	Load(fileKey string) ([]*domain.ServerIssue, error)
}
