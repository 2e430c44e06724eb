package ports

import "iter"

// Walker enumerates workspace files.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// WalkFiles yields the files under root, skipping VCS metadata and ignored names.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
