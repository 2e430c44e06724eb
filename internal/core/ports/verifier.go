package ports

// Verifier checks that an installed snapshot is complete.
//
//go:generate mockgen -destination=mocks/verifier_mock.go -package=mocks -source=verifier.go
type Verifier interface {
	// VerifySnapshot reports whether all the given entries exist in dir.
	VerifySnapshot(dir string, entries []string) (bool, error)
}
