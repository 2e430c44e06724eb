package ports

// Stager creates isolated directories and swaps them into place.
//
//go:generate mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Stage creates a fresh, uniquely named directory invisible to readers.
	Stage() (string, error)
	// Install replaces dest with staged. Readers see either the old or the new
	// directory. On failure the previous dest is left in place.
	Install(staged, dest string) error
	// Discard removes a staged directory.
	Discard(staged string) error
}
