package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks that snapshot entries exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifySnapshot reports whether every entry exists in dir.
// A missing dir is reported as incomplete, not as an error.
func (v *Verifier) VerifySnapshot(dir string, entries []string) (bool, error) {
	for _, entry := range entries {
		path := filepath.Join(dir, entry)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat snapshot entry"), "path", path)
		}
	}
	return true, nil
}
