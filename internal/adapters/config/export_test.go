package config

// NewLoaderWithEnviron exposes a loader with a fixed environment.
func NewLoaderWithEnviron(environ []string) *Loader {
	return newLoaderWithEnviron(environ)
}
