// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build date.
var Date = "unknown"

// Product is the client name reported to the server and written into storage.
const Product = "lintsync"

// UserAgent returns the identity sent with every server request.
func UserAgent() string {
	return Product + "/" + Version
}
