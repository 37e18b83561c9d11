// Package version exists solely so that we can store the version of this application
// in one location.
package version

import "fmt"

var (
	// version is populated with our release tag, at build time.
	//
	// go build -ldflags "-X github.com/skx/mpwfs/version.version=v1.2.3"
	version = "unreleased"
)

// GetVersionBanner returns a banner which is suitable for printing, to show our name,
// version, and homepage link.
func GetVersionBanner() string {

	str := fmt.Sprintf("mpwfs %s\n%s\n", version, "https://github.com/skx/mpwfs/")
	return str
}

// GetVersionString returns our version number as a string.
func GetVersionString() string {
	return version
}
