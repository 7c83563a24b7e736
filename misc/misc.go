// Package misc holds build time information.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// set by the linker: -X folio/misc.version=... -X folio/misc.gitHash=...
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "folio"

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name without extension, falling back to
// built-in name when executable name cannot be determined.
func GetAppName() string {
	if len(os.Args) == 0 || len(os.Args[0]) == 0 {
		return appName
	}
	base := filepath.Base(os.Args[0])
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if len(name) == 0 || ext == ".test" {
		// go test binaries
		return appName
	}
	return name
}
