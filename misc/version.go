// Package misc keeps build time information about the program.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X cssb/misc.version=... -X cssb/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "cssb"

// GetAppName returns program name without extension, falls back to the
// default name when the executable name is unusual (go test, go run).
func GetAppName() string {
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	if name == "" || name == "." || name == "main" || strings.HasSuffix(name, ".test") {
		return appName
	}
	return name
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
