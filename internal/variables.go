package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Name used for the binary, logging group, and containerd namespace.
const Name = "guestbake"

// String to indicate a local (non-pipeline) build.
const defaultLocalBuild = "(local)"

var (
	version   = "" // Version number (e.g., "1.2.3"), set via linker flags.
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4"), set via linker flags.
)

// Returns the current version with any "v" prefix stripped, or "" for
// local builds.
func Version() string {
	v := strings.TrimSpace(version)
	v = strings.ToLower(v)
	return strings.TrimPrefix(v, "v")
}

// Returns true if this is a local (non-pipeline) build.
//
// A build is considered local if the version or git commit variable is
// unset. Pipeline builds should set both via linker flags.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" || strings.TrimSpace(gitCommit) == ""
}

// Returns a detailed version string.
//
// If this is a local build, returns "(local)". Otherwise, returns a string
// formatted as "<version> <git-commit> [<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s]", Version(), strings.TrimSpace(gitCommit), runtime.GOARCH)
}
