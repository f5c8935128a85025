// Package settings loads the tool's optional TOML configuration file.
//
// The file lives in the XDG config directory and pins the containerized
// build image, the containerd endpoint, and any always-on feature flags.
// Absence of the file means defaults; a malformed file is an error.
package settings
