package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "guestbake"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the tool's configuration directory.
//
//	Linux:   $XDG_CONFIG_HOME/guestbake or ~/.config/guestbake
//	macOS:   ~/Library/Application Support/guestbake
func Config() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the tool's configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), "config.toml")
}

// Path to the tool's cache directory, used as the scratch build location
// when the workspace has no target directory of its own.
//
//	Linux:   $XDG_CACHE_HOME/guestbake or ~/.cache/guestbake
//	macOS:   ~/Library/Caches/guestbake
func Cache() string {
	return filepath.Join(xdg.CacheHome, toolName)
}
