package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/zkforge/guestbake/internal/paths"
)

// Defaults used when the configuration file does not set a value.
const (
	defaultBuildImage = "ghcr.io/zkforge/guest-builder:latest"
	defaultAddress    = "/run/containerd/containerd.sock"
	defaultNamespace  = "guestbake"
)

// Tool-level configuration, read from the TOML config file.
type Settings struct {
	BuildImage        string   `toml:"build_image"`        // Image used for containerized reproducible builds.
	ContainerdAddress string   `toml:"containerd_address"` // Containerd socket address.
	Namespace         string   `toml:"namespace"`          // Containerd namespace.
	Features          []string `toml:"features"`           // Feature flags enabled for every bake.
}

// Loads settings from the default configuration file.
//
// A missing file is not an error; defaults apply. A present but malformed
// file is.
func Load() (*Settings, error) {
	return load(paths.ConfigFile())
}

func load(path string) (*Settings, error) {
	s := &Settings{
		BuildImage:        defaultBuildImage,
		ContainerdAddress: defaultAddress,
		Namespace:         defaultNamespace,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return s, nil
}
