package builder

import (
	"context"

	"github.com/zkforge/guestbake/internal/image"
	"github.com/zkforge/guestbake/internal/workspace"
)

// Compiles guest packages into target-architecture binaries.
type Builder interface {
	// Builds all binary targets of one package into the scratch target
	// directory and returns one result per produced binary, in target
	// declaration order.
	Build(ctx context.Context, pkg *workspace.Package, targetDir string, opts Options) ([]Guest, error)
}

// Controls one builder invocation.
type Options struct {
	Features []string       // Feature flags to enable.
	Docker   *DockerOptions // Containerized reproducible build; nil for a plain build.
}

// Describes the isolation context for a containerized build.
type DockerOptions struct {
	RootDir string // Host directory mounted as the build's source tree.
}

// Result of building one guest binary.
type Guest struct {
	Path      string       // Path to the produced binary under the scratch directory.
	ImageID   image.Digest // Legacy v1 image ID; [image.ZeroDigest] when not applicable.
	V2ImageID image.ID     // v2 identifier, user-space or kernel-space.
}
