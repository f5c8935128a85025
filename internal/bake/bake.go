package bake

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zkforge/guestbake/internal/builder"
	"github.com/zkforge/guestbake/internal/paths"
	"github.com/zkforge/guestbake/internal/workspace"
)

// Subdirectory of the workspace target directory used as the shared
// scratch location for guest builds.
const scratchDir = "guest"

// Controls one bake run.
type Options struct {
	Features []string // Feature flags forwarded to the builder.
	Docker   bool     // Compile inside a container for reproducible output.
}

// Bakes every eligible package in order.
//
// Packages are built one at a time against the shared scratch directory
// <target>/guest. Each produced guest is published to the package's elfs
// directory together with its identifier files. The first failure aborts
// the run; artifacts published for earlier packages are left in place.
func Run(ctx context.Context, b builder.Builder, ws *workspace.Workspace, pkgs []workspace.Package, opts Options) error {
	root := ws.TargetDir
	if root == "" {
		root = paths.Cache()
	}
	targetDir := filepath.Join(root, scratchDir)

	bopts := builder.Options{Features: opts.Features}
	if opts.Docker {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		bopts.Docker = &builder.DockerOptions{RootDir: cwd}
	}

	slog.Info("baking guest packages", "count", len(pkgs), "docker", opts.Docker)

	for i := range pkgs {
		if err := bakePackage(ctx, b, &pkgs[i], targetDir, bopts); err != nil {
			return err
		}
	}

	return nil
}

// Builds one package and publishes all of its guests.
func bakePackage(ctx context.Context, b builder.Builder, pkg *workspace.Package, targetDir string, opts builder.Options) error {
	guests, err := b.Build(ctx, pkg, targetDir, opts)
	if err != nil {
		return err
	}

	for _, guest := range guests {
		base, err := publishGuest(pkg, guest)
		if err != nil {
			return err
		}
		if err := writeImageIDs(base, guest); err != nil {
			return err
		}
	}

	return nil
}
