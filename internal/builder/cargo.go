package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	ocidigest "github.com/opencontainers/go-digest"

	"github.com/zkforge/guestbake/internal/image"
	"github.com/zkforge/guestbake/internal/runtime"
	"github.com/zkforge/guestbake/internal/workspace"
)

// Target triple the guest toolchain compiles for.
const guestTarget = "riscv32im-zkvm-elf"

// Builds guests by invoking the cargo toolchain, either directly on the
// host or inside a containerd build container for reproducible output.
type Cargo struct {
	Bin       string // Cargo executable; defaults to "cargo".
	Image     string // Build image reference for containerized builds.
	Address   string // Containerd socket address.
	Namespace string // Containerd namespace.
}

// Creates a cargo builder with the default executable name.
func NewCargo(buildImage, address, namespace string) *Cargo {
	return &Cargo{
		Bin:       "cargo",
		Image:     buildImage,
		Address:   address,
		Namespace: namespace,
	}
}

// Builds all binary targets of the package.
//
// Compilation runs once per package; cargo produces one binary per bin
// target in a single invocation. With Docker options present the compile
// step runs in a container, otherwise the toolchain is executed on the
// host. Afterwards the produced binaries are read back from the target
// directory and their image IDs derived.
func (b *Cargo) Build(ctx context.Context, pkg *workspace.Package, targetDir string, opts Options) ([]Guest, error) {
	md, ok := pkg.GuestMetadata()
	if !ok {
		return nil, fmt.Errorf("%w: package %s carries no guest metadata", ErrBuild, pkg.Name)
	}

	var err error
	if opts.Docker != nil {
		err = b.buildContainerized(ctx, pkg, targetDir, opts)
	} else {
		err = b.buildLocal(ctx, pkg, targetDir, opts)
	}
	if err != nil {
		return nil, err
	}

	return collectGuests(pkg, md, targetDir)
}

// Runs the toolchain directly on the host.
func (b *Cargo) buildLocal(ctx context.Context, pkg *workspace.Package, targetDir string, opts Options) error {
	args := buildArgs(pkg.Name, targetDir, opts.Features)

	slog.Info("building guest package", "package", pkg.Name)
	slog.Debug("toolchain invocation", "bin", b.Bin, "args", args)

	cmd := exec.CommandContext(ctx, b.Bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: package %s: %w", ErrBuild, pkg.Name, err)
	}
	return nil
}

// Runs the toolchain inside a containerd build container.
//
// The isolation root is streamed into the container, so the manifest and
// target directory are addressed relative to it. The produced target tree
// is streamed back into the host scratch directory where collectGuests
// expects it.
func (b *Cargo) buildContainerized(ctx context.Context, pkg *workspace.Package, targetDir string, opts Options) error {
	manifest, err := filepath.Rel(opts.Docker.RootDir, pkg.ManifestPath)
	if err != nil {
		return fmt.Errorf("%w: package %s: manifest outside isolation root: %w", ErrBuild, pkg.Name, err)
	}

	rt, err := runtime.New(b.Address, b.Namespace)
	if err != nil {
		return fmt.Errorf("%w: package %s: %w", ErrBuild, pkg.Name, err)
	}
	defer rt.Close()

	args := buildArgs(pkg.Name, containerTargetDir, opts.Features)
	args = append(args, "--manifest-path", manifest)
	args = append(args, "--locked")

	slog.Info("building guest package", "package", pkg.Name, "image", b.Image)

	err = rt.RunBuild(ctx, runtime.Build{
		Image:   b.Image,
		ID:      containerID(pkg.Name),
		RootDir: opts.Docker.RootDir,
		Args:    append([]string{b.Bin}, args...),
		Env:     []string{"SOURCE_DATE_EPOCH=0", "CARGO_TERM_COLOR=never"},
		Output:  containerTargetDir,
		Dest:    filepath.Dir(targetDir),
	})
	if err != nil {
		return fmt.Errorf("%w: package %s: %w", ErrBuild, pkg.Name, err)
	}
	return nil
}

// Target directory used inside the build container, relative to the
// streamed-in source tree. Its base name must match the host scratch
// directory's so the extracted tree lands in place.
const containerTargetDir = "guest"

// Returns the toolchain arguments for compiling one guest package.
func buildArgs(pkg, targetDir string, features []string) []string {
	args := []string{
		"build",
		"--release",
		"--target", guestTarget,
		"--package", pkg,
		"--target-dir", targetDir,
	}
	for _, f := range features {
		args = append(args, "--features", f)
	}
	return args
}

// Returns a deterministic container ID for a package build.
func containerID(pkg string) string {
	return "bake-" + pkg
}

// Reads the produced binaries back from the target directory and derives
// their image IDs.
//
// One guest is reported per bin target, in declaration order. Kernel
// guests have no identity under the legacy scheme and report the zero
// sentinel there.
func collectGuests(pkg *workspace.Package, md workspace.Metadata, targetDir string) ([]Guest, error) {
	var guests []Guest

	for _, target := range pkg.Targets {
		if !target.IsBin() {
			continue
		}

		path := filepath.Join(targetDir, guestTarget, "release", target.Name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: package %s: reading %s: %w", ErrBuild, pkg.Name, path, err)
		}

		d, err := image.FromOCI(ocidigest.SHA256.FromBytes(data))
		if err != nil {
			return nil, fmt.Errorf("%w: package %s: %w", ErrBuild, pkg.Name, err)
		}

		guest := Guest{Path: path}
		if md.Kernel {
			guest.ImageID = image.ZeroDigest
			guest.V2ImageID = image.KernelID(d)
		} else {
			guest.ImageID = d
			guest.V2ImageID = image.UserID(d)
		}

		slog.Debug("guest built", "package", pkg.Name, "target", target.Name, "id", d)

		guests = append(guests, guest)
	}

	return guests, nil
}
