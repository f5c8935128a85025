package bake

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zkforge/guestbake/internal/builder"
	"github.com/zkforge/guestbake/internal/image"
	"github.com/zkforge/guestbake/internal/paths"
	"github.com/zkforge/guestbake/internal/workspace"
)

// Subdirectory next to the package manifest receiving published artifacts.
const publishDir = "elfs"

// Copies a built guest binary into the package's publish directory.
//
// The destination is <manifest-dir>/elfs/<base>.elf, where base is the
// builder-reported file name stripped of any extension. Returns the base
// publish path (without extension) for the digest writer. Existing files
// are overwritten, so reruns are idempotent.
func publishGuest(pkg *workspace.Package, guest builder.Guest) (string, error) {
	elfsDir := filepath.Join(filepath.Dir(pkg.ManifestPath), publishDir)
	if err := os.MkdirAll(elfsDir, paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	name := filepath.Base(guest.Path)
	base := filepath.Join(elfsDir, strings.TrimSuffix(name, filepath.Ext(name)))

	if err := copyFile(guest.Path, base+".elf"); err != nil {
		return "", fmt.Errorf("%w: publishing %s: %w", ErrFileSystemOperation, name, err)
	}

	slog.Info("guest published", "package", pkg.Name, "path", base+".elf")

	return base, nil
}

// Writes the identifier files next to a published binary.
//
// The legacy digest goes to <base>.iid, unless it is the zero sentinel.
// The v2 identifier goes to <base>.uid or <base>.kid depending on the
// variant; exactly one of the two is written. All writes replace the
// whole file.
func writeImageIDs(base string, guest builder.Guest) error {
	if guest.ImageID != image.ZeroDigest {
		if err := writeDigest(base+".iid", guest.ImageID); err != nil {
			return err
		}
	}

	switch id := guest.V2ImageID.(type) {
	case image.UserID:
		return writeDigest(base+".uid", id.Digest())
	case image.KernelID:
		return writeDigest(base+".kid", id.Digest())
	default:
		return fmt.Errorf("%w: unknown image ID variant %T", ErrFileSystemOperation, guest.V2ImageID)
	}
}

// Writes a digest's raw bytes to a file with whole-file replace semantics.
func writeDigest(path string, d image.Digest) error {
	if err := os.WriteFile(path, d.Bytes(), paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}

// Copies src to dest, truncating any existing file.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
