package runtime

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Directory inside the build container holding the streamed-in source tree.
const containerSrcDir = "/src"

// Describes one reproducible guest compilation.
type Build struct {
	Image   string   // Build image reference.
	ID      string   // Container ID, deterministic per package.
	RootDir string   // Host directory streamed in as the source tree.
	Args    []string // Toolchain command to run inside the source tree.
	Env     []string // Extra environment variables for the toolchain.
	Output  string   // Path inside the container copied back out, relative to the source tree.
	Dest    string   // Host directory receiving the output tree.
}

// Runs one guest compilation inside a fresh build container.
//
// The build image is pulled, the isolation root is streamed into the
// container as a tar stream, the toolchain command is executed in the
// source tree, and the output path is streamed back to the host. The
// container is destroyed when the build completes, whether it succeeded
// or not.
func (rt *Runtime) RunBuild(ctx context.Context, b Build) error {
	ctr, err := rt.StartContainer(ctx, b.Image, b.ID)
	if err != nil {
		return err
	}
	defer ctr.Destroy(ctx)

	if err := rt.copySourcesIn(ctx, ctr, b.RootDir); err != nil {
		return err
	}

	slog.Debug("running toolchain", "container", b.ID, "args", b.Args)

	result, err := ctr.Exec(ctx, b.Args, b.Env, containerSrcDir)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: toolchain exited with code %d: %s", ErrRuntime, result.ExitCode, result.Stderr)
	}

	return rt.copyOutputOut(ctx, ctr, b.Output, b.Dest)
}

// Streams the isolation root into the container's source directory.
func (rt *Runtime) copySourcesIn(ctx context.Context, ctr *Container, rootDir string) error {
	if err := ctr.MkdirAll(ctx, containerSrcDir); err != nil {
		return err
	}

	pr, pw := io.Pipe()

	go func() {
		tw := tar.NewWriter(pw)
		err := writeDirToTar(tw, rootDir, ".")
		tw.Close()
		pw.CloseWithError(err)
	}()

	return ctr.CopyTo(ctx, pr, containerSrcDir)
}

// Streams the build output tree from the container back to the host.
func (rt *Runtime) copyOutputOut(ctx context.Context, ctr *Container, output, dest string) error {
	return extractStream(dest, func(w io.Writer) error {
		return ctr.CopyFrom(ctx, w, containerSrcDir+"/"+output)
	})
}

// Pipes an archive producer into tar extraction on the host.
//
// When extraction fails mid-stream, the read end of the pipe is closed
// with the error so the producer's writes fail instead of blocking
// forever, and the producer goroutine is drained before returning.
func extractStream(dest string, archive func(io.Writer) error) error {
	pr, pw := io.Pipe()

	errc := make(chan error, 1)
	go func() {
		errc <- archive(pw)
		pw.Close()
	}()

	if err := extractTar(pr, dest); err != nil {
		pr.CloseWithError(err)
		<-errc
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return <-errc
}
