package runtime

import (
	"context"
	"fmt"
	"log/slog"
	goruntime "runtime"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/platforms"
)

const (

	// Snapshotter used for container filesystems. fuse-overlayfs provides
	// overlay semantics without requiring root privileges (no mount(2)),
	// allowing guestbake to run as a regular user.
	snapshotter = "fuse-overlayfs"

	// OCI runtime shim for running containers.
	ociRuntime = "io.containerd.runc.v2"
)

// Manages the containerd client used for reproducible guest builds.
type Runtime struct {
	client *containerd.Client // Containerd client for managing containers and images.
}

// Creates a runtime connected to the containerd socket at the given address.
//
// The namespace scopes all containerd operations. The runtime must be
// closed when no longer needed.
func New(address, namespace string) (*Runtime, error) {
	client, err := containerd.New(address, containerd.WithDefaultNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return &Runtime{client: client}, nil
}

// Closes the containerd client connection.
func (rt *Runtime) Close() error {
	return rt.client.Close()
}

// Pulls the build image and starts a container for one guest compilation.
//
// The image is pulled (or resolved from the content store if already
// present), its layers are unpacked into the snapshotter, and a container
// is created with a fresh snapshot. A long-running task (sleep infinity)
// is started so that subsequent Exec calls have a running process to
// attach to. Any stale container with the same ID from a previous run is
// removed first.
func (rt *Runtime) StartContainer(ctx context.Context, ref, id string) (*Container, error) {
	image, err := rt.pullImage(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: pull %s: %w", ErrRuntime, ref, err)
	}

	c := &Container{
		client:   rt.client,
		id:       id,
		platform: hostPlatform(),
	}

	c.remove(ctx)

	ctr, err := c.create(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	if err := c.startTask(ctx, ctr); err != nil {
		ctr.Delete(ctx, containerd.WithSnapshotCleanup)
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	slog.Debug("build container started", "id", id, "image", ref)

	return c, nil
}

// Pulls an image for the host platform and unpacks it into the snapshotter.
func (rt *Runtime) pullImage(ctx context.Context, ref string) (containerd.Image, error) {
	p, err := platforms.Parse(hostPlatform())
	if err != nil {
		return nil, err
	}

	return rt.client.Pull(ctx, ref,
		containerd.WithPlatformMatcher(platforms.Only(p)),
		containerd.WithPullUnpack,
		containerd.WithPullSnapshotter(snapshotter),
	)
}

// Returns the OCI platform of the host.
func hostPlatform() string {
	return "linux/" + goruntime.GOARCH
}
