// Package runtime runs reproducible guest builds inside containerd.
//
// A [Runtime] connects to a containerd daemon. [Runtime.RunBuild] performs
// one compilation end-to-end: the pinned build image is pulled and unpacked,
// a fresh container is started, the isolation root is streamed in as a tar
// stream, the toolchain command is executed, and the produced binaries are
// streamed back to the host. Containers are one-shot; each build gets a
// fresh snapshot and the container is destroyed afterwards, which is what
// makes the output bit-for-bit reproducible across hosts.
//
// Example usage:
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "guestbake")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	err = rt.RunBuild(ctx, runtime.Build{
//	    Image:   "ghcr.io/zkforge/guest-builder:1.2",
//	    ID:      "bake-my-guest",
//	    RootDir: cwd,
//	    Args:    []string{"cargo", "build", "--release"},
//	    Output:  "target/guest",
//	    Dest:    hostTargetDir,
//	})
package runtime
