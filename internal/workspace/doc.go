// Package workspace resolves the package graph of a guest workspace.
//
// [Load] shells out to the toolchain's metadata command and decodes its
// JSON output into a [Workspace]: the full package list, the workspace
// member set, and the shared target directory. A [Partition] narrows the
// member set via include/exclude filters, and [Scan] reduces the result
// to the packages eligible for guest building (guest metadata annotation
// plus at least one binary target).
//
// Example usage:
//
//	ws, err := workspace.Load(ctx, "Cargo.toml", nil)
//	if err != nil {
//	    return err
//	}
//
//	part := workspace.Partition{Include: []string{"my-guest"}}
//	eligible := workspace.Scan(part.Apply(ws))
package workspace
