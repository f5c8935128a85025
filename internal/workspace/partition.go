package workspace

import "slices"

// Selects a subset of workspace members to consider for baking.
type Partition struct {
	Include   []string // Package names to include; empty means all members.
	Exclude   []string // Package names to drop from the selection.
	Workspace bool     // Select all members even when Include is set.
}

// Applies the partition to the workspace, preserving package order.
//
// The base set is the workspace members. When Include names packages and
// the whole-workspace flag is off, only those packages are kept. Exclusions
// are applied last. Names that match no package are ignored.
func (p Partition) Apply(ws *Workspace) []Package {
	var selected []Package

	for _, pkg := range ws.Packages {
		if !slices.Contains(ws.Members, pkg.ID) {
			continue
		}
		if len(p.Include) > 0 && !p.Workspace && !slices.Contains(p.Include, pkg.Name) {
			continue
		}
		if slices.Contains(p.Exclude, pkg.Name) {
			continue
		}
		selected = append(selected, pkg)
	}

	return selected
}
