package workspace

import "log/slog"

// Filters packages down to those eligible for guest building.
//
// A package is eligible when it carries the guest metadata annotation and
// declares at least one binary target. Ineligible packages are skipped
// silently; a library-only helper crate sitting next to annotated guests
// is the normal case, not an error. Input order is preserved.
func Scan(pkgs []Package) []Package {
	var eligible []Package

	for _, pkg := range pkgs {
		if _, ok := pkg.GuestMetadata(); !ok {
			slog.Debug("skipping package without guest metadata", "package", pkg.Name)
			continue
		}
		if !pkg.HasBinTarget() {
			slog.Debug("skipping package without binary targets", "package", pkg.Name)
			continue
		}
		eligible = append(eligible, pkg)
	}

	return eligible
}
