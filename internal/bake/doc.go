// Package bake orchestrates guest builds and publishes their artifacts.
//
// A bake run processes eligible packages strictly in order. Each package
// is handed to the builder together with the shared scratch directory and
// the run's options; every guest the builder reports is then published:
// the binary is copied to <manifest-dir>/elfs/<base>.elf and its
// identifier files are written beside it (.iid for the legacy digest when
// present, and exactly one of .uid or .kid for the v2 identifier). The
// first failure aborts the run, leaving earlier packages' artifacts
// intact.
//
// Example usage:
//
//	pkgs := workspace.Scan(part.Apply(ws))
//	err := bake.Run(ctx, b, ws, pkgs, bake.Options{
//	    Features: []string{"std"},
//	    Docker:   true,
//	})
package bake
