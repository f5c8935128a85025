//go:build !riscv64

package v1compat

import _ "embed"

// Precompiled v1 compatibility shim.
//
// The binary and its kernel image ID are produced ahead of time and
// committed under elfs/; they are a fixed baseline, not a build output.
// Both slices are read-only and must not be modified by callers.
var (
	//go:embed elfs/v1compat.elf
	ELF []byte

	//go:embed elfs/v1compat.kid
	KernelID []byte
)
