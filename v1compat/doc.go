// Package v1compat bundles the precompiled v1 compatibility shim.
//
// The package lives outside internal/ so downstream modules that need a
// known-identity baseline image can import it and reference [ELF] and
// [KernelID] directly. The pair is embedded at build time and never
// changes at runtime. The package is excluded on the guest architecture
// itself, where the shim is meaningless.
package v1compat
