// Package builder compiles guest packages into RISC-V binaries.
//
// The [Builder] interface separates orchestration from toolchain mechanics.
// [Cargo] is the production implementation: it invokes the cargo toolchain
// with the guest target triple, either directly on the host or inside a
// containerd build container when reproducible output is requested. After
// compilation it reads the produced binaries and derives their
// content-addressed image IDs; kernel guests report a kernel-space v2 ID
// and a zero legacy digest, user guests report a user-space v2 ID plus a
// legacy digest.
package builder
