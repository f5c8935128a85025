// Package image defines the identity model for guest binaries.
//
// A guest is identified by content-addressed digests. The legacy v1 scheme
// assigns a single [Digest], with [ZeroDigest] meaning the guest has no v1
// identity. The v2 scheme assigns an [ID], a closed two-variant type that
// distinguishes user-space guests from kernel-space guests. Publishing code
// switches on the variant to decide which identifier file to write.
package image
