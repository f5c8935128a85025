package image

// Identifies a guest under the v2 scheme.
//
// An ID is exactly one of [UserID] or [KernelID]. The variant determines
// which identifier file is written next to the published binary. The
// interface is sealed; no other implementations exist.
type ID interface {
	// Returns the digest carried by the variant.
	Digest() Digest

	sealedID()
}

// Identifies a user-space guest.
type UserID Digest

// Returns the digest carried by the user-space ID.
func (id UserID) Digest() Digest { return Digest(id) }

func (UserID) sealedID() {}

// Identifies a kernel-space guest.
type KernelID Digest

// Returns the digest carried by the kernel-space ID.
func (id KernelID) Digest() Digest { return Digest(id) }

func (KernelID) sealedID() {}
