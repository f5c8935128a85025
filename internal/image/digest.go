package image

import (
	"encoding/hex"
	"fmt"

	ocidigest "github.com/opencontainers/go-digest"
)

// Size of a guest digest in bytes.
const DigestSize = 32

// A fixed-length content hash identifying a guest binary.
//
// Digests are compared byte-wise. There is no empty state; absence of a
// legacy digest is signalled by [ZeroDigest].
type Digest [DigestSize]byte

// Sentinel meaning "no legacy image ID". Builders report this value for
// guests that have no identity under the v1 scheme.
var ZeroDigest Digest

// Converts an OCI digest into a guest digest.
//
// Only sha256 digests are accepted; their hex-encoded value decodes to
// exactly [DigestSize] bytes.
func FromOCI(d ocidigest.Digest) (Digest, error) {
	if err := d.Validate(); err != nil {
		return Digest{}, err
	}
	if d.Algorithm() != ocidigest.SHA256 {
		return Digest{}, fmt.Errorf("unsupported digest algorithm %q", d.Algorithm())
	}
	return FromBytes(decodeHex(d.Encoded()))
}

// Converts a raw byte slice into a guest digest.
func FromBytes(b []byte) (Digest, error) {
	if len(b) != DigestSize {
		return Digest{}, fmt.Errorf("digest must be %d bytes, got %d", DigestSize, len(b))
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

// Returns the digest's raw bytes, as persisted in identifier files.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Returns the hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Decodes a hex string already validated by the OCI digest package.
func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}
