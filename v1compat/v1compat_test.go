//go:build !riscv64

package v1compat

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/zkforge/guestbake/internal/image"
)

func TestELFMagic(t *testing.T) {
	if len(ELF) == 0 {
		t.Fatal("embedded ELF is empty")
	}
	if !bytes.HasPrefix(ELF, []byte("\x7fELF")) {
		t.Fatalf("embedded binary lacks ELF magic, starts with %x", ELF[:4])
	}
}

func TestKernelIDMatchesELF(t *testing.T) {
	if len(KernelID) != image.DigestSize {
		t.Fatalf("kernel ID length = %d, want %d", len(KernelID), image.DigestSize)
	}

	want := sha256.Sum256(ELF)
	if !bytes.Equal(KernelID, want[:]) {
		t.Errorf("kernel ID = %x, want %x", KernelID, want)
	}
}
