package runtime

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExtractStream(t *testing.T) {
	dest := t.TempDir()

	err := extractStream(dest, func(w io.Writer) error {
		tw := tar.NewWriter(w)
		if err := tw.WriteHeader(&tar.Header{
			Name:     "guest/out.elf",
			Typeflag: tar.TypeReg,
			Mode:     0o755,
			Size:     4,
		}); err != nil {
			return err
		}
		if _, err := tw.Write([]byte("\x7fELF")); err != nil {
			return err
		}
		return tw.Close()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "guest", "out.elf"))
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if string(got) != "\x7fELF" {
		t.Errorf("content = %q, want ELF magic", got)
	}
}

func TestExtractStreamProducerError(t *testing.T) {
	wantErr := io.ErrUnexpectedEOF

	err := extractStream(t.TempDir(), func(w io.Writer) error {
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestExtractStreamUnblocksProducerOnExtractionFailure(t *testing.T) {
	// The producer emits an escaping entry, which fails extraction, then
	// keeps writing. If the read end is not closed the producer blocks and
	// extractStream never returns.
	done := make(chan error, 1)

	go func() {
		done <- extractStream(t.TempDir(), func(w io.Writer) error {
			tw := tar.NewWriter(w)
			if err := tw.WriteHeader(&tar.Header{
				Name:     "../escape.elf",
				Typeflag: tar.TypeReg,
				Mode:     0o644,
				Size:     0,
			}); err != nil {
				return err
			}
			for range 1024 {
				if err := tw.WriteHeader(&tar.Header{
					Name:     "filler",
					Typeflag: tar.TypeReg,
					Mode:     0o644,
					Size:     0,
				}); err != nil {
					return err
				}
			}
			return tw.Close()
		})
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error for escaping entry, got nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("extractStream did not return; producer still blocked on the pipe")
	}
}
