package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BuildImage != defaultBuildImage {
		t.Errorf("build image = %q, want %q", s.BuildImage, defaultBuildImage)
	}
	if s.ContainerdAddress != defaultAddress {
		t.Errorf("address = %q, want %q", s.ContainerdAddress, defaultAddress)
	}
	if s.Namespace != defaultNamespace {
		t.Errorf("namespace = %q, want %q", s.Namespace, defaultNamespace)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
build_image = "registry.local/builder:pinned"
features = ["std"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BuildImage != "registry.local/builder:pinned" {
		t.Errorf("build image = %q, want registry.local/builder:pinned", s.BuildImage)
	}
	if len(s.Features) != 1 || s.Features[0] != "std" {
		t.Errorf("features = %v, want [std]", s.Features)
	}
	if s.Namespace != defaultNamespace {
		t.Errorf("namespace = %q, want default preserved", s.Namespace)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("build_image = ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := load(path); err == nil {
		t.Fatal("expected error for malformed config, got nil")
	}
}
