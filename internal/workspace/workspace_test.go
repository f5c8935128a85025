package workspace

import (
	"encoding/json"
	"testing"
)

const sampleMetadata = `{
	"packages": [
		{
			"id": "guest-a 0.1.0",
			"name": "guest-a",
			"manifest_path": "/ws/guest-a/Cargo.toml",
			"metadata": {"guest": {"kernel": false}},
			"targets": [{"name": "guest-a", "kind": ["bin"]}]
		},
		{
			"id": "helper 0.1.0",
			"name": "helper",
			"manifest_path": "/ws/helper/Cargo.toml",
			"metadata": null,
			"targets": [{"name": "helper", "kind": ["lib"]}]
		},
		{
			"id": "serde 1.0.0",
			"name": "serde",
			"manifest_path": "/registry/serde/Cargo.toml",
			"metadata": null,
			"targets": [{"name": "serde", "kind": ["lib"]}]
		}
	],
	"workspace_members": ["guest-a 0.1.0", "helper 0.1.0"],
	"target_directory": "/ws/target"
}`

func TestDecode(t *testing.T) {
	ws, err := decode([]byte(sampleMetadata))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ws.Packages) != 3 {
		t.Fatalf("packages = %d, want 3", len(ws.Packages))
	}
	if len(ws.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(ws.Members))
	}
	if ws.TargetDir != "/ws/target" {
		t.Errorf("target dir = %q, want /ws/target", ws.TargetDir)
	}

	pkg := ws.Packages[0]
	if pkg.Name != "guest-a" {
		t.Errorf("name = %q, want guest-a", pkg.Name)
	}
	if pkg.ManifestPath != "/ws/guest-a/Cargo.toml" {
		t.Errorf("manifest = %q, want /ws/guest-a/Cargo.toml", pkg.ManifestPath)
	}
	if !pkg.Targets[0].IsBin() {
		t.Error("first target should be a bin target")
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := decode([]byte("not json")); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGuestMetadata(t *testing.T) {
	tests := []struct {
		name       string
		metadata   string
		want       bool
		wantKernel bool
	}{
		{
			name:     "user guest annotation",
			metadata: `{"guest": {}}`,
			want:     true,
		},
		{
			name:       "kernel guest annotation",
			metadata:   `{"guest": {"kernel": true}}`,
			want:       true,
			wantKernel: true,
		},
		{
			name:     "other annotation only",
			metadata: `{"docs": {"all-features": true}}`,
		},
		{
			name:     "null metadata",
			metadata: `null`,
		},
		{
			name:     "no metadata",
			metadata: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := Package{Metadata: json.RawMessage(tt.metadata)}
			md, ok := pkg.GuestMetadata()
			if ok != tt.want {
				t.Fatalf("ok = %v, want %v", ok, tt.want)
			}
			if md.Kernel != tt.wantKernel {
				t.Errorf("kernel = %v, want %v", md.Kernel, tt.wantKernel)
			}
		})
	}
}

func TestHasBinTarget(t *testing.T) {
	tests := []struct {
		name    string
		targets []Target
		want    bool
	}{
		{
			name:    "single bin",
			targets: []Target{{Name: "a", Kind: []string{"bin"}}},
			want:    true,
		},
		{
			name: "lib and bin",
			targets: []Target{
				{Name: "a", Kind: []string{"lib"}},
				{Name: "b", Kind: []string{"bin"}},
			},
			want: true,
		},
		{
			name:    "lib only",
			targets: []Target{{Name: "a", Kind: []string{"lib"}}},
		},
		{
			name: "no targets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := Package{Targets: tt.targets}
			if got := pkg.HasBinTarget(); got != tt.want {
				t.Errorf("HasBinTarget = %v, want %v", got, tt.want)
			}
		})
	}
}
