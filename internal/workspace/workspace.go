package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"slices"
)

// The annotation key under package metadata that marks a package as a
// guest program.
const metadataKey = "guest"

// A resolved view of the workspace's package graph.
type Workspace struct {
	Packages  []Package `json:"packages"`          // All packages in the graph, in resolution order.
	Members   []string  `json:"workspace_members"` // Package IDs of workspace members.
	TargetDir string    `json:"target_directory"`  // Workspace-level build output directory.
}

// A single package in the workspace.
type Package struct {
	ID           string          `json:"id"`            // Opaque unique package ID.
	Name         string          `json:"name"`          // Package name, used for inclusion filters.
	ManifestPath string          `json:"manifest_path"` // Absolute path to the package manifest.
	Metadata     json.RawMessage `json:"metadata"`      // Raw package metadata table, may be null.
	Targets      []Target        `json:"targets"`       // Declared build targets.
}

// A declared build target within a package.
type Target struct {
	Name string   `json:"name"` // Target name, also the produced binary's file name.
	Kind []string `json:"kind"` // Target kinds (e.g. "bin", "lib").
}

// Whether the target produces an executable binary.
func (t Target) IsBin() bool {
	return slices.Contains(t.Kind, "bin")
}

// Build-relevant settings carried in the guest metadata annotation.
type Metadata struct {
	Kernel bool `json:"kernel"` // Whether the guest runs in kernel space.
}

// Extracts the guest annotation from the package metadata.
//
// Returns false when the package carries no metadata or the metadata has
// no guest entry. A present but empty annotation yields zero-value settings.
func (p *Package) GuestMetadata() (Metadata, bool) {
	if len(p.Metadata) == 0 || bytes.Equal(p.Metadata, []byte("null")) {
		return Metadata{}, false
	}

	var tables map[string]json.RawMessage
	if err := json.Unmarshal(p.Metadata, &tables); err != nil {
		return Metadata{}, false
	}

	raw, ok := tables[metadataKey]
	if !ok {
		return Metadata{}, false
	}

	var md Metadata
	if err := json.Unmarshal(raw, &md); err != nil {
		return Metadata{}, false
	}
	return md, true
}

// Whether the package declares at least one binary target.
func (p *Package) HasBinTarget() bool {
	for _, t := range p.Targets {
		if t.IsBin() {
			return true
		}
	}
	return false
}

// Resolves the workspace package graph by invoking the toolchain's
// metadata command.
//
// The manifest path selects the workspace; when empty, the toolchain
// discovers the manifest from the working directory. Feature flags are
// forwarded so that conditional metadata resolves the same way it will
// during the build. The command's JSON output is decoded into a
// [Workspace].
func Load(ctx context.Context, manifestPath string, features []string) (*Workspace, error) {
	args := []string{"metadata", "--format-version", "1"}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}
	for _, f := range features {
		args = append(args, "--features", f)
	}

	cmd := exec.CommandContext(ctx, "cargo", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("resolving workspace metadata", "manifest", manifestPath)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrMetadata, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return decode(stdout.Bytes())
}

// Decodes the metadata command's JSON output.
func decode(data []byte) (*Workspace, error) {
	var ws Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadata, err)
	}
	return &ws, nil
}
