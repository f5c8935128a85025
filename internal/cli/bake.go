package cli

import (
	"context"

	"github.com/zkforge/guestbake/internal/bake"
	"github.com/zkforge/guestbake/internal/builder"
	"github.com/zkforge/guestbake/internal/settings"
	"github.com/zkforge/guestbake/internal/workspace"
)

// Represents the 'guestbake bake' command.
type BakeCmd struct {
	ManifestPath string   `help:"Path to the workspace manifest." type:"path" placeholder:"PATH"`
	Package      []string `short:"p" help:"Package(s) to bake." placeholder:"NAME"`
	Exclude      []string `help:"Package(s) to skip." placeholder:"NAME"`
	Workspace    bool     `help:"Bake all workspace members."`
	Features     []string `short:"F" help:"Feature flags to enable." placeholder:"FEATURE"`
	Docker       bool     `help:"Compile inside a container for reproducible builds."`
}

// Executes the bake command.
//
// Resolves the workspace, narrows it to the selected eligible packages,
// and bakes them sequentially. Always-on features from the config file
// are merged with the command line.
func (c *BakeCmd) Run(ctx context.Context) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	features := append(append([]string(nil), cfg.Features...), c.Features...)

	ws, err := workspace.Load(ctx, c.ManifestPath, features)
	if err != nil {
		return err
	}

	part := workspace.Partition{
		Include:   c.Package,
		Exclude:   c.Exclude,
		Workspace: c.Workspace,
	}
	pkgs := workspace.Scan(part.Apply(ws))

	b := builder.NewCargo(cfg.BuildImage, cfg.ContainerdAddress, cfg.Namespace)

	return bake.Run(ctx, b, ws, pkgs, bake.Options{
		Features: features,
		Docker:   c.Docker,
	})
}
