package cli

import (
	"context"
	"fmt"

	"github.com/zkforge/guestbake/internal"
)

// Represents the 'guestbake version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
