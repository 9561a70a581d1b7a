package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func (a *app) runVersion(ctx context.Context, cmd *cli.Command) error {
	fmt.Fprintf(a.out, "cactus version %s\n", Version)
	return nil
}
