package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

var ErrUnknownPlatform = errors.New("no social link for platform")

func (a *app) runSocial(ctx context.Context, cmd *cli.Command) error {
	cfg, source, err := a.loadData(cmd)
	if err != nil {
		return err
	}

	if platform := strings.TrimSpace(cmd.Args().First()); platform != "" {
		value, ok := cfg.Social.Get(platform)
		if !ok {
			if source == "" {
				source = "built-in data"
			}
			return fmt.Errorf("%w %q in %s", ErrUnknownPlatform, platform, source)
		}
		fmt.Fprintln(a.out, value)
		return nil
	}

	platforms := cfg.Social.Platforms()
	rows := make([][]string, 0, len(platforms))
	for _, p := range platforms {
		rows = append(rows, []string{p, cfg.Social[p]})
	}

	a.printRows([]string{"PLATFORM", "LINK"}, rows)
	return nil
}
