package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/olimci/cactus/pkg/codec"
	"github.com/olimci/cactus/pkg/config"
	"github.com/urfave/cli/v3"
)

var ErrFileExists = errors.New("file already exists")

func (a *app) runInit(ctx context.Context, cmd *cli.Command) error {
	path := strings.TrimSpace(cmd.Args().First())
	if path == "" {
		path = config.DefaultPath
	}

	if _, err := codec.FormatFromPath(path); err != nil {
		return err
	}

	if !cmd.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	cfg := config.Default()

	if !cmd.Bool("yes") && isTerminal(a.in) && isTerminal(a.out) {
		completed, err := runInitInteractive(ctx, cfg)
		if err != nil {
			return err
		}
		if !completed {
			a.logger.Info("init cancelled")
			return nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.logger.Info("wrote data file", "path", path, "menu", len(cfg.Menu), "social", len(cfg.Social))
	return nil
}
