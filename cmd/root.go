package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/olimci/cactus/pkg/config"
	"github.com/olimci/cactus/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

// app carries the writers and logger shared by every command.
type app struct {
	out    io.Writer
	errOut io.Writer
	in     io.Reader
	logger *log.Logger

	verbose bool
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		logger: log.NewWithOptions(errOut, log.Options{
			Prefix: "cactus",
		}),
	}
}

func Execute(ctx context.Context, args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).command().Run(ctx, args)
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "cactus",
		Usage:     "Navigation menu and social links for the site",
		Writer:    a.out,
		ErrWriter: a.errOut,
		Reader:    a.in,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log debug output"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				a.verbose = true
				a.logger.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "version",
				Usage:  "Print version",
				Action: a.runVersion,
			},
			{
				Name:      "init",
				Usage:     "Write a starter data file holding the built-in menu and social links",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite an existing file"},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip prompts and keep the built-in values"},
				},
				Action: a.runInit,
			},
			{
				Name:   "menu",
				Usage:  "List navigation entries in display order",
				Flags:  dataFlags(),
				Action: a.runMenu,
			},
			{
				Name:      "social",
				Usage:     "List social links, or print the value for one platform",
				ArgsUsage: "[platform]",
				Flags:     dataFlags(),
				Action:    a.runSocial,
			},
			{
				Name:  "export",
				Usage: "Write the menu and social links for a site generator",
				Flags: append(dataFlags(),
					&cli.StringSliceFlag{Name: "format", Aliases: []string{"F"}, Value: []string{"json"}, Usage: "Output format (toml, yaml, json; repeatable)"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output directory (default: stdout)"},
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Value: "site", Usage: "Output file name, without extension"},
					&cli.BoolFlag{Name: "minify", Aliases: []string{"m"}, Usage: "Minify JSON output"},
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "Export again whenever the data file changes"},
					&cli.DurationFlag{Name: "debounce", Value: 250 * time.Millisecond, Usage: "Debounce window for --watch"},
				),
				Action: a.runExport,
			},
		},
	}
}

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultPath, Usage: "Data file path (.toml, .yaml, .yml, .json)"},
		&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "Fail on warnings"},
	}
}
