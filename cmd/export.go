package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olimci/cactus/pkg/codec"
	"github.com/olimci/cactus/pkg/export"
	"github.com/olimci/cactus/pkg/watcher"
	"github.com/urfave/cli/v3"
)

var ErrNothingToWatch = errors.New("--watch needs a data file")

type exportParams struct {
	formats []codec.Format
	outDir  string
	opts    export.Options
}

func parseExportParams(cmd *cli.Command) (exportParams, error) {
	p := exportParams{
		outDir: strings.TrimSpace(cmd.String("out")),
		opts:   export.DefaultOptions(),
	}
	p.opts.Minify = cmd.Bool("minify")
	if name := strings.TrimSpace(cmd.String("name")); name != "" {
		p.opts.Name = name
	}

	seen := make(map[codec.Format]bool)
	for _, raw := range cmd.StringSlice("format") {
		for _, name := range strings.Split(raw, ",") {
			f, err := codec.ParseFormat(name)
			if err != nil {
				return p, err
			}
			if !seen[f] {
				seen[f] = true
				p.formats = append(p.formats, f)
			}
		}
	}
	if len(p.formats) == 0 {
		p.formats = []codec.Format{codec.JSON}
	}

	if p.outDir == "" && len(p.formats) > 1 {
		return p, fmt.Errorf("exporting %d formats needs --out", len(p.formats))
	}

	return p, nil
}

func (a *app) runExport(ctx context.Context, cmd *cli.Command) error {
	params, err := parseExportParams(cmd)
	if err != nil {
		return err
	}

	source, err := a.exportOnce(ctx, cmd, params)
	if err != nil {
		return err
	}

	if !cmd.Bool("watch") {
		return nil
	}
	if source == "" {
		return ErrNothingToWatch
	}

	return a.watchExport(ctx, cmd, params, source, cmd.Duration("debounce"))
}

func (a *app) exportOnce(ctx context.Context, cmd *cli.Command, params exportParams) (string, error) {
	cfg, source, err := a.loadData(cmd)
	if err != nil {
		return source, err
	}

	doc := export.FromConfig(cfg)

	if params.outDir == "" {
		return source, export.Encode(a.out, params.formats[0], doc, params.opts)
	}

	results, err := export.WriteFiles(ctx, params.outDir, params.formats, doc, params.opts)
	if err != nil {
		return source, err
	}

	for _, r := range results {
		if r.Written {
			a.logger.Info("wrote", "path", r.Path)
		} else {
			a.logger.Debug("unchanged", "path", r.Path)
		}
	}
	return source, nil
}

func (a *app) watchExport(ctx context.Context, cmd *cli.Command, params exportParams, source string, debounce time.Duration) error {
	w, err := watcher.New(debounce, source)
	if err != nil {
		return err
	}
	defer w.Close()

	w.Start(ctx)
	a.logger.Info("watching", "path", source)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-w.Events:
			start := time.Now()
			if _, err := a.exportOnce(ctx, cmd, params); err != nil {
				a.logger.Error("export failed", "reason", ev.Reason, "err", err)
				continue
			}
			a.logger.Info("exported", "reason", ev.Reason, "took", time.Since(start).Truncate(time.Millisecond))

		case err := <-w.Errors:
			a.logger.Warn("watch error", "err", err)
		}
	}
}
