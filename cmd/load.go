package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olimci/cactus/pkg/config"
	"github.com/olimci/cactus/pkg/diag"
	"github.com/urfave/cli/v3"
)

var ErrStrict = errors.New("warnings reported in strict mode")

// loadData resolves the data file named by --config and reports its
// diagnostics. source is empty when the built-in data is used.
func (a *app) loadData(cmd *cli.Command) (cfg *config.Config, source string, err error) {
	path := strings.TrimSpace(cmd.String("config"))
	if path == "" {
		path = config.DefaultPath
	}

	cfg, source, err = config.Resolve(path, cmd.IsSet("config"))
	if err != nil {
		return nil, path, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if source == "" {
		a.logger.Debug("no data file, using built-in data", "path", path)
	} else {
		a.logger.Debug("loaded data file", "path", source, "menu", len(cfg.Menu), "social", len(cfg.Social))
	}

	if err := a.diagnose(source, cfg, cmd.Bool("strict")); err != nil {
		return nil, source, err
	}
	return cfg, source, nil
}

func (a *app) diagnose(source string, cfg *config.Config, strict bool) error {
	minLevel := diag.LevelWarning
	if a.verbose {
		minLevel = diag.LevelDebug
	}

	printer := newLogPrinter(styleFor(a.errOut), a.errOut)
	collector := diag.NewCollector(
		diag.WithMinLevel(minLevel),
		diag.WithOnReport(printer.Print),
	)

	config.Diagnose(source, cfg, collector)

	if strict && collector.HasLevel(diag.LevelWarning) {
		return fmt.Errorf("%w: %s", ErrStrict, collector.Summary())
	}
	return nil
}
