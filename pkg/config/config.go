package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/olimci/cactus/pkg/codec"
	"github.com/olimci/cactus/pkg/diag"
	"github.com/olimci/cactus/pkg/sitedata"
	"github.com/olimci/cactus/pkg/utils/fileutils"
	"github.com/olimci/cactus/pkg/version"
)

// DefaultPath is the data file looked up when none is given.
const DefaultPath = "cactus.toml"

// Config is the content of a cactus data file.
type Config struct {
	Cactus CactusConfig        `toml:"cactus" yaml:"cactus" json:"cactus"`
	Site   SiteConfig          `toml:"site,omitempty" yaml:"site,omitempty" json:"site"`
	Menu   []sitedata.MenuLink `toml:"menu" yaml:"menu" json:"menu"`
	Social sitedata.Social     `toml:"social" yaml:"social" json:"social"`
}

type CactusConfig struct {
	Version string `toml:"version,omitempty" yaml:"version,omitempty" json:"version,omitempty"`
}

type SiteConfig struct {
	Title string `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	URL   string `toml:"url,omitempty" yaml:"url,omitempty" json:"url,omitempty"`
}

// Default returns a Config holding the built-in menu and social links.
func Default() *Config {
	return &Config{
		Cactus: CactusConfig{
			Version: version.String(),
		},
		Menu:   sitedata.Menu(),
		Social: sitedata.SocialLinks(),
	}
}

// Load reads a data file. The format is taken from the file extension.
func Load(path string) (*Config, error) {
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, f)
}

// Decode reads a data document from r. A document without a menu or social
// section gets the built-in value for that section.
func Decode(r io.Reader, f codec.Format) (*Config, error) {
	cfg := new(Config)
	if err := codec.Decode(r, f, cfg); err != nil {
		return nil, err
	}

	if cfg.Menu == nil {
		cfg.Menu = sitedata.Menu()
	}
	if cfg.Social == nil {
		cfg.Social = sitedata.SocialLinks()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path atomically, in the format implied by its extension.
func Save(path string, cfg *Config) error {
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}

	return fileutils.AtomicWrite(path, func(w io.Writer) error {
		return codec.Encode(w, f, cfg)
	})
}

// Validate checks the parts of the file that cactus itself depends on. Menu and
// social values are left to Diagnose, they are never rejected.
func (c *Config) Validate() error {
	if v := strings.TrimSpace(c.Cactus.Version); v != "" {
		required, err := version.Parse(v)
		if err != nil {
			return fmt.Errorf("cactus.version: %w", err)
		}
		if err := version.Current().Supports(required); err != nil {
			return fmt.Errorf("cactus.version: %w", err)
		}
	}

	if u := strings.TrimSpace(c.Site.URL); u != "" {
		if !(strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")) {
			return fmt.Errorf("site.url must start with http:// or https:// (got %q)", u)
		}
		if _, err := url.Parse(u); err != nil {
			return fmt.Errorf("site.url is not a valid URL (got %q): %w", u, err)
		}
	}

	return nil
}

// Diagnose reports shape problems in the menu and social links as warnings
// attributed to source. Platforms the theme has no icon for are reported at
// info level.
func Diagnose(source string, cfg *Config, sink diag.Sink) {
	for _, issue := range sitedata.Inspect(cfg.Menu, cfg.Social) {
		sink.Report(diag.Diagnostic{
			Level:   diag.LevelWarning,
			Source:  source,
			Field:   issue.Field,
			Message: issue.Message,
		})
	}

	for _, platform := range cfg.Social.Platforms() {
		if platform == "" || sitedata.IsKnownPlatform(platform) {
			continue
		}
		sink.Report(diag.Diagnostic{
			Level:   diag.LevelInfo,
			Source:  source,
			Field:   "social." + platform,
			Message: "not a known platform",
		})
	}
}

// Resolve loads path, or falls back to the built-in data when path is the
// default data file and it does not exist. The returned source is empty for
// built-in data.
func Resolve(path string, explicit bool) (cfg *Config, source string, err error) {
	cfg, err = Load(path)
	switch {
	case err == nil:
		return cfg, path, nil
	case !explicit && errors.Is(err, os.ErrNotExist):
		return Default(), "", nil
	default:
		return nil, path, err
	}
}
