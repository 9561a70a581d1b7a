// Package export writes the menu and social links in the formats a site
// generator reads.
package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/olimci/cactus/pkg/codec"
	"github.com/olimci/cactus/pkg/config"
	"github.com/olimci/cactus/pkg/sitedata"
	"github.com/olimci/cactus/pkg/utils/fileutils"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"golang.org/x/sync/errgroup"
)

const jsonMime = "application/json"

// Document is the exported shape: the menu in display order and the social mapping.
type Document struct {
	Menu   []sitedata.MenuLink `toml:"menu" yaml:"menu" json:"menu"`
	Social sitedata.Social     `toml:"social" yaml:"social" json:"social"`
}

// FromConfig builds a Document from a loaded data file.
func FromConfig(cfg *config.Config) Document {
	return Document{
		Menu:   cfg.Menu,
		Social: cfg.Social,
	}
}

// BuiltIn returns a Document holding the built-in data.
func BuiltIn() Document {
	return Document{
		Menu:   sitedata.Menu(),
		Social: sitedata.SocialLinks(),
	}
}

type Options struct {
	// Name is the file name, without extension, used by WriteFiles.
	Name string
	// Minify compacts JSON output. Other formats are written as is.
	Minify bool
	// MaxWorkers bounds concurrent writes in WriteFiles.
	MaxWorkers int
}

func DefaultOptions() Options {
	return Options{
		Name:       "site",
		MaxWorkers: runtime.NumCPU(),
	}
}

var jsonMinifier = sync.OnceValue(func() *minify.M {
	m := minify.New()
	m.AddFunc(jsonMime, minjson.Minify)
	return m
})

// Encode writes doc to w in format f.
func Encode(w io.Writer, f codec.Format, doc Document, opts Options) error {
	if f != codec.JSON || !opts.Minify {
		return codec.Encode(w, f, doc)
	}

	mw := jsonMinifier().Writer(jsonMime, w)
	if err := codec.Encode(mw, f, doc); err != nil {
		return err
	}
	return mw.Close()
}

// Result describes one file handled by WriteFiles.
type Result struct {
	Format  codec.Format
	Path    string
	Written bool // false when the file already had this content
}

// WriteFiles writes doc to dir once per format, concurrently. Files whose
// content would not change are left untouched.
func WriteFiles(ctx context.Context, dir string, formats []codec.Format, doc Document, opts Options) ([]Result, error) {
	if opts.Name == "" {
		opts.Name = DefaultOptions().Name
	}

	results := make([]Result, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	if opts.MaxWorkers > 0 {
		g.SetLimit(opts.MaxWorkers)
	}

	for i, f := range formats {
		path := filepath.Join(dir, opts.Name+f.Ext())

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			written, err := fileutils.AtomicEdit(path, func(w io.Writer) error {
				return Encode(w, f, doc, opts)
			})
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			results[i] = Result{Format: f, Path: path, Written: written}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
