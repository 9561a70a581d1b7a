package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/olimci/cactus/pkg/config"
)

// runInitInteractive asks for site details and social links, editing cfg in
// place. It reports false when the user aborts.
func runInitInteractive(ctx context.Context, cfg *config.Config) (bool, error) {
	platforms := cfg.Social.Platforms()
	values := make([]string, len(platforms))

	site := huh.NewGroup(
		huh.NewInput().
			Title("Site title").
			Value(&cfg.Site.Title),
		huh.NewInput().
			Title("Site URL").
			Placeholder("https://example.com").
			Validate(validateSiteURL).
			Value(&cfg.Site.URL),
	).Title("Site")

	socialFields := make([]huh.Field, 0, len(platforms))
	for i, p := range platforms {
		values[i] = cfg.Social[p]
		socialFields = append(socialFields, huh.NewInput().
			Title(p).
			Value(&values[i]))
	}
	social := huh.NewGroup(socialFields...).
		Title("Social links").
		Description("Remember to replace these with your own")

	form := huh.NewForm(site, social)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	for i, p := range platforms {
		cfg.Social[p] = values[i]
	}
	return true, nil
}

func validateSiteURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return nil
	}
	return fmt.Errorf("must start with http:// or https://")
}
