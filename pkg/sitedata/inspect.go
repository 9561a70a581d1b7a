package sitedata

import (
	"fmt"
	"strings"
)

// Issue describes a shape problem found by Inspect.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// Inspect reports shape problems in menu and social without changing either.
// Nothing here is enforced, it only describes what a renderer would trip over.
func Inspect(menu []MenuLink, social Social) []Issue {
	var issues []Issue

	if len(menu) == 0 {
		issues = append(issues, Issue{Field: "menu", Message: "no navigation entries"})
	}

	seen := make(map[string]int, len(menu))
	for i, link := range menu {
		field := fmt.Sprintf("menu[%d]", i)

		if strings.TrimSpace(link.Title) == "" {
			issues = append(issues, Issue{Field: field + ".title", Message: "title is empty"})
		}

		switch {
		case link.Path == "":
			issues = append(issues, Issue{Field: field + ".path", Message: "path is empty"})
		case !strings.HasPrefix(link.Path, "/"):
			issues = append(issues, Issue{Field: field + ".path", Message: fmt.Sprintf("path must begin with / (got %q)", link.Path)})
		}

		if first, ok := seen[link.Path]; ok && link.Path != "" {
			issues = append(issues, Issue{Field: field + ".path", Message: fmt.Sprintf("path %q repeats menu[%d]", link.Path, first)})
		} else if !ok {
			seen[link.Path] = i
		}
	}

	for _, platform := range social.Platforms() {
		if strings.TrimSpace(platform) == "" {
			issues = append(issues, Issue{Field: "social", Message: "platform name is empty"})
			continue
		}
		if social[platform] == "" {
			issues = append(issues, Issue{Field: "social." + platform, Message: "value is empty"})
		}
	}

	return issues
}
