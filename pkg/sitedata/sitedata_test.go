package sitedata

import (
	"slices"
	"strings"
	"testing"
)

func TestMenu_Shape(t *testing.T) {
	links := Menu()
	if len(links) == 0 {
		t.Fatal("Menu() returned no entries")
	}

	for i, link := range links {
		if link.Title == "" {
			t.Errorf("menu[%d] has empty title", i)
		}
		if !strings.HasPrefix(link.Path, "/") {
			t.Errorf("menu[%d] path %q does not begin with /", i, link.Path)
		}
	}
}

func TestMenu_Order(t *testing.T) {
	want := []MenuLink{
		{Title: "Home", Path: "/"},
		{Title: "CV", Path: "/cv"},
		{Title: "Blog", Path: "/posts"},
		{Title: "About", Path: "/about"},
	}

	if got := Menu(); !slices.Equal(got, want) {
		t.Errorf("Menu() = %v, want %v", got, want)
	}
}

func TestMenu_Iteration(t *testing.T) {
	links := []MenuLink{
		{Title: "Home", Path: "/"},
		{Title: "CV", Path: "/cv"},
	}

	var rendered []string
	for _, link := range links {
		rendered = append(rendered, link.Title+"="+link.Path)
	}

	want := []string{"Home=/", "CV=/cv"}
	if !slices.Equal(rendered, want) {
		t.Errorf("iteration produced %v, want %v", rendered, want)
	}
}

func TestMenu_ReturnsCopy(t *testing.T) {
	links := Menu()
	links[0].Title = "Changed"
	_ = append(links, MenuLink{Title: "Extra", Path: "/extra"})

	fresh := Menu()
	if fresh[0].Title != "Home" {
		t.Errorf("mutating a returned menu leaked: got %q", fresh[0].Title)
	}
	if len(fresh) != 4 {
		t.Errorf("len(Menu()) = %d, want 4", len(fresh))
	}
}

func TestSocialLinks_Shape(t *testing.T) {
	s := SocialLinks()
	if len(s) == 0 {
		t.Fatal("SocialLinks() returned no entries")
	}

	seen := make(map[string]bool)
	for _, platform := range s.Platforms() {
		if seen[platform] {
			t.Errorf("platform %q listed twice", platform)
		}
		seen[platform] = true

		if s[platform] == "" {
			t.Errorf("social[%q] is empty", platform)
		}
	}
	if len(seen) != len(s) {
		t.Errorf("Platforms() listed %d keys, mapping has %d", len(seen), len(s))
	}
}

func TestSocial_GetReturnsLiteral(t *testing.T) {
	s := SocialLinks()

	got, ok := s.Get(PlatformEmail)
	if !ok {
		t.Fatal("email not configured")
	}
	if got != "me@example.com" {
		t.Errorf("Get(email) = %q, want %q", got, "me@example.com")
	}

	custom := Social{"email": "  MAILTO:Someone@Example.COM "}
	if got, _ := custom.Get("email"); got != "  MAILTO:Someone@Example.COM " {
		t.Errorf("Get transformed the value: %q", got)
	}

	if _, ok := s.Get("mastodon"); ok {
		t.Error("Get(mastodon) reported a value that is not configured")
	}
}

func TestSocialLinks_ReturnsCopy(t *testing.T) {
	s := SocialLinks()
	s[PlatformGitHub] = "https://example.com"
	delete(s, PlatformEmail)

	fresh := SocialLinks()
	if fresh[PlatformGitHub] != "https://github.com/EwanBSmith" {
		t.Errorf("mutating a returned mapping leaked: got %q", fresh[PlatformGitHub])
	}
	if _, ok := fresh[PlatformEmail]; !ok {
		t.Error("deleting from a returned mapping leaked")
	}
}

func TestSocial_Platforms(t *testing.T) {
	tests := []struct {
		name   string
		social Social
		want   []string
	}{
		{
			name:   "built-in",
			social: SocialLinks(),
			want:   []string{"github", "twitter", "discord", "email"},
		},
		{
			name:   "unknown sorted after known",
			social: Social{"zulip": "z", "email": "e", "bluesky": "b", "github": "g"},
			want:   []string{"github", "email", "bluesky", "zulip"},
		},
		{
			name:   "nil",
			social: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.social.Platforms(); !slices.Equal(got, tt.want) {
				t.Errorf("Platforms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKnownPlatforms_Copy(t *testing.T) {
	known := KnownPlatforms()
	if !slices.Equal(known, []string{"github", "twitter", "discord", "email"}) {
		t.Fatalf("KnownPlatforms() = %v", known)
	}

	slices.Reverse(known)
	known[0] = "bluesky"

	if got := KnownPlatforms(); got[0] != PlatformGitHub || len(got) != 4 {
		t.Errorf("modifying a returned slice leaked: %v", got)
	}
	if got := SocialLinks().Platforms(); got[0] != PlatformGitHub || got[3] != PlatformEmail {
		t.Errorf("Platforms() order changed: %v", got)
	}
	if IsKnownPlatform("bluesky") {
		t.Error("IsKnownPlatform(bluesky) = true")
	}
}
