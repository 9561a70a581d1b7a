package sitedata

import (
	"maps"
	"slices"
)

// Known social platforms, in the order they are listed.
const (
	PlatformGitHub  = "github"
	PlatformTwitter = "twitter"
	PlatformDiscord = "discord"
	PlatformEmail   = "email"
)

var knownPlatforms = []string{
	PlatformGitHub,
	PlatformTwitter,
	PlatformDiscord,
	PlatformEmail,
}

// KnownPlatforms lists the platforms a site theme recognises, in canonical
// order. The returned slice is a copy.
func KnownPlatforms() []string {
	return slices.Clone(knownPlatforms)
}

func IsKnownPlatform(platform string) bool {
	return slices.Contains(knownPlatforms, platform)
}

// MenuLink is a single navigation entry
type MenuLink struct {
	Title string `toml:"title" yaml:"title" json:"title"`
	Path  string `toml:"path" yaml:"path" json:"path"`
}

// Social maps a platform name to a profile URL or contact address
type Social map[string]string

var menu = []MenuLink{
	{Title: "Home", Path: "/"},
	{Title: "CV", Path: "/cv"},
	{Title: "Blog", Path: "/posts"},
	{Title: "About", Path: "/about"},
}

// remember to replace these with your own socials
var social = Social{
	PlatformGitHub:  "https://github.com/EwanBSmith",
	PlatformTwitter: "https://github.com/EwanSmithPhD",
	PlatformDiscord: "https://github.com/chrismwilliams/astro-cactus",
	PlatformEmail:   "me@example.com",
}

// Menu returns the navigation entries in display order.
// The returned slice is a copy and may be modified freely.
func Menu() []MenuLink {
	return slices.Clone(menu)
}

// SocialLinks returns the social link mapping.
// The returned map is a copy and may be modified freely.
func SocialLinks() Social {
	return maps.Clone(social)
}

// Get returns the value stored for platform, exactly as configured.
func (s Social) Get(platform string) (string, bool) {
	v, ok := s[platform]
	return v, ok
}

// Platforms returns the keys of s: known platforms first in their listed order,
// then any others sorted.
func (s Social) Platforms() []string {
	out := make([]string, 0, len(s))
	for _, p := range knownPlatforms {
		if _, ok := s[p]; ok {
			out = append(out, p)
		}
	}

	var rest []string
	for k := range s {
		if !IsKnownPlatform(k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)

	return append(out, rest...)
}
