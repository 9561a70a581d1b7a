package version

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version of cactus
const (
	Major = 0
	Minor = 2
	Patch = 0
)

var (
	ErrInvalidVersion = errors.New("invalid version")
	ErrIncompatible   = errors.New("incompatible version")
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func Current() Version {
	return Version{Major: Major, Minor: Minor, Patch: Patch}
}

// String gives you the string representation of the current version
func String() string {
	return Current().String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a version of the form x.y.z, with an optional leading v.
func Parse(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q (expected x.y.z)", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q (invalid %s)", ErrInvalidVersion, s, name)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Supports reports whether a data file written for required can be read by v.
// Only a newer major version is rejected.
func (v Version) Supports(required Version) error {
	if required.Major > v.Major {
		return fmt.Errorf("%w: file targets %s, this is %s", ErrIncompatible, required, v)
	}
	return nil
}
