// Package pyversion provides arithmetic on Python major.minor version
// strings, as used when computing the range of interpreter versions a
// scaffolded project should support.
package pyversion

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/calliecameron/toolstack/pkg/errors"
)

// versionRe accepts "3.12" or "3.12.4"; a trailing patch component is
// ignored for comparison purposes.
var versionRe = regexp.MustCompile(`^([1-9][0-9]*)\.([0-9]+)(\.[0-9]+)?$`)

// Version is a parsed major.minor Python version.
type Version struct {
	Major int
	Minor int
}

// String renders the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare orders versions by major then minor.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return v.Major - other.Major
	}
	return v.Minor - other.Minor
}

// Parse parses a version string such as "3.12" or "3.12.4".
func Parse(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, errors.New(errors.ErrCodeInvalidVersion, "invalid python version %q", s)
	}
	major, _ := strconv.Atoi(m[1]) // regex guarantees digits
	minor, _ := strconv.Atoi(m[2])
	return Version{Major: major, Minor: minor}, nil
}

// Enumerate lists every minor version from first to last inclusive, e.g.
// Enumerate("3.12", "3.14") -> ["3.12", "3.13", "3.14"]. Both versions must
// share a major version and be given in ascending order.
func Enumerate(first, last string) ([]string, error) {
	v1, err := Parse(first)
	if err != nil {
		return nil, err
	}
	v2, err := Parse(last)
	if err != nil {
		return nil, err
	}
	if v1.Major != v2.Major {
		return nil, errors.New(errors.ErrCodeInvalidVersion,
			"python versions must have same major version; got %s and %s", first, last)
	}
	if v1.Minor > v2.Minor {
		return nil, errors.New(errors.ErrCodeInvalidVersion,
			"python versions passed in the wrong order; got %s and %s", first, last)
	}
	out := make([]string, 0, v2.Minor-v1.Minor+1)
	for minor := v1.Minor; minor <= v2.Minor; minor++ {
		out = append(out, Version{Major: v1.Major, Minor: minor}.String())
	}
	return out, nil
}

// FilterMax returns the versions no greater than max, sorted and
// deduplicated.
func FilterMax(versions []string, max string) ([]string, error) {
	highest, err := Parse(max)
	if err != nil {
		return nil, err
	}
	var kept []Version
	for _, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if v.Compare(highest) <= 0 {
			kept = append(kept, v)
		}
	}
	slices.SortFunc(kept, Version.Compare)
	kept = slices.Compact(kept)
	out := make([]string, 0, len(kept))
	for _, v := range kept {
		out = append(out, v.String())
	}
	return out, nil
}

// Increment returns the next minor version, e.g. "3.12" -> "3.13".
func Increment(version string) (string, error) {
	v, err := Parse(version)
	if err != nil {
		return "", err
	}
	return Version{Major: v.Major, Minor: v.Minor + 1}.String(), nil
}
