package osinfo

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Subtype is a named release within a family. Each family has its own closed
// enumeration implementing this interface.
type Subtype interface {
	Family() Family
	// Name is the canonical tag, such as "windows_10" or "ubuntu_lucidLynx".
	Name() string
	Support() Support
	// NewestVersion is the latest release version known for the subtype,
	// or nil for catch-all subtypes.
	NewestVersion() *semver.Version
	String() string
}

// subtypeEnum is the constraint shared by the per-family enumerations.
type subtypeEnum interface {
	~uint8
}

type rule[T subtypeEnum] struct {
	subtype  T
	name     string
	support  Support
	pattern  *regexp.Regexp
	newest   *semver.Version
	apiLevel int
}

// newRule compiles pattern case-insensitively. Both the pattern and the
// version are part of the static tables, so a bad entry panics at init.
func newRule[T subtypeEnum](subtype T, name string, support Support, pattern, newest string) rule[T] {
	r := rule[T]{
		subtype: subtype,
		name:    name,
		support: support,
		pattern: regexp.MustCompile(`(?i)` + pattern),
	}
	if newest != "" {
		r.newest = semver.MustParse(newest)
	}
	return r
}

// table is ordered so that a subtype's value is also its index.
type table[T subtypeEnum] struct {
	family Family
	rules  []rule[T]
}

// resolve returns the first subtype whose pattern matches anywhere in s.
func (t table[T]) resolve(s string) (T, bool) {
	for _, r := range t.rules {
		if r.pattern.MatchString(s) {
			return r.subtype, true
		}
	}
	var zero T
	return zero, false
}

func (t table[T]) at(s T) rule[T] {
	if int(s) < len(t.rules) {
		return t.rules[s]
	}
	return rule[T]{subtype: s, name: "invalid", support: SupportUnknown}
}

func (t table[T]) snapshot() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for _, r := range t.rules {
		rl := Rule{
			Family:   t.family,
			Subtype:  r.name,
			Support:  r.support,
			Pattern:  r.pattern.String(),
			APILevel: r.apiLevel,
		}
		if r.newest != nil {
			rl.NewestVersion = r.newest.Original()
		}
		out = append(out, rl)
	}
	return out
}

// Rule is a read-only view of one entry of a family table.
type Rule struct {
	Family        Family  `json:"family" yaml:"family"`
	Subtype       string  `json:"subtype" yaml:"subtype"`
	Support       Support `json:"support" yaml:"support"`
	Pattern       string  `json:"pattern" yaml:"pattern"`
	NewestVersion string  `json:"newest_version,omitempty" yaml:"newest_version,omitempty"`
	APILevel      int     `json:"api_level,omitempty" yaml:"api_level,omitempty"`
}

// Rules returns the table of a family in match order. FamilyUnknown has no
// table and yields nil.
func Rules(f Family) []Rule {
	switch f {
	case FamilyWindows:
		return windowsTable.snapshot()
	case FamilyMacOS:
		return macOSTable.snapshot()
	case FamilyLinux:
		return linuxTable.snapshot()
	case FamilyAndroid:
		return androidTable.snapshot()
	}
	return nil
}

// AllRules returns every table, in dispatch order.
func AllRules() []Rule {
	var out []Rule
	for _, f := range Families() {
		out = append(out, Rules(f)...)
	}
	return out
}
