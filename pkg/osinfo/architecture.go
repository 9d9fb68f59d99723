package osinfo

import (
	"fmt"
	"regexp"
)

// ArchKind is the normalised CPU architecture tag.
type ArchKind uint8

const (
	// ArchUnknown is reported when no architecture string was available.
	ArchUnknown ArchKind = iota
	ArchI386
	ArchI686
	ArchX86
	ArchX86_64
	ArchAMD64
	ArchARM6
	ArchARM7
	ArchARM64
	ArchPowerPC
	ArchPPC
	ArchSPARC
	// ArchOther is reported for any architecture string the ladder does not know.
	ArchOther
)

var archKindNames = [...]string{
	ArchUnknown: "unknown",
	ArchI386:    "i386",
	ArchI686:    "i686",
	ArchX86:     "x86",
	ArchX86_64:  "x86_64",
	ArchAMD64:   "amd64",
	ArchARM6:    "arm6",
	ArchARM7:    "arm7",
	ArchARM64:   "arm64",
	ArchPowerPC: "powerPC",
	ArchPPC:     "ppc",
	ArchSPARC:   "sparc",
	ArchOther:   "other",
}

func (k ArchKind) String() string {
	if int(k) < len(archKindNames) {
		return archKindNames[k]
	}
	return fmt.Sprintf("arch(%d)", uint8(k))
}

func (k ArchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ArchKind) UnmarshalText(text []byte) error {
	i, err := lookupName(archKindNames[:], string(text))
	if err != nil {
		return err
	}
	*k = ArchKind(i)
	return nil
}

// archLadder is tried in order; patterns are anchored and case-sensitive.
var archLadder = []struct {
	kind    ArchKind
	pattern *regexp.Regexp
}{
	{ArchI386, regexp.MustCompile(`^i386$`)},
	{ArchI686, regexp.MustCompile(`^i686$`)},
	{ArchX86, regexp.MustCompile(`^x86$`)},
	{ArchX86_64, regexp.MustCompile(`^x86_64$`)},
	{ArchAMD64, regexp.MustCompile(`^amd64$`)},
	{ArchARM6, regexp.MustCompile(`^arm6$`)},
	{ArchARM7, regexp.MustCompile(`^arm7$`)},
	{ArchARM64, regexp.MustCompile(`^arm64$`)},
	{ArchPowerPC, regexp.MustCompile(`^powerpc$`)},
	{ArchPPC, regexp.MustCompile(`^ppc$`)},
	{ArchSPARC, regexp.MustCompile(`^sparc$`)},
}

// Architecture is a resolved architecture tag together with the raw string it
// was resolved from. The zero value is the unknown architecture.
type Architecture struct {
	kind ArchKind
	raw  string
}

// ResolveArchitecture maps a raw architecture token to its tag. An empty
// string means the architecture is not known; any other string that matches
// no definite tag is kept as ArchOther.
func ResolveArchitecture(raw string) Architecture {
	if raw == "" {
		return Architecture{}
	}
	for _, step := range archLadder {
		if step.pattern.MatchString(raw) {
			return Architecture{kind: step.kind, raw: raw}
		}
	}
	return Architecture{kind: ArchOther, raw: raw}
}

// Architectures lists every definite tag in resolution order.
func Architectures() []ArchKind {
	kinds := make([]ArchKind, 0, len(archLadder))
	for _, step := range archLadder {
		kinds = append(kinds, step.kind)
	}
	return kinds
}

func (a Architecture) Kind() ArchKind { return a.kind }

// Raw returns the original string. It is empty for the unknown architecture.
func (a Architecture) Raw() string { return a.raw }

// IsX86 reports whether the tag belongs to the 32 or 64 bit x86 family.
func (a Architecture) IsX86() bool {
	switch a.kind {
	case ArchI386, ArchI686, ArchX86, ArchX86_64, ArchAMD64:
		return true
	}
	return false
}

func (a Architecture) IsARM() bool {
	switch a.kind {
	case ArchARM6, ArchARM7, ArchARM64:
		return true
	}
	return false
}

// String renders the raw architecture string, or "unknown".
func (a Architecture) String() string {
	if a.kind == ArchUnknown {
		return archKindNames[ArchUnknown]
	}
	return a.raw
}
