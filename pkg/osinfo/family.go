package osinfo

import (
	"fmt"
	"strings"
)

// Family is the top-level operating system category.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyWindows
	FamilyMacOS
	FamilyLinux
	FamilyAndroid
)

var familyNames = [...]string{
	FamilyUnknown: "unknown",
	FamilyWindows: "windows",
	FamilyMacOS:   "macos",
	FamilyLinux:   "linux",
	FamilyAndroid: "android",
}

// Families returns the recognised families in dispatch order.
func Families() []Family {
	return []Family{FamilyWindows, FamilyMacOS, FamilyLinux, FamilyAndroid}
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("family(%d)", uint8(f))
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFamily maps a family name back to its Family. Matching ignores case and
// accepts "mac" and "macos" alike.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win":
		return FamilyWindows, nil
	case "macos", "mac", "osx":
		return FamilyMacOS, nil
	case "linux":
		return FamilyLinux, nil
	case "android":
		return FamilyAndroid, nil
	case "unknown":
		return FamilyUnknown, nil
	}
	return FamilyUnknown, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// Support is the tier by which a release is supported.
type Support uint8

const (
	// SupportUnsupported marks releases that are not supported at all.
	SupportUnsupported Support = iota
	// SupportDeprecated marks releases that work today but will be dropped.
	SupportDeprecated
	SupportSupported
	// SupportUnknown is used for catch-all subtypes and unrecognised systems.
	SupportUnknown
)

var supportNames = [...]string{
	SupportUnsupported: "unsupported",
	SupportDeprecated:  "deprecated",
	SupportSupported:   "supported",
	SupportUnknown:     "unknown",
}

func (s Support) String() string {
	if int(s) < len(supportNames) {
		return supportNames[s]
	}
	return fmt.Sprintf("support(%d)", uint8(s))
}

func (s Support) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Support) UnmarshalText(text []byte) error {
	i, err := lookupName(supportNames[:], string(text))
	if err != nil {
		return err
	}
	*s = Support(i)
	return nil
}

// lookupName returns the index of name in names, the inverse of the String
// methods backed by those tables.
func lookupName(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, name)
}
