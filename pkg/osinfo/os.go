package osinfo

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// OperatingSystem is the result of a classification. Its subtype, when
// present, always belongs to its own family's enumeration.
type OperatingSystem struct {
	family     Family
	subtype    Subtype
	rawName    string
	rawVersion string
	arch       Architecture

	// versionGiven is false when rawVersion was filled from the subtype.
	versionGiven bool
}

func (o OperatingSystem) Family() Family { return o.family }

// Subtype returns the matched release, or nil for FamilyUnknown.
func (o OperatingSystem) Subtype() Subtype { return o.subtype }

func (o OperatingSystem) Windows() (WindowsSubtype, bool) {
	s, ok := o.subtype.(WindowsSubtype)
	return s, ok
}

func (o OperatingSystem) MacOS() (MacOSSubtype, bool) {
	s, ok := o.subtype.(MacOSSubtype)
	return s, ok
}

func (o OperatingSystem) Linux() (LinuxSubtype, bool) {
	s, ok := o.subtype.(LinuxSubtype)
	return s, ok
}

func (o OperatingSystem) Android() (AndroidSubtype, bool) {
	s, ok := o.subtype.(AndroidSubtype)
	return s, ok
}

// Support is the subtype's tier, or SupportUnknown when there is no subtype.
func (o OperatingSystem) Support() Support {
	if o.subtype == nil {
		return SupportUnknown
	}
	return o.subtype.Support()
}

func (o OperatingSystem) RawName() string { return o.rawName }

// RawVersion returns the version the system was classified with. For a
// matched subtype with no given version it is the subtype's newest version.
func (o OperatingSystem) RawVersion() (string, bool) {
	return o.rawVersion, o.rawVersion != ""
}

func (o OperatingSystem) Architecture() Architecture { return o.arch }

// NewerThanKnown reports whether the caller gave a version later than the
// newest one the subtype's rule records, e.g. a Windows 10 build released
// after the table was written. Filled-in and unparseable versions never count.
func (o OperatingSystem) NewerThanKnown() bool {
	if !o.versionGiven || o.subtype == nil {
		return false
	}
	newest := o.subtype.NewestVersion()
	if newest == nil {
		return false
	}
	v, err := semver.NewVersion(o.rawVersion)
	if err != nil {
		return false
	}
	return v.GreaterThan(newest)
}

// IsDesktop guesses whether the system is a desktop. See the package-level
// IsDesktop for the decision table.
func (o OperatingSystem) IsDesktop() bool {
	return IsDesktop(o.family, o.arch)
}

// String renders "<raw name> (<raw version>) <architecture>", leaving out the
// version when absent and the architecture when unknown.
func (o OperatingSystem) String() string {
	var b strings.Builder
	b.WriteString(o.rawName)
	if o.rawVersion != "" {
		b.WriteString(" (")
		b.WriteString(o.rawVersion)
		b.WriteString(")")
	}
	if o.arch.Kind() != ArchUnknown {
		b.WriteString(" ")
		b.WriteString(o.arch.String())
	}
	return b.String()
}

// IsDesktop is a heuristic over family and architecture. macOS, Android and
// unknown systems always report false. Windows and Linux report true on x86,
// PowerPC and SPARC, and false on ARM or when the architecture is unclear.
// It is known to be wrong for ARM desktops.
func IsDesktop(f Family, a Architecture) bool {
	switch f {
	case FamilyWindows, FamilyLinux:
		if a.IsX86() {
			return true
		}
		switch a.Kind() {
		case ArchPowerPC, ArchPPC, ArchSPARC:
			return true
		}
		return false
	default:
		return false
	}
}

// Summary is a flat, serialisable view of an OperatingSystem.
type Summary struct {
	Family          Family   `json:"family" yaml:"family"`
	Subtype         string   `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Support         Support  `json:"support" yaml:"support"`
	NewestVersion   string   `json:"newest_version,omitempty" yaml:"newest_version,omitempty"`
	APILevel        int      `json:"api_level,omitempty" yaml:"api_level,omitempty"`
	RawName         string   `json:"raw_name" yaml:"raw_name"`
	RawVersion      string   `json:"raw_version,omitempty" yaml:"raw_version,omitempty"`
	NewerThanKnown  bool     `json:"newer_than_known,omitempty" yaml:"newer_than_known,omitempty"`
	Architecture    ArchKind `json:"architecture" yaml:"architecture"`
	RawArchitecture string   `json:"raw_architecture,omitempty" yaml:"raw_architecture,omitempty"`
	Desktop         bool     `json:"desktop" yaml:"desktop"`
	Display         string   `json:"display" yaml:"display"`
}

func (o OperatingSystem) Summary() Summary {
	s := Summary{
		Family:          o.family,
		Support:         o.Support(),
		RawName:         o.rawName,
		RawVersion:      o.rawVersion,
		NewerThanKnown:  o.NewerThanKnown(),
		Architecture:    o.arch.Kind(),
		RawArchitecture: o.arch.Raw(),
		Desktop:         o.IsDesktop(),
		Display:         o.String(),
	}
	if o.subtype != nil {
		s.Subtype = o.subtype.Name()
		if v := o.subtype.NewestVersion(); v != nil {
			s.NewestVersion = v.Original()
		}
	}
	if a, ok := o.Android(); ok {
		s.APILevel = a.APILevel()
	}
	return s
}

func (o OperatingSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Summary())
}

// LogValue groups the classification for structured logging.
func (o OperatingSystem) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("family", o.family.String()),
		slog.String("raw_name", o.rawName),
	}
	if o.subtype != nil {
		attrs = append(attrs,
			slog.String("subtype", o.subtype.Name()),
			slog.String("support", o.subtype.Support().String()),
		)
	}
	if o.rawVersion != "" {
		attrs = append(attrs, slog.String("raw_version", o.rawVersion))
	}
	if o.NewerThanKnown() {
		attrs = append(attrs, slog.Bool("newer_than_known", true))
	}
	attrs = append(attrs, slog.String("arch", o.arch.String()))
	return slog.GroupValue(attrs...)
}
