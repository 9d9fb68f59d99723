package osinfo

import "github.com/Masterminds/semver/v3"

// WindowsSubtype enumerates Windows releases.
type WindowsSubtype uint8

const (
	Windows9x WindowsSubtype = iota
	WindowsNT
	Windows2000
	WindowsME
	WindowsXP
	WindowsVista
	Windows7
	Windows8x
	WindowsRT
	Windows10
	WindowsServer2008
	WindowsServer2008R2
	WindowsServer2012
	WindowsServer2012R2
	WindowsServer2016
	WindowsUnknown
)

// Releases before XP and Windows RT are unsupported; XP is deprecated.
var windowsTable = table[WindowsSubtype]{
	family: FamilyWindows,
	rules: []rule[WindowsSubtype]{
		newRule(Windows9x, "windows_9x", SupportUnsupported, `^win(dows)?\s*9[58]$`, "4.10.2222"),
		newRule(WindowsNT, "windows_NT", SupportUnsupported, `^win(dows)?\s*NT(\s*(3.[15]1?|4(.0)?))?$`, "4.0"),
		newRule(Windows2000, "windows_2000", SupportUnsupported, `^win(dows)?\s*2000$`, "5.0.2195"),
		newRule(WindowsME, "windows_ME", SupportUnsupported, `^win(dows)?\s*(ME|Millennium\s*Edition)$`, "4.90.3000"),
		newRule(WindowsXP, "windows_XP", SupportDeprecated, `^win(dows)?\s*XP`, "5.1.2600"),
		newRule(WindowsVista, "windows_Vista", SupportSupported, `^win(dows)?\s*Vista\b`, "6.0.6002"),
		newRule(Windows7, "windows_7", SupportSupported, `^win(dows)?\s*7\b`, "6.1.7601"),
		newRule(Windows8x, "windows_8x", SupportSupported, `^win(dows)?\s*8(\.1)?(\s*(Pro|Enterprise)(\s*Edition)?)?$`, "6.3.9600"),
		newRule(WindowsRT, "windows_RT", SupportUnsupported, `^win(dows)?(\s*8)?\s*RT\b`, "6.3.9600"),
		newRule(Windows10, "windows_10", SupportSupported, `^win(dows)?\s*10?\b`, "10.0.14393"),
		newRule(WindowsServer2008, "windowsServer_2008", SupportSupported, `^win(dows)?\s*server\s*2008$`, "6.0.6002"),
		newRule(WindowsServer2008R2, "windowsServer_2008_R2", SupportSupported, `^win(dows)?\s*server\s*2008\s*r2$`, "6.1.7601"),
		newRule(WindowsServer2012, "windowsServer_2012", SupportSupported, `^win(dows)?\s*server\s*2012$`, "6.3.9600"),
		newRule(WindowsServer2012R2, "windowsServer_2012_R2", SupportSupported, `^win(dows)?\s*server\s*2012\s*r2$`, "6.3.9600"),
		newRule(WindowsServer2016, "windowsServer_2016", SupportSupported, `^win(dows)?\s*server\s*2016$`, "10.0.14393"),
		newRule(WindowsUnknown, "unknown", SupportUnknown, `^win(dows)?`, ""),
	},
}

func (s WindowsSubtype) Family() Family                 { return FamilyWindows }
func (s WindowsSubtype) Name() string                   { return windowsTable.at(s).name }
func (s WindowsSubtype) Support() Support               { return windowsTable.at(s).support }
func (s WindowsSubtype) NewestVersion() *semver.Version { return windowsTable.at(s).newest }
func (s WindowsSubtype) String() string                 { return s.Name() }
