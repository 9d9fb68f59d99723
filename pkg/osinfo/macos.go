package osinfo

import "github.com/Masterminds/semver/v3"

// MacOSSubtype enumerates macOS releases.
type MacOSSubtype uint8

const (
	MacOSCheetah MacOSSubtype = iota
	MacOSPuma
	MacOSJaguar
	MacOSPanther
	MacOSTiger
	MacOSLeopard
	MacOSSnowLeopard
	MacOSLion
	MacOSMountainLion
	MacOSMavericks
	MacOSYosemite
	MacOSElCapitan
	MacOSSierra
	MacOSHighSierra
	MacOSMojave
	MacOSUnknown
)

// The "X" became optional with Sierra, when the product was renamed macOS.
const (
	osxPrefix   = `^(mac)?\s*os\s*x\s*`
	macOSPrefix = `^(mac)?\s*os(\s*x)?\s*`
)

// Patterns are anchored at the end: the macOS table is matched against the
// name with the version appended, and "10.1" must not claim "10.12".
var macOSTable = table[MacOSSubtype]{
	family: FamilyMacOS,
	rules: []rule[MacOSSubtype]{
		newRule(MacOSCheetah, "cheetah", SupportUnsupported, osxPrefix+`(cheetah|10\.0(\.\d)?)$`, "10.0.4"),
		newRule(MacOSPuma, "puma", SupportUnsupported, osxPrefix+`(puma|10\.1(\.\d)?)$`, "10.1.5"),
		newRule(MacOSJaguar, "jaguar", SupportUnsupported, osxPrefix+`(jaguar|10\.2(\.\d)?)$`, "10.2.8"),
		newRule(MacOSPanther, "panther", SupportUnsupported, osxPrefix+`(panther|10\.3(\.\d)?)$`, "10.3.9"),
		newRule(MacOSTiger, "tiger", SupportUnsupported, osxPrefix+`(tiger|10\.4(\.\d{1,2})?)$`, "10.4.11"),
		newRule(MacOSLeopard, "leopard", SupportUnsupported, osxPrefix+`(leopard|10\.5(\.\d)?)$`, "10.5.8"),
		newRule(MacOSSnowLeopard, "snowLeopard", SupportUnsupported, osxPrefix+`(snow\s*leopard|10\.6(\.\d)?)$`, "10.6.8"),
		newRule(MacOSLion, "lion", SupportDeprecated, osxPrefix+`(lion|10\.7(\.\d)?)$`, "10.7.5"),
		newRule(MacOSMountainLion, "mountainLion", SupportSupported, osxPrefix+`(mountain\s*lion|10\.8(\.\d)?)$`, "10.8.5"),
		newRule(MacOSMavericks, "mavericks", SupportSupported, osxPrefix+`(mavericks|10\.9(\.\d)?)$`, "10.9.5"),
		newRule(MacOSYosemite, "yosemite", SupportSupported, osxPrefix+`(yosemite|10\.10(\.\d)?)$`, "10.10.5"),
		newRule(MacOSElCapitan, "elCapitan", SupportSupported, osxPrefix+`(el\s*cap(itan)?|10\.11(\.\d)?)$`, "10.11.6"),
		newRule(MacOSSierra, "sierra", SupportSupported, macOSPrefix+`(sierra|10\.12(\.\d)?)$`, "10.12.6"),
		newRule(MacOSHighSierra, "highSierra", SupportSupported, macOSPrefix+`(high\s*sierra|10\.13(\.\d)?)$`, "10.13.6"),
		newRule(MacOSMojave, "mojave", SupportSupported, macOSPrefix+`(mo[hj]ave|10\.14(\.\d)?)$`, "10.14"),
		newRule(MacOSUnknown, "unknown", SupportUnknown, `^(mac\s*os|os\s*x|mac\s*os\s*x)\s*(\w+(\s+\w+)*|10\.\d{1,2}(\.\d{1,2})?)?$`, ""),
	},
}

func (s MacOSSubtype) Family() Family                 { return FamilyMacOS }
func (s MacOSSubtype) Name() string                   { return macOSTable.at(s).name }
func (s MacOSSubtype) Support() Support               { return macOSTable.at(s).support }
func (s MacOSSubtype) NewestVersion() *semver.Version { return macOSTable.at(s).newest }
func (s MacOSSubtype) String() string                 { return s.Name() }
