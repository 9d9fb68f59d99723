package osinfo

import "github.com/Masterminds/semver/v3"

// LinuxSubtype enumerates the Linux distributions and releases that are
// recognised individually.
type LinuxSubtype uint8

const (
	LinuxOracle5 LinuxSubtype = iota
	LinuxOracle6
	LinuxOracle7
	LinuxOracleUnknown
	LinuxRedHat5
	LinuxRedHat6
	LinuxRedHat7
	LinuxRedHatUnknown
	LinuxSUSE10
	LinuxSUSE11
	LinuxSUSE12
	LinuxSUSEUnknown
	LinuxUbuntuLucidLynx
	LinuxUbuntuMaverickMeerkat
	LinuxUbuntuNattyNarwhal
	LinuxUbuntuOneiricOcelot
	LinuxUbuntuPrecisePangolin
	LinuxUbuntuQuantalQuetzal
	LinuxUbuntuRaringRingtail
	LinuxUbuntuSaucySalamander
	LinuxUbuntuTrustyTahr
	LinuxUbuntuUtopicUnicorn
	LinuxUbuntuVividVervet
	LinuxUbuntuWilyWerewolf
	LinuxUbuntuXenialXerus
	LinuxUbuntuYakketyYak
	LinuxUbuntuZestyZapus
	LinuxUbuntuUnknown
	LinuxUnknown
)

const (
	oraclePrefix = `^oracle(\s*linux)?`
	redHatPrefix = `^red\s*hat(\s*enterprise)?(\s*linux)?`
	susePrefix   = `^(open\s*)?suse(\s*linux)?(\s*enterprise)?(\s*server)?`
	ubuntuPrefix = `^ubuntu\s*(linux\s*)?`
)

// distroRule matches a numbered major release of a distribution.
func distroRule(s LinuxSubtype, name, prefix, major, newest string) rule[LinuxSubtype] {
	return newRule(s, name, SupportSupported, prefix+`\s*`+major+`\b`, newest)
}

// ubuntuRule matches an Ubuntu release by version number, by codename, or by
// the initial letter both halves of the codename share.
func ubuntuRule(s LinuxSubtype, name, version, codename, newest string) rule[LinuxSubtype] {
	return newRule(s, name, SupportSupported, ubuntuPrefix+`(`+version+`|`+codename+`)\b`, newest)
}

// Each distribution ends in its own catch-all, and the table ends in a bare
// "linux" match for everything else.
var linuxTable = table[LinuxSubtype]{
	family: FamilyLinux,
	rules: []rule[LinuxSubtype]{
		distroRule(LinuxOracle5, "oracle_5", oraclePrefix, "5", "5.11"),
		distroRule(LinuxOracle6, "oracle_6", oraclePrefix, "6", "6.8"),
		distroRule(LinuxOracle7, "oracle_7", oraclePrefix, "7", "7.3"),
		newRule(LinuxOracleUnknown, "oracle_unknown", SupportUnknown, oraclePrefix+`\b`, ""),

		distroRule(LinuxRedHat5, "redHat_5", redHatPrefix, "5", "5.11"),
		distroRule(LinuxRedHat6, "redHat_6", redHatPrefix, "6", "6.8"),
		distroRule(LinuxRedHat7, "redHat_7", redHatPrefix, "7", "7.3"),
		newRule(LinuxRedHatUnknown, "redHat_unknown", SupportUnknown, redHatPrefix+`\b`, ""),

		distroRule(LinuxSUSE10, "suse_10", susePrefix, "10", "10"),
		distroRule(LinuxSUSE11, "suse_11", susePrefix, "11", "11"),
		distroRule(LinuxSUSE12, "suse_12", susePrefix, "12", "12"),
		newRule(LinuxSUSEUnknown, "suse_unknown", SupportUnknown, susePrefix+`(\b\d+)?`, ""),

		ubuntuRule(LinuxUbuntuLucidLynx, "ubuntu_lucidLynx", `10\.0?4`, `l(ucid|ynx)?`, "10.4"),
		ubuntuRule(LinuxUbuntuMaverickMeerkat, "ubuntu_maverickMeerkat", `10\.10`, `m(averick|eerkat)?`, "10.10"),
		ubuntuRule(LinuxUbuntuNattyNarwhal, "ubuntu_nattyNarwhal", `11\.0?4`, `n(atty|arwhal)?`, "11.4"),
		ubuntuRule(LinuxUbuntuOneiricOcelot, "ubuntu_oneiricOcelot", `11\.10`, `o(neiric|celot)?`, "11.10"),
		ubuntuRule(LinuxUbuntuPrecisePangolin, "ubuntu_precisePangolin", `12\.0?4`, `p(recise|angolin)?`, "12.4"),
		ubuntuRule(LinuxUbuntuQuantalQuetzal, "ubuntu_quantalQuetzal", `12\.10`, `q(uantal|uetzal)?`, "12.10"),
		ubuntuRule(LinuxUbuntuRaringRingtail, "ubuntu_raringRingtail", `13\.0?4`, `r(aring|ingtail)?`, "13.4"),
		ubuntuRule(LinuxUbuntuSaucySalamander, "ubuntu_saucySalamander", `13\.10`, `s(aucy|alamander)?`, "13.10"),
		ubuntuRule(LinuxUbuntuTrustyTahr, "ubuntu_trustyTahr", `14\.0?4`, `t(rusty|ahr)?`, "14.4"),
		ubuntuRule(LinuxUbuntuUtopicUnicorn, "ubuntu_utopicUnicorn", `14\.10`, `u(topic|nicorn)?`, "14.10"),
		ubuntuRule(LinuxUbuntuVividVervet, "ubuntu_vividVervet", `15\.0?4`, `v(ivid|ervet)?`, "15.4"),
		ubuntuRule(LinuxUbuntuWilyWerewolf, "ubuntu_wilyWerewolf", `15\.10`, `w(ily|erewolf)?`, "15.10"),
		ubuntuRule(LinuxUbuntuXenialXerus, "ubuntu_xenialXerus", `16\.0?4`, `x(enial|erus)?`, "16.4"),
		ubuntuRule(LinuxUbuntuYakketyYak, "ubuntu_yakketyYak", `16\.10`, `y(akkety|ak)?`, "16.10"),
		ubuntuRule(LinuxUbuntuZestyZapus, "ubuntu_zestyZapus", `17\.0?4`, `z(esty|apus)?`, "17.4"),
		newRule(LinuxUbuntuUnknown, "ubuntu_unknown", SupportUnknown, ubuntuPrefix+`(\d+\.\d{2})?(\w+)?\b`, ""),

		newRule(LinuxUnknown, "unknown", SupportUnknown, `linux`, ""),
	},
}

func (s LinuxSubtype) Family() Family                 { return FamilyLinux }
func (s LinuxSubtype) Name() string                   { return linuxTable.at(s).name }
func (s LinuxSubtype) Support() Support               { return linuxTable.at(s).support }
func (s LinuxSubtype) NewestVersion() *semver.Version { return linuxTable.at(s).newest }
func (s LinuxSubtype) String() string                 { return s.Name() }
