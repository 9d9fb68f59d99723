package osinfo

import "github.com/Masterminds/semver/v3"

// AndroidSubtype enumerates Android releases.
type AndroidSubtype uint8

const (
	AndroidAlpha AndroidSubtype = iota
	AndroidBeta
	AndroidCupcake
	AndroidDonut
	AndroidEclair
	AndroidFroyo
	AndroidGingerbread
	AndroidHoneycomb
	AndroidIceCreamSandwich
	AndroidJellyBean
	AndroidKitKat
	AndroidLollipop
	AndroidMarshmallow
	AndroidNougat
	AndroidUnknown
)

func androidRule(s AndroidSubtype, name, pattern, newest string, apiLevel int) rule[AndroidSubtype] {
	r := newRule(s, name, SupportSupported, pattern, newest)
	r.apiLevel = apiLevel
	return r
}

// From Cupcake on, a release is named by its dessert, by the dessert's initial
// or by its version number. Alpha and beta predate the desserts.
var androidTable = table[AndroidSubtype]{
	family: FamilyAndroid,
	rules: []rule[AndroidSubtype]{
		androidRule(AndroidAlpha, "alpha", `^(android\s*(a(lpha)?(\s*1(\.0)?)?|beta\s*1(\.0)?)|android\s*1(\.0)?(\s*(a(lpha)?|beta))?)$`, "1.0", 1),
		androidRule(AndroidBeta, "beta", `^(android\s*(b(eta)?(\s*1\.1)?|alpha\s*1\.1)|android\s*1\.1(\s*(b(eta)?|lpha))?)$`, "1.1", 2),
		androidRule(AndroidCupcake, "cupcake", `^((android\s*)?c(upcake)?\b|android\s*1\.5(\s*c(upcake)?)?$)`, "1.5", 3),
		androidRule(AndroidDonut, "donut", `^((android\s*)?d(onut)?\b|android\s*1\.6(\s*d(onut)?)?$)`, "1.6", 4),
		androidRule(AndroidEclair, "eclair", `^((android\s*)?e(clair)?\b|android\s*2(\.[01])?\s*(e(clair)?)?$)`, "2.1", 7),
		androidRule(AndroidFroyo, "froyo", `^((android\s*)?f(royo)?\b|android\s*2\.2(\.[0-3])?\s*(f(royo)?)?$)`, "2.2.3", 8),
		androidRule(AndroidGingerbread, "gingerbread", `^((android\s*)?g(ingerbread)?\b|android\s*2\.3(\.[0-7])?\s*(g(ingerbread)?)?$)`, "2.3.7", 10),
		androidRule(AndroidHoneycomb, "honeycomb", `^((android\s*)?h(oneycomb)?\b|android\s*3(\.[012](\.[0-6])?)?\s*(h(oneycomb)?)?$)`, "3.2.6", 13),
		androidRule(AndroidIceCreamSandwich, "iceCreamSandwich", `^((android\s*)?i(ce\s*cream\s*sandwich)?\b|android\s*4(\.0(\.[0-4])?)?\s*(i(ce\s*cream\s*sandwich)?)?$)`, "4.0.4", 15),
		androidRule(AndroidJellyBean, "jellyBean", `^((android\s*)?j(elly\s*bean)?\b|android\s*4\.[123](\.[01])?\s*(j(elly\s*bean)?)?$)`, "4.3.1", 18),
		androidRule(AndroidKitKat, "kitKat", `^((android\s*)?k(it\s*kat)?\b|android\s*4\.4(\.[0-4])?\s*(k(it\s*kat)?)?$)`, "4.4.4", 19),
		androidRule(AndroidLollipop, "lollipop", `^((android\s*)?l(ollipop)?\b|android\s*5(\.[01](\.[01])?)?\s*(l(ollipop)?)?$)`, "5.1.1", 22),
		androidRule(AndroidMarshmallow, "marshmallow", `^((android\s*)?m(arshmallow)?\b|android\s*6(\.0(\.[01])?)?\s*(m(arshmallow)?)?$)`, "6.0.1", 23),
		androidRule(AndroidNougat, "nougat", `^((android\s*)?n(ougat)?\b|android\s*7(\.[01](\.[01])?)?\s*(n(ougat)?)?$)`, "7.1.1", 25),
		newRule(AndroidUnknown, "unknown", SupportUnknown, `android`, ""),
	},
}

func (s AndroidSubtype) Family() Family                 { return FamilyAndroid }
func (s AndroidSubtype) Name() string                   { return androidTable.at(s).name }
func (s AndroidSubtype) Support() Support               { return androidTable.at(s).support }
func (s AndroidSubtype) NewestVersion() *semver.Version { return androidTable.at(s).newest }
func (s AndroidSubtype) String() string                 { return s.Name() }

// APILevel is the newest Android API level of the release, or 0 for the
// catch-all subtype.
func (s AndroidSubtype) APILevel() int { return androidTable.at(s).apiLevel }
