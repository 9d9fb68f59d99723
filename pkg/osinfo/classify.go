package osinfo

// Classify resolves a raw OS name, and optionally a raw version and raw
// architecture, into an OperatingSystem. Empty version or architecture
// strings mean the value is absent. Classify never fails: names no family
// claims are reported as FamilyUnknown.
//
// Families are tried in the order Windows, macOS, Linux, Android. For macOS
// the version is appended to the name before matching, so that "Mac OS X" with
// version "10.12.3" resolves to Sierra.
func Classify(rawName, rawVersion, rawArchitecture string) OperatingSystem {
	arch := ResolveArchitecture(rawArchitecture)

	if s, ok := windowsTable.resolve(rawName); ok {
		return newOperatingSystem(s, rawName, rawVersion, arch)
	}

	macName := rawName
	if rawVersion != "" {
		macName = rawName + " " + rawVersion
	}
	if s, ok := macOSTable.resolve(macName); ok {
		return newOperatingSystem(s, rawName, rawVersion, arch)
	}

	if s, ok := linuxTable.resolve(rawName); ok {
		return newOperatingSystem(s, rawName, rawVersion, arch)
	}

	if s, ok := androidTable.resolve(rawName); ok {
		return newOperatingSystem(s, rawName, rawVersion, arch)
	}

	return OperatingSystem{
		family:     FamilyUnknown,
		rawName:    rawName,
		rawVersion: rawVersion,
		arch:       arch,

		versionGiven: rawVersion != "",
	}
}

// ClassifyIdentity is Classify over an Identity.
func ClassifyIdentity(id Identity) OperatingSystem {
	return Classify(id.Name, id.Version, id.Architecture)
}

func newOperatingSystem(s Subtype, rawName, rawVersion string, arch Architecture) OperatingSystem {
	given := rawVersion != ""
	if !given {
		if v := s.NewestVersion(); v != nil {
			rawVersion = v.Original()
		}
	}
	return OperatingSystem{
		family:     s.Family(),
		subtype:    s,
		rawName:    rawName,
		rawVersion: rawVersion,
		arch:       arch,

		versionGiven: given,
	}
}
