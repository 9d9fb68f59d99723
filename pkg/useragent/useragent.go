package useragent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

var (
	windowsNTPattern     = regexp.MustCompile(`Windows NT (\d+\.\d+)`)
	windowsPhonePattern  = regexp.MustCompile(`Windows Phone(?: OS)? (\d+(?:\.\d+)*)`)
	windowsLegacyPattern = regexp.MustCompile(`\bWin(?:dows )?(95|98|ME|2000|XP)\b`)
	iOSPattern           = regexp.MustCompile(`\b(?:iPhone|iPad|iPod)\b.*? OS (\d+(?:_\d+)*)`)
	macOSPattern         = regexp.MustCompile(`Mac OS X(?: (\d+(?:[._]\d+)*))?`)
	androidPattern       = regexp.MustCompile(`Android(?: (\d+(?:\.\d+)*))?`)
	chromeOSPattern      = regexp.MustCompile(`\bCrOS \S+ (\d+(?:\.\d+)*)`)
	archPattern          = regexp.MustCompile(`\b(x86_64|x64|Win64|WOW64|amd64|aarch64|arm64|ARM64|armv7l?|armv6l?|i386|i686|PPC|ppc)\b`)
)

// windowsReleases maps NT kernel versions to the release names used by the
// Windows rule table.
var windowsReleases = map[string]string{
	"4.0":  "Windows NT 4.0",
	"5.0":  "Windows 2000",
	"5.1":  "Windows XP",
	"5.2":  "Windows XP",
	"6.0":  "Windows Vista",
	"6.1":  "Windows 7",
	"6.2":  "Windows 8",
	"6.3":  "Windows 8.1",
	"10.0": "Windows 10",
}

var archTags = map[string]string{
	"x86_64":  "x86_64",
	"x64":     "x86_64",
	"Win64":   "x86_64",
	"WOW64":   "x86_64",
	"amd64":   "amd64",
	"aarch64": "arm64",
	"arm64":   "arm64",
	"ARM64":   "arm64",
	"armv7":   "arm7",
	"armv7l":  "arm7",
	"armv6":   "arm6",
	"armv6l":  "arm6",
	"i386":    "i386",
	"i686":    "i686",
	"PPC":     "ppc",
	"ppc":     "ppc",
}

// linuxDistros are recognised in order; the first one present names the
// system.
var linuxDistros = []string{"Ubuntu", "Debian", "Fedora", "CentOS", "Red Hat", "SUSE", "Mint"}

// Parse returns the operating system identity carried by ua. It returns
// ErrEmptyUserAgent for a blank header and ErrUnsupportedOS when no platform
// token is recognised.
func Parse(ua string) (osinfo.Identity, error) {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return osinfo.Identity{}, ErrEmptyUserAgent
	}

	// iOS devices also claim "like Mac OS X" and Android devices "Linux", so
	// the more specific platforms are checked first.
	switch {
	case windowsPhonePattern.MatchString(ua):
		m := windowsPhonePattern.FindStringSubmatch(ua)
		return osinfo.Identity{Name: "Windows Phone " + m[1], Version: m[1], Architecture: arch(ua, "")}, nil

	case windowsNTPattern.MatchString(ua):
		nt := windowsNTPattern.FindStringSubmatch(ua)[1]
		name, ok := windowsReleases[nt]
		if !ok {
			name = "Windows NT " + nt
		}
		return osinfo.Identity{Name: name, Version: nt, Architecture: arch(ua, "x86")}, nil

	case windowsLegacyPattern.MatchString(ua):
		release := windowsLegacyPattern.FindStringSubmatch(ua)[1]
		return osinfo.Identity{Name: "Windows " + release, Architecture: arch(ua, "x86")}, nil

	case iOSPattern.MatchString(ua):
		v := dotted(iOSPattern.FindStringSubmatch(ua)[1])
		return osinfo.Identity{Name: "iOS " + v, Version: v, Architecture: arch(ua, "")}, nil

	case macOSPattern.MatchString(ua):
		v := dotted(macOSPattern.FindStringSubmatch(ua)[1])
		fallback := ""
		if strings.Contains(ua, "Intel Mac") {
			fallback = "x86_64"
		}
		return osinfo.Identity{Name: "Mac OS X", Version: v, Architecture: arch(ua, fallback)}, nil

	case androidPattern.MatchString(ua):
		v := androidPattern.FindStringSubmatch(ua)[1]
		name := "Android"
		if v != "" {
			name = fmt.Sprintf("Android %s", v)
		}
		return osinfo.Identity{Name: name, Version: v, Architecture: arch(ua, "")}, nil

	case chromeOSPattern.MatchString(ua):
		v := chromeOSPattern.FindStringSubmatch(ua)[1]
		return osinfo.Identity{Name: "Chrome OS", Version: v, Architecture: arch(ua, "")}, nil

	case strings.Contains(ua, "Linux") || strings.Contains(ua, "X11"):
		name := "Linux"
		for _, distro := range linuxDistros {
			if strings.Contains(ua, distro) {
				name = distro + " Linux"
				break
			}
		}
		return osinfo.Identity{Name: name, Architecture: arch(ua, "")}, nil
	}

	return osinfo.Identity{}, fmt.Errorf("%w: %q", ErrUnsupportedOS, ua)
}

// arch returns the ladder tag of the first architecture token in ua, or
// fallback when there is none.
func arch(ua, fallback string) string {
	if m := archPattern.FindStringSubmatch(ua); m != nil {
		return archTags[m[1]]
	}
	return fallback
}

func dotted(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
