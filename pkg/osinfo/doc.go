// Package osinfo classifies raw operating-system identification strings into
// a structured description: OS family, release subtype, support tier and a
// normalised CPU architecture.
//
// It recognises:
//   - Windows – 9x, NT, 2000, ME, XP, Vista, 7, 8.x, RT, 10 and Server 2008–2016
//   - macOS – Cheetah (10.0) through Mojave (10.14)
//   - Linux – Oracle Linux, Red Hat Enterprise Linux, SUSE and Ubuntu releases
//   - Android – Alpha through Nougat, including API levels
//
// Anything else is reported as FamilyUnknown, carrying only the raw inputs.
//
// # Architecture
//
// Each family owns an ordered rule table (windows.go, macos.go, linux.go,
// android.go). A rule pairs a case-insensitive pattern with a subtype, its
// support tier and the newest release version known for it. Tables are tried
// top to bottom and the first rule whose pattern matches anywhere in the input
// wins; the last rule of every table is a broad catch-all that yields the
// family's "unknown" subtype.
//
// Classify walks the families in a fixed order and stops at the first family
// whose table claims the name:
//
//	raw name ──▶ Windows ──▶ macOS ──▶ Linux ──▶ Android ──▶ FamilyUnknown
//	               │           │         │          │
//	               └───────────┴────┬────┴──────────┘
//	                                ▼
//	             OperatingSystem{family, subtype, architecture}
//
// The order is significant: "Windows 9" is a Windows release of unknown
// subtype, and Android names are only reached after the Linux table declines
// them.
//
// The architecture string is resolved independently by an exact-match,
// case-sensitive ladder (architecture.go).
//
// # Usage
//
//	info := osinfo.Classify("Ubuntu 16.04", "", "x86_64")
//	if sub, ok := info.Linux(); ok && sub == osinfo.LinuxUbuntuXenialXerus {
//	    // ...
//	}
//	fmt.Println(info)             // Ubuntu 16.04 (16.4) x86_64
//	fmt.Println(info.IsDesktop()) // true
//
// When no version is given, the subtype's newest known version is used as the
// raw version. This is an approximation, not a detected value.
//
// The running host is described by Current, which reads the three raw strings
// from a Source. Implementations backed by gopsutil and the Go runtime live in
// the platform package.
//
// # Error Handling
//
// Classification is total: every input, including the empty string, yields a
// result. Rule tables are compiled at package initialisation and a malformed
// entry panics there. Current wraps source failures in ErrIdentify; ParseFamily
// returns ErrUnknownFamily.
//
// # Concurrency
//
// All tables are immutable after initialisation. Every function in this
// package is safe for concurrent use.
package osinfo
