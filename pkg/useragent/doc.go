// Package useragent extracts the operating system identity from an HTTP
// User-Agent header.
//
// Parse reads the platform tokens of a browser User-Agent and returns the raw
// name, version and architecture in the form osinfo.Classify expects:
//
//	id, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//		// ErrEmptyUserAgent or ErrUnsupportedOS
//	}
//	info := osinfo.ClassifyIdentity(id)
//
// Windows NT kernel versions are translated to release names ("Windows NT
// 6.1" becomes "Windows 7"), macOS versions written with underscores are
// normalised to dots, and architecture tokens such as "Win64; x64" or
// "aarch64" are mapped to the tags of the osinfo architecture ladder.
package useragent
