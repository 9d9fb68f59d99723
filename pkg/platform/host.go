package platform

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"howett.net/plist"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// SystemVersionPlist is where macOS records its product name and version.
const SystemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

// HostSource identifies the host through gopsutil.
type HostSource struct {
	info     func(ctx context.Context) (*host.InfoStat, error)
	readFile func(name string) ([]byte, error)
}

// HostOption configures a HostSource.
type HostOption func(*HostSource)

// WithHostInfo replaces the gopsutil lookup.
func WithHostInfo(fn func(ctx context.Context) (*host.InfoStat, error)) HostOption {
	return func(s *HostSource) {
		if fn != nil {
			s.info = fn
		}
	}
}

// WithFileReader replaces the reader used for SystemVersion.plist.
func WithFileReader(fn func(name string) ([]byte, error)) HostOption {
	return func(s *HostSource) {
		if fn != nil {
			s.readFile = fn
		}
	}
}

func NewHostSource(opts ...HostOption) *HostSource {
	s := &HostSource{
		info:     host.InfoWithContext,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HostSource) Identify(ctx context.Context) (osinfo.Identity, error) {
	info, err := s.info(ctx)
	if err != nil {
		return osinfo.Identity{}, errors.Join(ErrHostInfo, err)
	}
	if info == nil {
		return osinfo.Identity{}, ErrHostInfo
	}

	id := osinfo.Identity{Architecture: info.KernelArch}

	switch strings.ToLower(info.OS) {
	case "windows":
		id.Name = strings.TrimSpace(strings.TrimPrefix(info.Platform, "Microsoft "))
		id.Version = firstField(info.PlatformVersion)
	case "darwin":
		id.Name, id.Version = s.macProduct(info)
	case "android":
		id.Name = joinNonEmpty("Android", info.PlatformVersion)
		id.Version = info.KernelVersion
	case "linux":
		id.Name = linuxName(info.Platform, info.PlatformVersion)
		id.Version = info.KernelVersion
	default:
		id.Name = titleCase(info.OS)
		id.Version = info.PlatformVersion
	}

	if id.Name == "" {
		return osinfo.Identity{}, ErrEmptyIdentity
	}
	return id, nil
}

type systemVersion struct {
	ProductName    string `plist:"ProductName"`
	ProductVersion string `plist:"ProductVersion"`
}

// macProduct prefers SystemVersion.plist and falls back to what gopsutil
// reports when the file is missing or unreadable.
func (s *HostSource) macProduct(info *host.InfoStat) (string, string) {
	name, version := "Mac OS X", info.PlatformVersion

	raw, err := s.readFile(SystemVersionPlist)
	if err != nil || len(raw) == 0 {
		return name, version
	}

	var sv systemVersion
	if _, err := plist.Unmarshal(raw, &sv); err != nil {
		return name, version
	}
	if n := strings.TrimSpace(sv.ProductName); n != "" {
		name = n
	}
	if v := strings.TrimSpace(sv.ProductVersion); v != "" {
		version = v
	}
	return name, version
}

// linuxName renders a distribution as "<Distro> Linux <version>", the form
// the Linux rule table recognises for Oracle, Red Hat, SUSE and Ubuntu.
func linuxName(platform, version string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return "Linux"
	}
	name := titleCase(platform)
	if !strings.Contains(strings.ToLower(name), "linux") {
		name += " Linux"
	}
	return joinNonEmpty(name, version)
}

// titleCase builds a fresh Caser per call; a Caser is not safe for
// concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
