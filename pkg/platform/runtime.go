package platform

import (
	"context"
	"runtime"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

var goosNames = map[string]string{
	"windows": "Windows",
	"darwin":  "Mac OS X",
	"linux":   "Linux",
	"android": "Android",
}

// Go names some architectures differently from the classifier's tags.
var goarchNames = map[string]string{
	"386": "x86",
}

// RuntimeSource identifies the platform from the Go runtime alone. It knows
// the family and architecture but never a release or version.
type RuntimeSource struct {
	goos   string
	goarch string
}

func NewRuntimeSource() RuntimeSource {
	return RuntimeSource{goos: runtime.GOOS, goarch: runtime.GOARCH}
}

func (s RuntimeSource) Identify(context.Context) (osinfo.Identity, error) {
	name, ok := goosNames[s.goos]
	if !ok {
		name = titleCase(s.goos)
	}
	arch, ok := goarchNames[s.goarch]
	if !ok {
		arch = s.goarch
	}
	if name == "" {
		return osinfo.Identity{}, ErrEmptyIdentity
	}
	return osinfo.Identity{Name: name, Architecture: arch}, nil
}
