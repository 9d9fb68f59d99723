package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/osdetect/pkg/osinfo"
)

// StaticSource always reports the same identity.
type StaticSource osinfo.Identity

func (s StaticSource) Identify(context.Context) (osinfo.Identity, error) {
	id := osinfo.Identity(s)
	if id.Name == "" {
		return osinfo.Identity{}, ErrEmptyIdentity
	}
	return id, nil
}

// NamedSource labels a source for logs and probe reports.
type NamedSource struct {
	Name   string
	Source osinfo.Source
}

func (n NamedSource) Identify(ctx context.Context) (osinfo.Identity, error) {
	id, err := n.Source.Identify(ctx)
	if err != nil {
		return osinfo.Identity{}, fmt.Errorf("%s: %w", n.Name, err)
	}
	return id, nil
}

// Named wraps src with a label.
func Named(name string, src osinfo.Source) NamedSource {
	return NamedSource{Name: name, Source: src}
}

// Chain returns a source that tries each source in turn and reports the first
// identity obtained. When every source fails the errors are joined.
func Chain(sources ...osinfo.Source) osinfo.Source {
	return osinfo.SourceFunc(func(ctx context.Context) (osinfo.Identity, error) {
		if len(sources) == 0 {
			return osinfo.Identity{}, ErrNoSources
		}
		var errs []error
		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return osinfo.Identity{}, err
			}
			id, err := src.Identify(ctx)
			if err == nil {
				return id, nil
			}
			errs = append(errs, err)
		}
		return osinfo.Identity{}, errors.Join(errs...)
	})
}

// DefaultSources lists the host source followed by the runtime fallback.
func DefaultSources() []NamedSource {
	return []NamedSource{
		Named("host", NewHostSource()),
		Named("runtime", NewRuntimeSource()),
	}
}

// DefaultSource chains DefaultSources.
func DefaultSource() osinfo.Source {
	named := DefaultSources()
	sources := make([]osinfo.Source, len(named))
	for i, n := range named {
		sources[i] = n
	}
	return Chain(sources...)
}
