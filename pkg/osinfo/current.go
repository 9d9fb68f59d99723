package osinfo

import (
	"context"
	"errors"
)

// Identity holds the three raw strings a platform reports about itself. Empty
// fields are treated as absent.
type Identity struct {
	Name         string `json:"name" yaml:"name"`
	Version      string `json:"version,omitempty" yaml:"version,omitempty"`
	Architecture string `json:"arch,omitempty" yaml:"arch,omitempty"`
}

func (id Identity) IsZero() bool {
	return id == Identity{}
}

// Source reports the identity of the platform the process runs on.
type Source interface {
	Identify(ctx context.Context) (Identity, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Identity, error)

func (f SourceFunc) Identify(ctx context.Context) (Identity, error) {
	return f(ctx)
}

// Current reads the platform identity from src once and classifies it.
func Current(ctx context.Context, src Source) (OperatingSystem, error) {
	id, err := src.Identify(ctx)
	if err != nil {
		return OperatingSystem{}, errors.Join(ErrIdentify, err)
	}
	return ClassifyIdentity(id), nil
}
