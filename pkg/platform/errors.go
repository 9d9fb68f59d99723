package platform

import "errors"

var (
	ErrHostInfo      = errors.New("failed to read host information")
	ErrNoSources     = errors.New("no platform sources configured")
	ErrEmptyIdentity = errors.New("platform source returned an empty identity")
)
