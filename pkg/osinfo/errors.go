package osinfo

import "errors"

var (
	ErrIdentify      = errors.New("failed to identify platform")
	ErrUnknownFamily = errors.New("unknown operating system family")
	ErrUnknownTag    = errors.New("unknown tag")
)
