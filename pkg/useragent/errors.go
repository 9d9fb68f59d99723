package useragent

import "errors"

var (
	ErrEmptyUserAgent = errors.New("empty user agent string")
	ErrUnsupportedOS  = errors.New("user agent names no known operating system")
)
