package adapter

import "errors"

// Sentinel errors returned by the directory adapter. HTTP failures are mapped
// onto them by mapHTTPError so callers can match with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrDiscoveryFailed = errors.New("server discovery failed")
	ErrEmptyQuery      = errors.New("empty search query")
)
