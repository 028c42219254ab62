package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for directory API responses
var (
	// ErrDirectoryNotFound indicates a 404-class response. Fatal on a
	// group lookup, non-fatal on optional lookups such as the
	// supplementary account detail fetch.
	ErrDirectoryNotFound = goerr.New("directory resource not found")

	// ErrDirectoryForbidden indicates a 403-class response
	ErrDirectoryForbidden = goerr.New("directory access forbidden")

	// ErrTooManyRetries indicates the throttling retry cap was exceeded
	// for a single page fetch
	ErrTooManyRetries = goerr.New("too many retry attempts")

	// ErrNoCredential indicates no usable directory credential is available
	ErrNoCredential = goerr.New("no directory credential available")
)

// ThrottledError signals a rate-limit rejection (429) from the directory
// API. RetryAfter carries the server-provided hint, zero when absent.
type ThrottledError struct {
	RetryAfter time.Duration
}

// Error implements the error interface
func (e *ThrottledError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("directory request throttled (retry after %s)", e.RetryAfter)
	}
	return "directory request throttled"
}
