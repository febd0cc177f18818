package netclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Category classifies a request failure for the caller. The taxonomy drives
// behavior: timeouts and unreachable hosts retry, auth failures purge the
// session, everything else surfaces once without retry.
type Category int

// The failure categories.
const (
	CategoryTimeout Category = iota
	CategoryUnreachable
	CategoryAuth
	CategoryNotFound
	CategoryClient
	CategoryServer
	CategoryDecode
)

func (c Category) String() string {
	switch c {
	case CategoryTimeout:
		return "timeout"
	case CategoryUnreachable:
		return "unreachable"
	case CategoryAuth:
		return "auth"
	case CategoryNotFound:
		return "not_found"
	case CategoryClient:
		return "client"
	case CategoryServer:
		return "server"
	case CategoryDecode:
		return "decode"
	}
	return "unknown"
}

// Error is a categorized request failure.
type Error struct {
	Category Category
	Op       string
	Status   int
	Cause    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s failure (HTTP %d)", e.Op, e.Category, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Category, e.Cause)
	}
	return fmt.Sprintf("%s: %s failure", e.Op, e.Category)
}

func (e *Error) Unwrap() error { return e.Cause }

// CategoryOf extracts the failure category, or ok=false for foreign errors.
func CategoryOf(err error) (Category, bool) {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Category, true
	}
	return 0, false
}

// retryable reports whether a transport error warrants another attempt:
// only timeouts and network-unreachable conditions qualify.
func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// transportCategory maps a transport error to its category.
func transportCategory(err error) Category {
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryTimeout
	}
	return CategoryUnreachable
}

// statusCategory maps a non-2xx HTTP status to its category.
func statusCategory(status int) Category {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CategoryAuth
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status >= 500:
		return CategoryServer
	default:
		return CategoryClient
	}
}
