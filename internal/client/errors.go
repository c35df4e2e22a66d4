package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an adapter failure.
type ErrorKind int

const (
	// ErrNetwork means the base URL was unreachable (refused, DNS, timeout).
	ErrNetwork ErrorKind = iota
	// ErrAPI means the service answered non-2xx with a parsed detail body.
	ErrAPI
	// ErrMalformed means a 2xx response whose body failed to decode.
	ErrMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNetwork:
		return "network"
	case ErrAPI:
		return "api"
	case ErrMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the single failure shape every contract call normalizes into.
type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP status, ErrAPI only
	Detail  string // service-provided detail, ErrAPI only
	BaseURL string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNetwork:
		return fmt.Sprintf("cannot reach %s: %v", e.BaseURL, e.Err)
	case ErrAPI:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request failed with status %d", e.Status)
	case ErrMalformed:
		return fmt.Sprintf("unexpected response from %s: %v", e.BaseURL, e.Err)
	default:
		return "unknown client error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// AsError unwraps err into a client *Error when it is one.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404-class API error, the normal
// outcome of looking up a code that does not exist.
func IsNotFound(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrAPI && ce.Status == 404
}

// IsNetwork reports whether err means the service was unreachable.
func IsNetwork(err error) bool {
	ce, ok := AsError(err)
	return ok && ce.Kind == ErrNetwork
}
