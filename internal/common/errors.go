// Package common defines shared constants and sentinel errors used across
// the newsline client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")

	// Auth errors. ErrUnauthorized covers both a missing local session and
	// a credential the server rejected.
	ErrUnauthorized = errors.New("not authenticated")

	// Controller-level errors.
	ErrBusy = errors.New("request already in flight")
)
