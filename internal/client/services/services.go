// Package services contains the application services of the newsline
// client. Each service wraps the remote API for one entity and gates every
// call on the current session: when no session exists the call fails fast
// with common.ErrUnauthorized before any network traffic.
package services

import (
	"github.com/dkorolev84/newsline/internal/common"
)

// TokenSource exposes the current credential, if any. *session.Manager
// satisfies it; tests substitute a stub.
type TokenSource interface {
	IsAuthenticated() bool
	Token() string
}

// requireToken returns the current credential or ErrUnauthorized.
func requireToken(s TokenSource) (string, error) {
	if !s.IsAuthenticated() {
		return "", common.ErrUnauthorized
	}
	return s.Token(), nil
}
