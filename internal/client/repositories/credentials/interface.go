// Package credentials persists the single bearer token that survives
// process restarts. Presence or absence of the token is the only signal
// the session manager consults at startup.
package credentials

import "context"

// Repository is the durable credential slot.
//
// Token returns ("", nil) when no credential is stored. Save overwrites any
// previous value. Delete is idempotent.
type Repository interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
