// Package session owns the answer to "who is the acting user". The Manager
// is the single writer of the durable credential slot; everything else reads
// session state through its accessors.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/repositories/credentials"
	"github.com/dkorolev84/newsline/internal/logging"
)

// Verifier resolves a stored credential to its owning user. The api.Client
// satisfies it; tests substitute a fake.
type Verifier interface {
	GetMe(ctx context.Context, token string) (models.User, error)
}

// Manager holds the current session. It starts empty; Restore populates it
// from the durable credential slot, Login and Logout mutate it synchronously.
//
// IsAuthenticated is always derived from the user/token pair and never
// stored, so the two can not diverge.
type Manager struct {
	verifier Verifier
	creds    credentials.Repository
	log      logging.Logger

	mu        sync.RWMutex
	user      *models.User
	token     string
	restoring bool
}

func NewManager(verifier Verifier, creds credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		verifier: verifier,
		creds:    creds,
		log:      log.With("component", "session"),
	}
}

// Restore attempts to resume a prior session from the stored credential.
//
// No stored credential leaves the manager anonymous. A stored credential is
// validated against the server; on success the session becomes
// authenticated, on any validation failure the stale credential is deleted
// before the manager reports anonymous, so no later request can be issued
// with invalid authorization. Validation failures are not surfaced to the
// user (debug log only); only a storage fault is returned as an error.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	m.restoring = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.restoring = false
		m.mu.Unlock()
	}()

	token, err := m.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored credential: %w", err)
	}
	if token == "" {
		return nil
	}

	user, err := m.verifier.GetMe(ctx, token)
	if err != nil {
		m.log.Debug(ctx, "stored credential rejected, purging", "err", err)
		if delErr := m.creds.Delete(ctx); delErr != nil {
			return fmt.Errorf("purge stale credential: %w", delErr)
		}
		return nil
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
	return nil
}

// Login installs a session obtained from a successful sign-in or log-in
// exchange. No network call is made; the caller already holds both values.
// Calling while already authenticated overwrites the previous session.
func (m *Manager) Login(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("login requires a non-empty credential")
	}

	if err := m.creds.Save(ctx, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.token = token
	m.mu.Unlock()
	return nil
}

// Logout clears the session and the durable credential. Calling it while
// already anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.creds.Delete(ctx); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether both a user and a token are present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.token != ""
}

// IsRestoring reports whether a Restore call is in flight. Consumers must
// treat the session as loading, not anonymous, while this is true.
func (m *Manager) IsRestoring() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

// Token returns the current credential, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns a copy of the acting user and whether one is set.
func (m *Manager) CurrentUser() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}
