package services

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/models"
)

// AuthService performs the two unauthenticated exchanges. The resulting
// token/user pair is handed to the session manager by the caller; this
// service never touches session state itself.
type AuthService struct {
	client api.Client
}

func NewAuthService(client api.Client) *AuthService {
	return &AuthService{client: client}
}

// SignIn creates a new account and returns its first session credentials.
func (s *AuthService) SignIn(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	return s.client.SignIn(ctx, name, email, password)
}

// LogIn exchanges email/password for a token and the owning user.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return s.client.LogIn(ctx, email, password)
}
