package services

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

type UserService struct {
	client  api.Client
	session TokenSource
}

func NewUserService(client api.Client, session TokenSource) *UserService {
	return &UserService{client: client, session: session}
}

// List fetches one page of the user directory.
func (s *UserService) List(ctx context.Context, page, limit int) (models.Page[models.User], error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Page[models.User]{}, err
	}
	return s.client.ListUsers(ctx, token, page, limit)
}

// Fetch returns a pagelist fetch capability over the user directory.
func (s *UserService) Fetch() pagelist.FetchFunc[models.User] {
	return s.List
}
