package services

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

type PostService struct {
	client  api.Client
	session TokenSource
}

func NewPostService(client api.Client, session TokenSource) *PostService {
	return &PostService{client: client, session: session}
}

// List fetches one page of the global feed.
func (s *PostService) List(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Page[models.Post]{}, err
	}
	return s.client.ListPosts(ctx, token, page, limit)
}

// ListMine fetches one page of the acting user's own posts.
func (s *PostService) ListMine(ctx context.Context, page, limit int) (models.Page[models.Post], error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Page[models.Post]{}, err
	}
	return s.client.ListMyPosts(ctx, token, page, limit)
}

// FetchAll returns a pagelist fetch capability over the global feed.
func (s *PostService) FetchAll() pagelist.FetchFunc[models.Post] {
	return s.List
}

// FetchMine returns a pagelist fetch capability over the user's own posts.
func (s *PostService) FetchMine() pagelist.FetchFunc[models.Post] {
	return s.ListMine
}

func (s *PostService) Create(ctx context.Context, title, content string) (models.Post, error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Post{}, err
	}
	return s.client.CreatePost(ctx, token, title, content)
}

func (s *PostService) Delete(ctx context.Context, postID string) error {
	token, err := requireToken(s.session)
	if err != nil {
		return err
	}
	return s.client.DeletePost(ctx, token, postID)
}
