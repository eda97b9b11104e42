package services

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

type LikeService struct {
	client  api.Client
	session TokenSource
}

func NewLikeService(client api.Client, session TokenSource) *LikeService {
	return &LikeService{client: client, session: session}
}

// ListOnPost fetches one page of likes on the given post.
func (s *LikeService) ListOnPost(ctx context.Context, postID string, page, limit int) (models.Page[models.Like], error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Page[models.Like]{}, err
	}
	return s.client.ListLikes(ctx, token, postID, page, limit)
}

// FetchOnPost returns a pagelist fetch capability bound to one post.
func (s *LikeService) FetchOnPost(postID string) pagelist.FetchFunc[models.Like] {
	return func(ctx context.Context, page, limit int) (models.Page[models.Like], error) {
		return s.ListOnPost(ctx, postID, page, limit)
	}
}

// Like marks the post as liked by the acting user. The server treats
// repeated likes as a toggle-style idempotent operation; the client does
// not enforce that.
func (s *LikeService) Like(ctx context.Context, postID string) error {
	token, err := requireToken(s.session)
	if err != nil {
		return err
	}
	return s.client.LikePost(ctx, token, postID)
}

func (s *LikeService) Unlike(ctx context.Context, postID string) error {
	token, err := requireToken(s.session)
	if err != nil {
		return err
	}
	return s.client.UnlikePost(ctx, token, postID)
}
