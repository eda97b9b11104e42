package services

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

type CommentService struct {
	client  api.Client
	session TokenSource
}

func NewCommentService(client api.Client, session TokenSource) *CommentService {
	return &CommentService{client: client, session: session}
}

// ListOnPost fetches one page of comments on the given post.
func (s *CommentService) ListOnPost(ctx context.Context, postID string, page, limit int) (models.Page[models.Comment], error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Page[models.Comment]{}, err
	}
	return s.client.ListComments(ctx, token, postID, page, limit)
}

// FetchOnPost returns a pagelist fetch capability bound to one post.
func (s *CommentService) FetchOnPost(postID string) pagelist.FetchFunc[models.Comment] {
	return func(ctx context.Context, page, limit int) (models.Page[models.Comment], error) {
		return s.ListOnPost(ctx, postID, page, limit)
	}
}

func (s *CommentService) Create(ctx context.Context, postID, text string) (models.Comment, error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Comment{}, err
	}
	return s.client.CreateComment(ctx, token, postID, text)
}

func (s *CommentService) Update(ctx context.Context, commentID, text string) (models.Comment, error) {
	token, err := requireToken(s.session)
	if err != nil {
		return models.Comment{}, err
	}
	return s.client.UpdateComment(ctx, token, commentID, text)
}

func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	token, err := requireToken(s.session)
	if err != nil {
		return err
	}
	return s.client.DeleteComment(ctx, token, commentID)
}
