// Package api talks to the remote newsline REST service. The Client
// interface is the seam between application services and the transport;
// tests substitute fakes, production wires the HTTP implementation.
package api

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/models"
)

// Client is the full surface of the remote API as consumed by this client.
//
// Every method except SignIn and LogIn requires the bearer token obtained
// from one of those two calls. The token is treated as an opaque capability
// and is never inspected. All methods honor context cancellation.
type Client interface {
	// Auth.
	SignIn(ctx context.Context, name, email, password string) (models.AuthResponse, error)
	LogIn(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Users.
	GetMe(ctx context.Context, token string) (models.User, error)
	ListUsers(ctx context.Context, token string, page, limit int) (models.Page[models.User], error)

	// Posts.
	ListPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error)
	ListMyPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error)
	CreatePost(ctx context.Context, token, title, content string) (models.Post, error)
	DeletePost(ctx context.Context, token, postID string) error

	// Comments.
	ListComments(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Comment], error)
	CreateComment(ctx context.Context, token, postID, text string) (models.Comment, error)
	UpdateComment(ctx context.Context, token, commentID, text string) (models.Comment, error)
	DeleteComment(ctx context.Context, token, commentID string) error

	// Likes.
	ListLikes(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Like], error)
	LikePost(ctx context.Context, token, postID string) error
	UnlikePost(ctx context.Context, token, postID string) error
}
