// Package cli implements the interactive newsline client: a REPL over the
// remote API with a durable session and paginated feed, comment and user
// views.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dkorolev84/newsline/internal/client/api"
	"github.com/dkorolev84/newsline/internal/client/config"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
	"github.com/dkorolev84/newsline/internal/client/repositories/credentials"
	"github.com/dkorolev84/newsline/internal/client/services"
	"github.com/dkorolev84/newsline/internal/client/session"
	"github.com/dkorolev84/newsline/internal/client/storage"
	"github.com/dkorolev84/newsline/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Manager

	auth     *services.AuthService
	posts    *services.PostService
	comments *services.CommentService
	likes    *services.LikeService
	users    *services.UserService

	// feed is the active post listing (global or "my posts" depending on
	// feedMine). commentList belongs to the currently opened post.
	feed        *pagelist.Controller[models.Post]
	feedMine    bool
	openPost    *models.Post
	commentList *pagelist.Controller[models.Comment]
	userList    *pagelist.Controller[models.User]

	// liked is the transient like toggle: it tracks posts the user has
	// liked or unliked in this process and is reconciled with server truth
	// only when the feed refreshes. Never persisted.
	liked map[string]bool

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("init state db: %w", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	creds := credentials.NewSQLiteRepository(db)
	sess := session.NewManager(apiClient, creds, log)

	a := &App{
		config:   c,
		log:      log,
		db:       db,
		session:  sess,
		auth:     services.NewAuthService(apiClient),
		posts:    services.NewPostService(apiClient, sess),
		comments: services.NewCommentService(apiClient, sess),
		likes:    services.NewLikeService(apiClient, sess),
		users:    services.NewUserService(apiClient, sess),
		liked:    make(map[string]bool),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	return a, nil
}

// Run restores the session and enters the REPL. It returns when the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	// Dependent views must see the session as loading, not anonymous,
	// until restoration finishes; the REPL simply does not prompt before
	// Restore returns.
	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "err", err)
	}

	if user, ok := a.session.CurrentUser(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	} else {
		fmt.Fprintln(a.out, "Welcome to newsline (type 'help' for commands)")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user, ok := a.session.CurrentUser(); ok {
		return fmt.Sprintf("(%s)", user.Name)
	}
	return ""
}
