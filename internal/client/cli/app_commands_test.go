package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkorolev84/newsline/internal/client/config"
	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/services"
	"github.com/dkorolev84/newsline/internal/client/session"
	"github.com/dkorolev84/newsline/internal/logging"
)

type memCreds struct{ token string }

func (m *memCreds) Token(ctx context.Context) (string, error)    { return m.token, nil }
func (m *memCreds) Save(ctx context.Context, token string) error { m.token = token; return nil }
func (m *memCreds) Delete(ctx context.Context) error             { m.token = ""; return nil }

// feedAPI is a fake api.Client serving a two-page feed and recording calls.
type feedAPI struct {
	pages      map[int]models.Page[models.Post]
	listErr    error
	listCalls  []int
	created    []string
	deleted    []string
	likedIDs   []string
	unlikedIDs []string
}

func newFeedAPI() *feedAPI {
	ann := &models.User{ID: "u1", Name: "Ann"}
	return &feedAPI{pages: map[int]models.Page[models.Post]{
		1: {
			Data: []models.Post{
				{ID: "p1", Title: "first", Author: ann, LikesCount: 1},
				{ID: "p2", Title: "second", Author: ann},
			},
			Meta: models.PageMeta{CurrentPage: 1, TotalPages: 2, TotalItems: 3, ItemsPerPage: 2},
		},
		2: {
			Data: []models.Post{{ID: "p3", Title: "third", Author: ann}},
			Meta: models.PageMeta{CurrentPage: 2, TotalPages: 2, TotalItems: 3, ItemsPerPage: 2},
		},
	}}
}

func (f *feedAPI) SignIn(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	return models.AuthResponse{Token: "t-new", User: models.User{ID: "u-new", Name: name}}, nil
}

func (f *feedAPI) LogIn(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return models.AuthResponse{Token: "t1", User: models.User{ID: "u1", Name: "Ann", Email: email}}, nil
}

func (f *feedAPI) GetMe(ctx context.Context, token string) (models.User, error) {
	return models.User{ID: "u1", Name: "Ann"}, nil
}

func (f *feedAPI) ListUsers(ctx context.Context, token string, page, limit int) (models.Page[models.User], error) {
	return models.Page[models.User]{
		Data: []models.User{{ID: "u1", Name: "Ann", Email: "a@b.com"}},
		Meta: models.PageMeta{CurrentPage: 1, TotalPages: 1},
	}, nil
}

func (f *feedAPI) ListPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error) {
	f.listCalls = append(f.listCalls, page)
	if f.listErr != nil {
		return models.Page[models.Post]{}, f.listErr
	}
	return f.pages[page], nil
}

func (f *feedAPI) ListMyPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error) {
	return f.ListPosts(ctx, token, page, limit)
}

func (f *feedAPI) CreatePost(ctx context.Context, token, title, content string) (models.Post, error) {
	f.created = append(f.created, title)
	return models.Post{ID: "p-new", Title: title, Content: content}, nil
}

func (f *feedAPI) DeletePost(ctx context.Context, token, postID string) error {
	f.deleted = append(f.deleted, postID)
	return nil
}

func (f *feedAPI) ListComments(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Comment], error) {
	return models.Page[models.Comment]{
		Data: []models.Comment{{ID: "c1", Text: "nice", PostID: postID}},
		Meta: models.PageMeta{CurrentPage: 1, TotalPages: 1, TotalItems: 1},
	}, nil
}

func (f *feedAPI) CreateComment(ctx context.Context, token, postID, text string) (models.Comment, error) {
	return models.Comment{ID: "c-new", Text: text, PostID: postID}, nil
}

func (f *feedAPI) UpdateComment(ctx context.Context, token, commentID, text string) (models.Comment, error) {
	return models.Comment{ID: commentID, Text: text}, nil
}

func (f *feedAPI) DeleteComment(ctx context.Context, token, commentID string) error { return nil }

func (f *feedAPI) ListLikes(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Like], error) {
	return models.Page[models.Like]{Meta: models.PageMeta{CurrentPage: 1, TotalPages: 1, TotalItems: 2}}, nil
}

func (f *feedAPI) LikePost(ctx context.Context, token, postID string) error {
	f.likedIDs = append(f.likedIDs, postID)
	return nil
}

func (f *feedAPI) UnlikePost(ctx context.Context, token, postID string) error {
	f.unlikedIDs = append(f.unlikedIDs, postID)
	return nil
}

// newTestApp wires an App over the fake client with a logged-in session.
// stdin is the scripted interactive input for prompts.
func newTestApp(t *testing.T, client *feedAPI, stdin string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	sess := session.NewManager(client, &memCreds{}, log)
	require.NoError(t, sess.Login(context.Background(), "t1", models.User{ID: "u1", Name: "Ann"}))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	a := &App{
		config:   cfg,
		log:      log,
		session:  sess,
		auth:     services.NewAuthService(client),
		posts:    services.NewPostService(client, sess),
		comments: services.NewCommentService(client, sess),
		likes:    services.NewLikeService(client, sess),
		users:    services.NewUserService(client, sess),
		liked:    make(map[string]bool),
		reader:   bufio.NewReader(strings.NewReader(stdin)),
		out:      &out,
	}
	return a, &out
}

func TestPosts_RendersFeedWithFooter(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Posts(context.Background()))

	s := out.String()
	assert.Contains(t, s, "first")
	assert.Contains(t, s, "second")
	assert.Contains(t, s, "Ann")
	assert.Contains(t, s, "type 'more' to load more")
	assert.Equal(t, []int{1}, client.listCalls)
}

func TestMore_GrowsFeed(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.More(ctx))

	assert.Contains(t, out.String(), "third")
	assert.Equal(t, []int{1, 2}, client.listCalls)
	assert.Equal(t, 3, a.feed.Len())

	// Exhausted now.
	require.NoError(t, a.More(ctx))
	assert.Contains(t, out.String(), "No more posts")
	assert.Equal(t, []int{1, 2}, client.listCalls, "no fetch once exhausted")
}

func TestMore_WithoutFeedIsGuided(t *testing.T) {
	a, out := newTestApp(t, newFeedAPI(), "")

	require.NoError(t, a.More(context.Background()))
	assert.Contains(t, out.String(), "run 'posts' or 'myposts' first")
}

func TestNewPost_CreatesAndRefreshesFeed(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "my title\nbody line\n\n")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.More(ctx))
	require.Equal(t, 2, a.feed.CurrentPage())

	require.NoError(t, a.NewPost(ctx))

	assert.Equal(t, []string{"my title"}, client.created)
	assert.Contains(t, out.String(), "Posted")
	// Mutation triggers a refresh of the owning controller, back to page 1.
	assert.Equal(t, 1, a.feed.CurrentPage())
	assert.Equal(t, []int{1, 2, 1}, client.listCalls)
}

func TestDeletePost_ByRowNumber(t *testing.T) {
	client := newFeedAPI()
	a, _ := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.DeletePost(ctx, "2"))

	assert.Equal(t, []string{"p2"}, client.deleted)
}

func TestDeletePost_BadReference(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.DeletePost(ctx, "99"))
	assert.Contains(t, out.String(), "not on the list")
	assert.Empty(t, client.deleted)

	require.NoError(t, a.DeletePost(ctx, "abc"))
	assert.Contains(t, out.String(), "not a post number")
}

func TestLike_TogglesAndRefreshes(t *testing.T) {
	client := newFeedAPI()
	a, _ := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.Like(ctx, "1"))

	assert.Equal(t, []string{"p1"}, client.likedIDs)
	assert.True(t, a.liked["p1"])
	assert.Equal(t, []int{1, 1}, client.listCalls, "like refreshes the feed")

	require.NoError(t, a.Unlike(ctx, "1"))
	assert.Equal(t, []string{"p1"}, client.unlikedIDs)
	assert.False(t, a.liked["p1"])
}

func TestPosts_ErrorKeepsPriorItemsVisible(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.Equal(t, 2, a.feed.Len())

	client.listErr = errors.New("network down")
	require.NoError(t, a.More(ctx))

	assert.Contains(t, out.String(), "network down")
	assert.Contains(t, out.String(), "retry")
	assert.Equal(t, 2, a.feed.Len(), "previously loaded rows survive the failure")

	// retry path
	client.listErr = nil
	require.NoError(t, a.Retry(ctx))
	assert.Equal(t, 3, a.feed.Len())
}

func TestOpen_ShowsPostCommentsAndLikes(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.Open(ctx, "1"))

	s := out.String()
	assert.Contains(t, s, "first")
	assert.Contains(t, s, "2 likes")
	assert.Contains(t, s, "nice")
}

func TestComment_OnOpenPostRefreshesCommentList(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "great post\n\n")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.Open(ctx, "1"))
	require.NoError(t, a.Comment(ctx, "1"))

	assert.Contains(t, out.String(), "Comment added")
	assert.Equal(t, 1, a.commentList.CurrentPage())
}

func TestLogout_DropsViewState(t *testing.T) {
	client := newFeedAPI()
	a, _ := newTestApp(t, client, "")
	ctx := context.Background()

	require.NoError(t, a.Posts(ctx))
	require.NoError(t, a.Logout(ctx))

	assert.False(t, a.isLoggedIn())
	assert.Nil(t, a.feed)
	assert.Empty(t, a.liked)

	// Guard check: anonymous fetches are refused before any network call.
	calls := len(client.listCalls)
	require.NoError(t, a.Posts(ctx))
	assert.Equal(t, calls, len(client.listCalls))
}

func TestUsers_RendersDirectory(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Users(context.Background()))
	assert.Contains(t, out.String(), "a@b.com")
}

func TestLogin_InstallsSession(t *testing.T) {
	client := newFeedAPI()
	a, out := newTestApp(t, client, "a@b.com\n")
	require.NoError(t, a.session.Logout(context.Background()))

	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("x"), nil }
	t.Cleanup(func() { readPassword = orig })

	require.NoError(t, a.Login(context.Background()))

	assert.True(t, a.isLoggedIn())
	user, _ := a.session.CurrentUser()
	assert.Equal(t, "Ann", user.Name)
	assert.Contains(t, out.String(), "Logged in as Ann")
}
