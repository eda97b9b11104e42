package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
	"github.com/dkorolev84/newsline/internal/common"
)

// Posts switches the feed to the global post listing and loads its first page.
func (a *App) Posts(ctx context.Context) error {
	a.feed = pagelist.New(a.posts.FetchAll(), a.config.PageLimit)
	a.feedMine = false
	return a.reloadFeed(ctx)
}

// MyPosts switches the feed to the acting user's own posts.
func (a *App) MyPosts(ctx context.Context) error {
	a.feed = pagelist.New(a.posts.FetchMine(), a.config.PageLimit)
	a.feedMine = true
	return a.reloadFeed(ctx)
}

func (a *App) reloadFeed(ctx context.Context) error {
	if err := a.feed.Refresh(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	if a.feed.Len() == 0 {
		if a.feedMine {
			a.printInfo("You haven't created any posts yet.")
		} else {
			a.printInfo("There are no posts to display.")
		}
		return nil
	}
	a.renderPosts(a.feed.Items())
	return nil
}

// More loads the next feed page and renders the grown listing.
func (a *App) More(ctx context.Context) error {
	if a.feed == nil {
		a.printInfo("Nothing to load, run 'posts' or 'myposts' first")
		return nil
	}
	if !a.feed.HasMore() {
		a.printInfo("No more posts")
		return nil
	}
	if err := a.feed.LoadMore(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderPosts(a.feed.Items())
	return nil
}

// Refresh re-fetches the feed from page 1.
func (a *App) Refresh(ctx context.Context) error {
	if a.feed == nil {
		a.printInfo("Nothing to refresh, run 'posts' or 'myposts' first")
		return nil
	}
	return a.reloadFeed(ctx)
}

// Retry re-issues the last failed feed request with identical arguments.
func (a *App) Retry(ctx context.Context) error {
	if a.feed == nil {
		a.printInfo("Nothing to retry")
		return nil
	}
	if err := a.feed.Retry(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderPosts(a.feed.Items())
	return nil
}

// NewPost prompts for a title and body, creates the post and refreshes the
// owning feed controller.
func (a *App) NewPost(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, title, content)
	if err != nil {
		a.printError("Could not create post: %s", err.Error())
		return nil
	}
	a.printSuccess("Posted %q", post.Title)

	if a.feed != nil {
		return a.reloadFeed(ctx)
	}
	return nil
}

// DeletePost removes the referenced post and refreshes the feed.
func (a *App) DeletePost(ctx context.Context, ref string) error {
	post, err := a.postAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	if err := a.posts.Delete(ctx, post.ID); err != nil {
		a.printError("Could not delete post: %s", err.Error())
		return nil
	}
	a.printSuccess("Deleted %q", post.Title)
	return a.reloadFeed(ctx)
}

// postAt resolves a 1-based feed row number to its post.
func (a *App) postAt(ref string) (models.Post, error) {
	if a.feed == nil {
		return models.Post{}, fmt.Errorf("no posts listed, run 'posts' first")
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return models.Post{}, fmt.Errorf("not a post number: %s", ref)
	}
	items := a.feed.Items()
	if n < 1 || n > len(items) {
		return models.Post{}, fmt.Errorf("post %d is not on the list (1-%d)", n, len(items))
	}
	return items[n-1], nil
}

// reportListError renders a failed list fetch without disturbing the rows
// already on screen. Previously loaded data stays usable next to the error.
func (a *App) reportListError(err error) {
	switch {
	case errors.Is(err, common.ErrBusy):
		a.printInfo("Still loading, hold on…")
	case errors.Is(err, common.ErrUnauthorized):
		a.printError("Not logged in, run 'login' first")
	default:
		a.printError("Failed to load: %s (type 'retry' to try again)", err.Error())
	}
}
