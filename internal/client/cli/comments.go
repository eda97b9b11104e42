package cli

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

// Open shows one post in full: body, like count, and the first page of
// comments. Comments and likes are independent requests, so they are
// fetched concurrently.
func (a *App) Open(ctx context.Context, ref string) error {
	post, err := a.postAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	a.openPost = &post
	a.commentList = pagelist.New(a.comments.FetchOnPost(post.ID), a.config.PageLimit)

	var likes models.Page[models.Like]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.commentList.Refresh(gctx)
	})
	g.Go(func() error {
		var err error
		likes, err = a.likes.ListOnPost(gctx, post.ID, 1, a.config.PageLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		a.reportListError(err)
		return nil
	}

	author := post.AuthorID
	if post.Author != nil {
		author = post.Author.Name
	}
	fmt.Fprintf(a.out, "\n%s\nby %s, %s, %d likes\n\n%s\n\n",
		post.Title, author, formatAge(post.CreatedAt), likes.Meta.TotalItems, post.Content)

	if a.commentList.Len() == 0 {
		a.printInfo("No comments yet.")
		return nil
	}
	a.renderComments(a.commentList.Items())
	a.renderPageFooter(a.commentList.CurrentPage(), a.commentList.TotalPages(), a.commentList.HasMore())
	return nil
}

// MoreComments loads the next comment page of the opened post.
func (a *App) MoreComments(ctx context.Context) error {
	if a.commentList == nil {
		a.printInfo("No post opened, run 'open <n>' first")
		return nil
	}
	if !a.commentList.HasMore() {
		a.printInfo("No more comments")
		return nil
	}
	if err := a.commentList.LoadMore(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderComments(a.commentList.Items())
	a.renderPageFooter(a.commentList.CurrentPage(), a.commentList.TotalPages(), a.commentList.HasMore())
	return nil
}

// Comment adds a comment to the referenced post, then refreshes whichever
// controller owns the change: the open comment list when it is the same
// post, and the feed (comment counts changed) otherwise.
func (a *App) Comment(ctx context.Context, ref string) error {
	post, err := a.postAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	text, err := GetMultiline(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.comments.Create(ctx, post.ID, text); err != nil {
		a.printError("Could not comment: %s", err.Error())
		return nil
	}
	a.printSuccess("Comment added")

	if a.openPost != nil && a.openPost.ID == post.ID && a.commentList != nil {
		if err := a.commentList.Refresh(ctx); err != nil {
			a.reportListError(err)
			return nil
		}
		a.renderComments(a.commentList.Items())
		return nil
	}
	if a.feed != nil {
		return a.reloadFeed(ctx)
	}
	return nil
}

// EditComment updates the referenced comment of the opened post.
func (a *App) EditComment(ctx context.Context, ref string) error {
	comment, err := a.commentAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	text, err := GetMultiline(a.reader, "Enter new text", a.out)
	if err != nil {
		return err
	}

	if _, err := a.comments.Update(ctx, comment.ID, text); err != nil {
		a.printError("Could not update comment: %s", err.Error())
		return nil
	}
	a.printSuccess("Comment updated")

	if err := a.commentList.Refresh(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderComments(a.commentList.Items())
	return nil
}

// DeleteComment removes the referenced comment of the opened post.
func (a *App) DeleteComment(ctx context.Context, ref string) error {
	comment, err := a.commentAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	if err := a.comments.Delete(ctx, comment.ID); err != nil {
		a.printError("Could not delete comment: %s", err.Error())
		return nil
	}
	a.printSuccess("Comment deleted")

	if err := a.commentList.Refresh(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderComments(a.commentList.Items())
	return nil
}

// commentAt resolves a 1-based comment row number of the opened post.
func (a *App) commentAt(ref string) (models.Comment, error) {
	if a.commentList == nil {
		return models.Comment{}, fmt.Errorf("no post opened, run 'open <n>' first")
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return models.Comment{}, fmt.Errorf("not a comment number: %s", ref)
	}
	items := a.commentList.Items()
	if n < 1 || n > len(items) {
		return models.Comment{}, fmt.Errorf("comment %d is not on the list (1-%d)", n, len(items))
	}
	return items[n-1], nil
}
