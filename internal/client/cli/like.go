package cli

import "context"

// Like marks the referenced post as liked. The local "liked" marker flips
// immediately and is only reconciled with server truth when the feed
// refreshes; until then the marker and the server can disagree (for
// example, when the post was already liked in an earlier run). This mirrors
// the behavior the product currently ships with.
func (a *App) Like(ctx context.Context, ref string) error {
	post, err := a.postAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	a.liked[post.ID] = true
	if err := a.likes.Like(ctx, post.ID); err != nil {
		a.liked[post.ID] = false
		a.printError("Could not like post: %s", err.Error())
		return nil
	}

	a.printSuccess("Liked %q", post.Title)
	return a.reloadFeed(ctx)
}

// Unlike removes the acting user's like from the referenced post.
func (a *App) Unlike(ctx context.Context, ref string) error {
	post, err := a.postAt(ref)
	if err != nil {
		a.printError("%s", err.Error())
		return nil
	}

	a.liked[post.ID] = false
	if err := a.likes.Unlike(ctx, post.ID); err != nil {
		a.liked[post.ID] = true
		a.printError("Could not unlike post: %s", err.Error())
		return nil
	}

	a.printSuccess("Unliked %q", post.Title)
	return a.reloadFeed(ctx)
}
