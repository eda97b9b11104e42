package cli

import (
	"context"

	"github.com/dkorolev84/newsline/internal/client/pagelist"
)

// Users lists the user directory from page 1.
func (a *App) Users(ctx context.Context) error {
	a.userList = pagelist.New(a.users.Fetch(), a.config.PageLimit)
	if err := a.userList.Refresh(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	if a.userList.Len() == 0 {
		a.printInfo("No users found.")
		return nil
	}
	a.renderUsers(a.userList.Items())
	return nil
}

// MoreUsers loads the next page of the user directory.
func (a *App) MoreUsers(ctx context.Context) error {
	if a.userList == nil {
		a.printInfo("Nothing to load, run 'users' first")
		return nil
	}
	if !a.userList.HasMore() {
		a.printInfo("No more users")
		return nil
	}
	if err := a.userList.LoadMore(ctx); err != nil {
		a.reportListError(err)
		return nil
	}
	a.renderUsers(a.userList.Items())
	return nil
}
