package cli

import (
	"context"

	"github.com/dkorolev84/newsline/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password and creates an account. A
// successful exchange already returns the token and user, so the session is
// installed immediately without a second network call.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.SignIn(ctx, name, email, string(password))
	if err != nil {
		a.printError("Sign up failed: %s", err.Error())
		return nil
	}

	if err := a.session.Login(ctx, resp.Token, resp.User); err != nil {
		return err
	}
	a.printSuccess("Welcome, %s!", resp.User.Name)
	return nil
}

// Login prompts for credentials, exchanges them for a token and installs
// the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.LogIn(ctx, email, string(password))
	if err != nil {
		a.printError("Login failed: %s", err.Error())
		return nil
	}

	if err := a.session.Login(ctx, resp.Token, resp.User); err != nil {
		return err
	}
	a.printSuccess("Logged in as %s", resp.User.Name)
	return nil
}

// Logout clears the session and the durable credential, and drops all
// accumulated view state tied to the old identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.feed = nil
	a.commentList = nil
	a.userList = nil
	a.openPost = nil
	a.liked = make(map[string]bool)
	a.printInfo("Logged out")
	return nil
}

// Whoami prints the acting user.
func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.session.CurrentUser()
	if !ok {
		a.printInfo("Not logged in")
		return nil
	}
	a.printInfo("%s <%s>", user.Name, user.Email)
	return nil
}
