package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Posts(ctx context.Context) error
	MyPosts(ctx context.Context) error
	More(ctx context.Context) error
	Refresh(ctx context.Context) error
	Retry(ctx context.Context) error
	NewPost(ctx context.Context) error
	DeletePost(ctx context.Context, ref string) error

	Open(ctx context.Context, ref string) error
	MoreComments(ctx context.Context) error
	Comment(ctx context.Context, ref string) error
	EditComment(ctx context.Context, ref string) error
	DeleteComment(ctx context.Context, ref string) error

	Like(ctx context.Context, ref string) error
	Unlike(ctx context.Context, ref string) error

	Users(ctx context.Context) error
	MoreUsers(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the newsline CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers report their own errors to the user; the loop only
// relays the returned error messages so a failing request never breaks the
// session or the accumulated view state.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	withRef := func(fn func(context.Context, string) error, args []string, usage string) {
		if len(args) == 0 {
			printlnFn("Usage: " + usage)
			return
		}
		if err := fn(ctx, args[0]); err != nil {
			printlnFn(err.Error())
		}
	}
	run := func(fn func(context.Context) error) {
		if err := fn(ctx); err != nil {
			printlnFn(err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("newsline %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: posts, myposts, more, refresh, retry, open <n>, post, delpost <n>,")
				printlnFn("  comment <n>, morecomments, editcomment <n>, delcomment <n>, like <n>, unlike <n>,")
				printlnFn("  users, moreusers, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			run(a.Login)

		case "signup":
			run(a.Signup)

		case "logout":
			run(a.Logout)

		case "whoami":
			run(a.Whoami)

		case "p", "posts":
			run(a.Posts)

		case "myposts":
			run(a.MyPosts)

		case "more":
			run(a.More)

		case "refresh":
			run(a.Refresh)

		case "retry":
			run(a.Retry)

		case "post":
			run(a.NewPost)

		case "delpost":
			withRef(a.DeletePost, args, "delpost <n>")

		case "open":
			withRef(a.Open, args, "open <n>")

		case "morecomments":
			run(a.MoreComments)

		case "comment":
			withRef(a.Comment, args, "comment <n>")

		case "editcomment":
			withRef(a.EditComment, args, "editcomment <n>")

		case "delcomment":
			withRef(a.DeleteComment, args, "delcomment <n>")

		case "like":
			withRef(a.Like, args, "like <n>")

		case "unlike":
			withRef(a.Unlike, args, "unlike <n>")

		case "u", "users":
			run(a.Users)

		case "moreusers":
			run(a.MoreUsers)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
